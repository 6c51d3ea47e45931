package gbrt

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Model é um gradient boosting de árvores de regressão: a previsão é a
// média do alvo no treino mais a soma das correções das árvores,
// atenuadas pela taxa de aprendizado.
type Model struct {
	BaseScore  float64   `json:"base_score"`
	Trees      []*Node   `json:"trees"`
	Features   []string  `json:"feature_names"`
	Importance []float64 `json:"feature_importance,omitempty"`
	Params     Params    `json:"params"`
}

// Train ajusta o modelo sobre a matriz de treino. Cada árvore é
// ajustada aos resíduos da previsão acumulada até ela.
func Train(x [][]float64, y []float64, featureNames []string, opts ...Option) (*Model, error) {
	params := DefaultParams()
	for _, opt := range opts {
		opt(&params)
	}

	if err := params.validate(); err != nil {
		return nil, err
	}
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(x) != len(y) {
		return nil, ErrDimensionMismatch
	}
	for _, row := range x {
		if len(row) != len(featureNames) {
			return nil, ErrDimensionMismatch
		}
	}

	model := &Model{
		BaseScore: stat.Mean(y, nil),
		Features:  featureNames,
		Params:    params,
	}

	n := len(x)
	predictions := make([]float64, n)
	for i := range predictions {
		predictions[i] = model.BaseScore
	}

	residuals := make([]float64, n)
	importance := make([]float64, len(featureNames))
	rnd := rand.New(rand.NewSource(params.Seed))

	sampleSize := int(params.Subsample * float64(n))
	if sampleSize < 1 {
		sampleSize = 1
	}

	for t := 0; t < params.Trees; t++ {
		for i := range residuals {
			residuals[i] = y[i] - predictions[i]
		}

		indices := allIndices(n)
		if sampleSize < n {
			perm := rnd.Perm(n)
			indices = perm[:sampleSize]
		}

		tb := &treeBuilder{
			x:          x,
			target:     residuals,
			maxDepth:   params.MaxDepth,
			minLeaf:    params.MinSamplesLeaf,
			importance: importance,
		}
		tree := tb.build(indices, 0)
		model.Trees = append(model.Trees, tree)

		for i := range predictions {
			predictions[i] += params.LearningRate * tree.predict(x[i])
		}
	}

	if total := floats.Sum(importance); total > 0 {
		floats.Scale(1/total, importance)
		model.Importance = importance
	}

	return model, nil
}

// Predict retorna a previsão para um vetor de variáveis na ordem de
// FeatureNames.
func (m *Model) Predict(features []float64) float64 {
	score := m.BaseScore
	for _, tree := range m.Trees {
		score += m.Params.LearningRate * tree.predict(features)
	}

	return score
}

// FeatureNames retorna o catálogo de variáveis na ordem esperada por
// Predict.
func (m *Model) FeatureNames() []string {
	return m.Features
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	return indices
}
