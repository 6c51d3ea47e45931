// Package training orquestra o ajuste do modelo: separa o fim do
// histórico como validação, busca hiperparâmetros em grade sobre esse
// período e ajusta o modelo final com o histórico completo.
package training

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/feature"
	"github.com/vfg2006/sales-forecast-api/internal/gbrt"
)

// Config controla o treino. A validação é sempre cronológica: os
// últimos ValidationDays dias do histórico ficam fora do ajuste usado
// para escolher hiperparâmetros.
type Config struct {
	ValidationDays int
	GridSearch     bool
	Seed           int64
}

// Result reúne o modelo final e tudo que o pipeline grava sobre ele.
type Result struct {
	Model          *gbrt.Model
	Params         domain.Hyperparams
	Metrics        domain.EvaluationMetrics
	Grid           []domain.GridResult
	TrainingRows   int
	ValidationRows int
	TrainedAt      time.Time
}

type Trainer interface {
	Train(ts *feature.TrainingSet) (*Result, error)
}

type service struct {
	config Config
}

func NewService(config Config) Trainer {
	if config.ValidationDays <= 0 {
		config.ValidationDays = 14
	}

	return &service{config: config}
}

// Grade de hiperparâmetros avaliada quando a busca está habilitada. A
// combinação com menor RMSE de validação vence.
var grid = []domain.Hyperparams{
	{Trees: 100, LearningRate: 0.1, MaxDepth: 3, MinSamplesLeaf: 5, Subsample: 1.0},
	{Trees: 100, LearningRate: 0.1, MaxDepth: 4, MinSamplesLeaf: 5, Subsample: 1.0},
	{Trees: 200, LearningRate: 0.05, MaxDepth: 3, MinSamplesLeaf: 5, Subsample: 1.0},
	{Trees: 200, LearningRate: 0.05, MaxDepth: 4, MinSamplesLeaf: 5, Subsample: 1.0},
	{Trees: 300, LearningRate: 0.05, MaxDepth: 3, MinSamplesLeaf: 5, Subsample: 0.9},
}

func (s *service) Train(ts *feature.TrainingSet) (*Result, error) {
	if ts == nil || len(ts.X) == 0 {
		return nil, ErrNoTrainingSet
	}

	trainIdx, validIdx, err := s.chronologicalSplit(ts)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"linhas_treino":    len(trainIdx),
		"linhas_validacao": len(validIdx),
		"variaveis":        len(ts.FeatureNames),
		"busca_em_grade":   s.config.GridSearch,
	}).Info("Iniciando treino do modelo de previsão de vendas")

	candidates := []domain.Hyperparams{defaultHyperparams()}
	if s.config.GridSearch {
		candidates = grid
	}

	var results []domain.GridResult
	best := -1

	for i, params := range candidates {
		metrics, err := s.evaluateCandidate(ts, trainIdx, validIdx, params)
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"arvores":       params.Trees,
			"taxa":          params.LearningRate,
			"profundidade":  params.MaxDepth,
			"rmse_validacao": metrics.RMSE,
		}).Info("Candidato avaliado na busca em grade")

		results = append(results, domain.GridResult{Params: params, Metrics: metrics})
		if best < 0 || metrics.RMSE < results[best].Metrics.RMSE {
			best = i
		}
	}

	results[best].Chosen = true
	winner := results[best].Params
	winner.Seed = s.config.Seed

	// Ajuste final com o histórico completo e a configuração vencedora.
	model, err := gbrt.Train(ts.X, ts.Y, ts.FeatureNames, options(winner)...)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"arvores":        winner.Trees,
		"taxa":           winner.LearningRate,
		"profundidade":   winner.MaxDepth,
		"mae_validacao":  results[best].Metrics.MAE,
		"rmse_validacao": results[best].Metrics.RMSE,
		"r2_validacao":   results[best].Metrics.R2,
	}).Info("Treino do modelo concluído")

	return &Result{
		Model:          model,
		Params:         winner,
		Metrics:        results[best].Metrics,
		Grid:           results,
		TrainingRows:   len(ts.X),
		ValidationRows: len(validIdx),
		TrainedAt:      time.Now(),
	}, nil
}

// chronologicalSplit separa os últimos ValidationDays dias do
// histórico como validação. Nunca embaralha: validar o passado com o
// futuro inflaria as métricas.
func (s *service) chronologicalSplit(ts *feature.TrainingSet) (train, valid []int, err error) {
	var maxDate time.Time
	for _, date := range ts.Dates {
		if date.After(maxDate) {
			maxDate = date
		}
	}

	cutoff := maxDate.AddDate(0, 0, -s.config.ValidationDays)

	for i, date := range ts.Dates {
		if date.After(cutoff) {
			valid = append(valid, i)
		} else {
			train = append(train, i)
		}
	}

	if len(train) == 0 || len(valid) == 0 {
		return nil, nil, errors.Wrapf(ErrInsufficientHistory,
			"%d linhas antes e %d depois do corte %s",
			len(train), len(valid), cutoff.Format(time.DateOnly))
	}

	return train, valid, nil
}

// evaluateCandidate ajusta o candidato só com o período de treino e o
// mede sobre o período de validação.
func (s *service) evaluateCandidate(ts *feature.TrainingSet, trainIdx, validIdx []int, params domain.Hyperparams) (domain.EvaluationMetrics, error) {
	params.Seed = s.config.Seed

	x := make([][]float64, 0, len(trainIdx))
	y := make([]float64, 0, len(trainIdx))
	for _, i := range trainIdx {
		x = append(x, ts.X[i])
		y = append(y, ts.Y[i])
	}

	model, err := gbrt.Train(x, y, ts.FeatureNames, options(params)...)
	if err != nil {
		return domain.EvaluationMetrics{}, err
	}

	predicted := make([]float64, 0, len(validIdx))
	actual := make([]float64, 0, len(validIdx))
	for _, i := range validIdx {
		predicted = append(predicted, model.Predict(ts.X[i]))
		actual = append(actual, ts.Y[i])
	}

	return gbrt.Evaluate(predicted, actual)
}

func defaultHyperparams() domain.Hyperparams {
	p := gbrt.DefaultParams()

	return domain.Hyperparams{
		Trees:          p.Trees,
		LearningRate:   p.LearningRate,
		MaxDepth:       p.MaxDepth,
		MinSamplesLeaf: p.MinSamplesLeaf,
		Subsample:      p.Subsample,
		Seed:           p.Seed,
	}
}

func options(p domain.Hyperparams) []gbrt.Option {
	return []gbrt.Option{
		gbrt.WithTrees(p.Trees),
		gbrt.WithLearningRate(p.LearningRate),
		gbrt.WithMaxDepth(p.MaxDepth),
		gbrt.WithMinSamplesLeaf(p.MinSamplesLeaf),
		gbrt.WithSubsample(p.Subsample),
		gbrt.WithSeed(p.Seed),
	}
}
