package domain

import "time"

// Hyperparams são os hiperparâmetros do gradient boosting treinado.
type Hyperparams struct {
	Trees          int     `json:"trees"`
	LearningRate   float64 `json:"learning_rate"`
	MaxDepth       int     `json:"max_depth"`
	MinSamplesLeaf int     `json:"min_samples_leaf"`
	Subsample      float64 `json:"subsample"`
	Seed           int64   `json:"seed"`
}

// EvaluationMetrics reúne as métricas de validação do modelo.
type EvaluationMetrics struct {
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
	R2   float64 `json:"r2"`
	Rows int     `json:"rows"`
}

// FeatureImportance é a contribuição relativa de uma variável para o
// ganho total das árvores do modelo.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// GridResult é o desempenho de uma combinação de hiperparâmetros na
// busca em grade, medida sobre o período de validação.
type GridResult struct {
	Params  Hyperparams       `json:"params"`
	Metrics EvaluationMetrics `json:"metrics"`
	Chosen  bool              `json:"chosen,omitempty"`
}

// MetricsReport é o artefato de métricas gravado pelo pipeline: as
// métricas finais de validação e os resultados da busca em grade.
type MetricsReport struct {
	Validation EvaluationMetrics `json:"validation"`
	Grid       []GridResult      `json:"grid,omitempty"`
}

// ModelInfo descreve o artefato de modelo em uso.
type ModelInfo struct {
	RunID        string              `json:"run_id"`
	TrainedAt    time.Time           `json:"trained_at"`
	TargetMonth  string              `json:"target_month"`
	TrainingRows int                 `json:"training_rows"`
	Products     []string            `json:"products"`
	FeatureNames []string            `json:"feature_names"`
	Hyperparams  Hyperparams         `json:"hyperparams"`
	Metrics      EvaluationMetrics   `json:"metrics"`
	TopFeatures  []FeatureImportance `json:"top_features,omitempty"`
}
