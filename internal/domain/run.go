package domain

import "time"

// RunConfig é o eco da configuração efetiva de uma execução do
// pipeline, gravado junto aos metadados para auditoria.
type RunConfig struct {
	ValidationDays int   `json:"validation_days"`
	GridSearch     bool  `json:"grid_search"`
	Seed           int64 `json:"seed"`
	TargetYear     int   `json:"target_year"`
	TargetMonth    int   `json:"target_month"`
}

// RunInfo registra os metadados de uma execução completa do pipeline.
// Os hashes das entradas permitem verificar de quais arquivos os
// artefatos foram derivados.
type RunInfo struct {
	ID             string    `json:"id"`
	StartedAt      time.Time `json:"started_at"`
	CompletedAt    time.Time `json:"completed_at"`
	SalesPath      string    `json:"sales_path"`
	PlanPath       string    `json:"plan_path"`
	SalesSHA256    string    `json:"sales_sha256"`
	PlanSHA256     string    `json:"plan_sha256"`
	SalesRows      int       `json:"sales_rows"`
	PlanRows       int       `json:"plan_rows"`
	TrainingRows   int       `json:"training_rows"`
	ValidationRows int       `json:"validation_rows"`
	Products       int       `json:"products"`
	TargetMonth    string    `json:"target_month"`
	Config         RunConfig `json:"config"`
	Artifacts      []string  `json:"artifacts"`
}
