package domain

import "time"

// SimulationResult é o resultado de uma simulação de desconto para um
// produto, dia a dia, mais os indicadores agregados do mês.
type SimulationResult struct {
	Product          string          `json:"product"`
	DiscountPct      float64         `json:"discount_pct"`
	CompetitorAdjPct float64         `json:"competitor_adjustment_pct"`
	GeneratedAt      time.Time       `json:"generated_at"`
	Days             []ForecastDay   `json:"days"`
	Summary          ForecastSummary `json:"summary"`
}

// Scenario é o resumo de uma simulação sob um ajuste hipotético dos
// preços da concorrência, mantido o mesmo desconto.
type Scenario struct {
	Name          string          `json:"name"`
	AdjustmentPct float64         `json:"adjustment_pct"`
	Summary       ForecastSummary `json:"summary"`
}

// ScenarioComparison compara cenários de concorrência lado a lado.
type ScenarioComparison struct {
	Product     string     `json:"product"`
	DiscountPct float64    `json:"discount_pct"`
	Scenarios   []Scenario `json:"scenarios"`
}
