package domain

// ForecastDay é a previsão de um único dia para um produto.
type ForecastDay struct {
	Date            string  `json:"date"`
	DayOfMonth      int     `json:"day_of_month"`
	Weekday         string  `json:"weekday"`
	SellPrice       float64 `json:"sell_price"`
	CompetitorPrice float64 `json:"competitor_price"`
	DiscountPct     float64 `json:"discount_pct"`
	PriceRatio      float64 `json:"price_ratio"`
	PredictedUnits  float64 `json:"predicted_units"`
	Revenue         float64 `json:"revenue"`
	IsBlackFriday   bool    `json:"is_black_friday"`
}

// ForecastSummary agrega os indicadores do período previsto.
type ForecastSummary struct {
	TotalUnits         float64 `json:"total_units"`
	TotalRevenue       float64 `json:"total_revenue"`
	AveragePrice       float64 `json:"average_price"`
	AverageDiscountPct float64 `json:"average_discount_pct"`
}

// ProductForecast reúne a previsão de um produto para o mês alvo.
type ProductForecast struct {
	Product string          `json:"product"`
	Days    []ForecastDay   `json:"days"`
	Summary ForecastSummary `json:"summary"`
}

// Summarize agrega os indicadores de um conjunto de dias previstos:
// unidades e receita totais e médias de preço e desconto.
func Summarize(days []ForecastDay) ForecastSummary {
	var summary ForecastSummary
	if len(days) == 0 {
		return summary
	}

	for _, day := range days {
		summary.TotalUnits += day.PredictedUnits
		summary.TotalRevenue += day.Revenue
		summary.AveragePrice += day.SellPrice
		summary.AverageDiscountPct += day.DiscountPct
	}

	n := float64(len(days))
	summary.AveragePrice /= n
	summary.AverageDiscountPct /= n

	return summary
}
