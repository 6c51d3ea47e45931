package domain

import "time"

// FrameRow é uma linha do quadro de inferência do mês alvo: o plano
// comercial enriquecido com os campos de calendário e com a janela
// histórica inicial (defasagens e média móvel) de cada produto.
//
// As defasagens valem apenas como semente do primeiro dia; durante a
// previsão recursiva elas são substituídas pelas próprias previsões.
type FrameRow struct {
	Date            time.Time
	Product         string
	Category        string
	Subcategory     string
	BasePrice       float64
	SellPrice       float64
	CompetitorPrice float64
	Amazon          float64
	Decathlon       float64
	Deporvillage    float64
	DiscountPct     float64
	DayOfMonth      int
	Weekday         int
	IsWeekend       bool
	IsHoliday       bool
	IsBlackFriday   bool
	IsCyberMonday   bool

	// Lags[0] é a venda do dia anterior (lag 1) e assim por diante,
	// até Lags[6] (lag 7). MA7 é a média dos sete valores.
	Lags [7]float64
	MA7  float64
}
