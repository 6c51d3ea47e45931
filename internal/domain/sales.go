package domain

import "time"

// SalesRecord representa uma linha do histórico de vendas diárias:
// um produto em um dia, com preços praticados e de concorrência.
type SalesRecord struct {
	Date            time.Time
	Product         string
	Category        string
	Subcategory     string
	UnitsSold       float64
	BasePrice       float64
	SellPrice       float64
	CompetitorPrice float64
	Amazon          float64
	Decathlon       float64
	Deporvillage    float64
	DiscountPct     float64
}

// PlanRecord representa uma linha do plano comercial do mês alvo:
// preços planejados por produto e dia, ainda sem vendas realizadas.
type PlanRecord struct {
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
}

// ProductInfo identifica um produto disponível para simulação.
type ProductInfo struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}
