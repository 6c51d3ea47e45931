package feature

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/pkg/utils"
)

// Erros de montagem das variáveis do modelo
var (
	ErrEmptyHistory   = errors.New("histórico de vendas vazio")
	ErrEmptyPlan      = errors.New("plano comercial vazio")
	ErrShortHistory   = errors.New("histórico insuficiente para calcular as janelas de defasagem")
	ErrIncompletePlan = errors.New("plano comercial não cobre todos os dias do mês alvo")
)

// lagWindow é o tamanho da janela de defasagens diárias do modelo.
const lagWindow = 7

// TrainingSet é a matriz de treino derivada do histórico de vendas:
// uma linha por produto e dia com janela de defasagens completa.
type TrainingSet struct {
	FeatureNames []string
	X            [][]float64
	Y            []float64
	Dates        []time.Time
	Products     []string
}

// Builder monta as variáveis do modelo a partir do histórico de vendas
// e do plano comercial. O catálogo de variáveis (incluindo os one-hots
// de produto e categoria) é fixado no treino e reaplicado na inferência
// por projeção: variáveis ausentes entram como zero.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// TrainingSet deriva a matriz de treino do histórico. Linhas sem janela
// de defasagens completa (os primeiros dias de cada produto) são
// descartadas. As defasagens seguem as linhas ordenadas por data.
func (b *Builder) TrainingSet(history []domain.SalesRecord) (*TrainingSet, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}

	byProduct := groupSalesByProduct(history)
	names := b.catalog(history)

	ts := &TrainingSet{FeatureNames: names}

	for _, product := range sortedKeys(byProduct) {
		rows := byProduct[product]

		for i := lagWindow; i < len(rows); i++ {
			fr := frameRowFromSales(rows[i])
			fillLags(&fr, func(k int) float64 { return rows[i-1-k].UnitsSold })

			ts.X = append(ts.X, b.Vector(fr, names))
			ts.Y = append(ts.Y, rows[i].UnitsSold)
			ts.Dates = append(ts.Dates, rows[i].Date)
			ts.Products = append(ts.Products, product)
		}
	}

	if len(ts.X) == 0 {
		return nil, errors.Wrap(ErrShortHistory, "nenhum produto possui mais de sete dias de histórico")
	}

	return ts, nil
}

// InferenceFrame monta o quadro de inferência do mês alvo: uma linha
// por produto e dia do mês, com a janela histórica inicial de cada
// produto como semente das defasagens do primeiro dia.
func (b *Builder) InferenceFrame(plan []domain.PlanRecord, history []domain.SalesRecord, year int, month time.Month) ([]domain.FrameRow, error) {
	if len(plan) == 0 {
		return nil, ErrEmptyPlan
	}

	planByProduct := groupPlanByProduct(plan)
	salesByProduct := groupSalesByProduct(history)
	days := utils.MonthDays(year, month)

	frame := make([]domain.FrameRow, 0, len(plan))

	for _, product := range sortedKeys(planByProduct) {
		rows := planByProduct[product]
		if len(rows) != len(days) {
			return nil, errors.Wrapf(ErrIncompletePlan,
				"produto %q tem %d linhas para %d-%02d (esperado %d)",
				product, len(rows), year, month, len(days))
		}

		for i, day := range days {
			if !sameDay(rows[i].Date, day) {
				return nil, errors.Wrapf(ErrIncompletePlan,
					"produto %q: dia %s ausente ou duplicado no plano",
					product, utils.FormatDate(day))
			}
		}

		hist := salesByProduct[product]
		if len(hist) < lagWindow {
			return nil, errors.Wrapf(ErrShortHistory,
				"produto %q possui %d dias de histórico (mínimo %d)",
				product, len(hist), lagWindow)
		}

		var seed domain.FrameRow
		fillLags(&seed, func(k int) float64 { return hist[len(hist)-1-k].UnitsSold })

		for _, r := range rows {
			fr := frameRowFromPlan(r)
			fr.Lags = seed.Lags
			fr.MA7 = seed.MA7
			frame = append(frame, fr)
		}
	}

	return frame, nil
}

// Vector projeta uma linha do quadro sobre o catálogo de variáveis do
// modelo, na ordem dada. Variáveis desconhecidas pela linha (one-hots
// de outros produtos) valem zero.
func (b *Builder) Vector(row domain.FrameRow, names []string) []float64 {
	values := b.featureValues(row)

	vec := make([]float64, len(names))
	for i, name := range names {
		if v, ok := values[name]; ok {
			vec[i] = v
		}
	}

	return vec
}

// PriceRatio é a razão entre o preço próprio e o da concorrência.
// Preço de concorrência ausente ou inválido resulta em razão neutra.
func PriceRatio(sellPrice, competitorPrice float64) float64 {
	if competitorPrice <= 0 {
		return 1.0
	}

	return sellPrice / competitorPrice
}

func (b *Builder) featureValues(row domain.FrameRow) map[string]float64 {
	values := map[string]float64{
		"precio_base":           row.BasePrice,
		"precio_venta":          row.SellPrice,
		"precio_competencia":    row.CompetitorPrice,
		"amazon":                row.Amazon,
		"decathlon":             row.Decathlon,
		"deporvillage":          row.Deporvillage,
		"descuento_porcentaje":  row.DiscountPct,
		"ratio_precio":          PriceRatio(row.SellPrice, row.CompetitorPrice),
		"dia_mes":               float64(row.DayOfMonth),
		"dia_semana":            float64(row.Weekday),
		"es_fin_de_semana":      boolToFloat(row.IsWeekend),
		"es_festivo":            boolToFloat(row.IsHoliday),
		"es_black_friday":       boolToFloat(row.IsBlackFriday),
		"es_cyber_monday":       boolToFloat(row.IsCyberMonday),
		"unidades_vendidas_ma7": row.MA7,
	}

	for k, lag := range row.Lags {
		values[lagFeatureName(k+1)] = lag
	}

	values[oneHotName("nombre_h_", row.Product)] = 1
	values[oneHotName("categoria_h_", row.Category)] = 1
	values[oneHotName("subcategoria_h_", row.Subcategory)] = 1

	return values
}

// catalog fixa o catálogo de variáveis: o bloco numérico na ordem
// canônica seguido dos one-hots em ordem alfabética.
func (b *Builder) catalog(history []domain.SalesRecord) []string {
	names := []string{
		"precio_base",
		"precio_venta",
		"precio_competencia",
		"amazon",
		"decathlon",
		"deporvillage",
		"descuento_porcentaje",
		"ratio_precio",
		"dia_mes",
		"dia_semana",
		"es_fin_de_semana",
		"es_festivo",
		"es_black_friday",
		"es_cyber_monday",
	}

	for k := 1; k <= lagWindow; k++ {
		names = append(names, lagFeatureName(k))
	}
	names = append(names, "unidades_vendidas_ma7")

	products := map[string]struct{}{}
	categories := map[string]struct{}{}
	subcategories := map[string]struct{}{}
	for _, r := range history {
		products[oneHotName("nombre_h_", r.Product)] = struct{}{}
		categories[oneHotName("categoria_h_", r.Category)] = struct{}{}
		subcategories[oneHotName("subcategoria_h_", r.Subcategory)] = struct{}{}
	}

	names = append(names, sortedKeys(products)...)
	names = append(names, sortedKeys(categories)...)
	names = append(names, sortedKeys(subcategories)...)

	return names
}

func lagFeatureName(k int) string {
	return fmt.Sprintf("unidades_vendidas_lag%d", k)
}

// oneHotName normaliza o valor categórico para o nome da variável:
// minúsculas e qualquer caractere fora de [a-z0-9] vira sublinhado.
func oneHotName(prefix, value string) string {
	var sb strings.Builder
	sb.WriteString(prefix)

	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}

	return sb.String()
}

// fillLags preenche as defasagens da linha com a função de acesso ao
// histórico (k = 0 é o dia imediatamente anterior) e a média móvel.
func fillLags(row *domain.FrameRow, unitsAt func(k int) float64) {
	for k := 0; k < lagWindow; k++ {
		row.Lags[k] = unitsAt(k)
	}

	row.MA7 = stat.Mean(row.Lags[:], nil)
}

func frameRowFromSales(r domain.SalesRecord) domain.FrameRow {
	return calendarRow(r.Date, domain.FrameRow{
		Product:         r.Product,
		Category:        r.Category,
		Subcategory:     r.Subcategory,
		BasePrice:       r.BasePrice,
		SellPrice:       r.SellPrice,
		CompetitorPrice: r.CompetitorPrice,
		Amazon:          r.Amazon,
		Decathlon:       r.Decathlon,
		Deporvillage:    r.Deporvillage,
		DiscountPct:     r.DiscountPct,
	})
}

func frameRowFromPlan(r domain.PlanRecord) domain.FrameRow {
	return calendarRow(r.Date, domain.FrameRow{
		Product:         r.Product,
		Category:        r.Category,
		Subcategory:     r.Subcategory,
		BasePrice:       r.BasePrice,
		SellPrice:       r.SellPrice,
		CompetitorPrice: r.CompetitorPrice,
		Amazon:          r.Amazon,
		Decathlon:       r.Decathlon,
		Deporvillage:    r.Deporvillage,
		DiscountPct:     r.DiscountPct,
	})
}

func calendarRow(date time.Time, row domain.FrameRow) domain.FrameRow {
	row.Date = date
	row.DayOfMonth = date.Day()
	row.Weekday = WeekdayIndex(date)
	row.IsWeekend = IsWeekend(date)
	row.IsHoliday = IsHoliday(date)
	row.IsBlackFriday = IsBlackFriday(date)
	row.IsCyberMonday = IsCyberMonday(date)

	return row
}

func groupSalesByProduct(history []domain.SalesRecord) map[string][]domain.SalesRecord {
	byProduct := make(map[string][]domain.SalesRecord)
	for _, r := range history {
		byProduct[r.Product] = append(byProduct[r.Product], r)
	}

	for product := range byProduct {
		rows := byProduct[product]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	}

	return byProduct
}

func groupPlanByProduct(plan []domain.PlanRecord) map[string][]domain.PlanRecord {
	byProduct := make(map[string][]domain.PlanRecord)
	for _, r := range plan {
		byProduct[r.Product] = append(byProduct[r.Product], r)
	}

	for product := range byProduct {
		rows := byProduct[product]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	}

	return byProduct
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
