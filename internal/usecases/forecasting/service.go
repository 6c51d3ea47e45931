// Package forecasting implementa a previsão recursiva do mês alvo:
// dia a dia, as previsões de um dia alimentam as defasagens do
// seguinte, de modo que o mês inteiro é previsto só com o histórico
// real anterior ao primeiro dia.
package forecasting

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/feature"
	"github.com/vfg2006/sales-forecast-api/pkg/utils"
)

// Regressor é o contrato mínimo que o scorer exige do modelo treinado.
type Regressor interface {
	Predict(features []float64) float64
	FeatureNames() []string
}

// Cenários pré-definidos de ajuste dos preços da concorrência.
var cannedScenarios = []struct {
	name          string
	adjustmentPct float64
}{
	{"Concorrência -5%", -5},
	{"Preços atuais", 0},
	{"Concorrência +5%", 5},
}

type Forecaster interface {
	// Baseline pontua o quadro com os preços do plano comercial, sem
	// nenhum ajuste: é a previsão gravada pelo pipeline.
	Baseline(frame []domain.FrameRow, model Regressor) ([]domain.ProductForecast, error)

	// Simulate pontua um produto sob um desconto escolhido e um ajuste
	// hipotético dos preços da concorrência.
	Simulate(frame []domain.FrameRow, model Regressor, product string, discountPct, competitorAdjPct float64) (*domain.ProductForecast, error)

	// CompareScenarios pontua o produto sob os três cenários
	// pré-definidos de concorrência, mantido o mesmo desconto.
	CompareScenarios(frame []domain.FrameRow, model Regressor, product string, discountPct float64) (*domain.ScenarioComparison, error)
}

type service struct {
	builder *feature.Builder
}

func NewService() Forecaster {
	return &service{builder: feature.NewBuilder()}
}

func (s *service) Baseline(frame []domain.FrameRow, model Regressor) ([]domain.ProductForecast, error) {
	if err := validate(frame, model); err != nil {
		return nil, err
	}

	byProduct := groupByProduct(frame)

	forecasts := make([]domain.ProductForecast, 0, len(byProduct))
	for _, product := range sortedKeys(byProduct) {
		forecast := s.scoreProduct(byProduct[product], model, nil)
		forecasts = append(forecasts, forecast)
	}

	return forecasts, nil
}

func (s *service) Simulate(frame []domain.FrameRow, model Regressor, product string, discountPct, competitorAdjPct float64) (*domain.ProductForecast, error) {
	if err := validate(frame, model); err != nil {
		return nil, err
	}
	if discountPct < MinDiscountPct || discountPct > MaxDiscountPct {
		return nil, errors.Wrapf(ErrDiscountOutOfRange, "%.1f%% (faixa %.0f a %.0f)", discountPct, MinDiscountPct, MaxDiscountPct)
	}
	if competitorAdjPct < MinAdjustmentPct || competitorAdjPct > MaxAdjustmentPct {
		return nil, errors.Wrapf(ErrAdjustmentOutOfRange, "%.1f%% (faixa %.0f a %.0f)", competitorAdjPct, MinAdjustmentPct, MaxAdjustmentPct)
	}

	rows := groupByProduct(frame)[product]
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrProductNotFound, "%q", product)
	}

	forecast := s.scoreProduct(rows, model, &adjustments{
		discountPct:      discountPct,
		competitorAdjPct: competitorAdjPct,
	})

	return &forecast, nil
}

func (s *service) CompareScenarios(frame []domain.FrameRow, model Regressor, product string, discountPct float64) (*domain.ScenarioComparison, error) {
	comparison := &domain.ScenarioComparison{
		Product:     product,
		DiscountPct: discountPct,
		Scenarios:   make([]domain.Scenario, 0, len(cannedScenarios)),
	}

	for _, scenario := range cannedScenarios {
		forecast, err := s.Simulate(frame, model, product, discountPct, scenario.adjustmentPct)
		if err != nil {
			return nil, err
		}

		comparison.Scenarios = append(comparison.Scenarios, domain.Scenario{
			Name:          scenario.name,
			AdjustmentPct: scenario.adjustmentPct,
			Summary:       forecast.Summary,
		})
	}

	return comparison, nil
}

// adjustments é o override de preços de uma simulação. Nulo significa
// previsão base com os preços do plano.
type adjustments struct {
	discountPct      float64
	competitorAdjPct float64
}

// scoreProduct pontua os dias de um produto em ordem cronológica. A
// janela de defasagens parte da semente histórica da primeira linha e
// é realimentada com as próprias previsões: a previsão do dia N vira a
// defasagem 1 do dia N+1 e a média móvel acompanha a janela.
func (s *service) scoreProduct(rows []domain.FrameRow, model Regressor, adj *adjustments) domain.ProductForecast {
	names := model.FeatureNames()

	buffer := rows[0].Lags
	days := make([]domain.ForecastDay, 0, len(rows))

	for _, row := range rows {
		if adj != nil {
			applyAdjustments(&row, adj)
		}

		row.Lags = buffer
		row.MA7 = stat.Mean(buffer[:], nil)

		predicted := utils.ClampNonNegative(model.Predict(s.builder.Vector(row, names)))

		days = append(days, domain.ForecastDay{
			Date:            utils.FormatDate(row.Date),
			DayOfMonth:      row.DayOfMonth,
			Weekday:         feature.WeekdayName(row.Date),
			SellPrice:       row.SellPrice,
			CompetitorPrice: row.CompetitorPrice,
			DiscountPct:     row.DiscountPct,
			PriceRatio:      feature.PriceRatio(row.SellPrice, row.CompetitorPrice),
			PredictedUnits:  predicted,
			Revenue:         utils.RoundWithTwoDecimalPlace(predicted * row.SellPrice),
			IsBlackFriday:   row.IsBlackFriday,
		})

		// Desloca a janela: a previsão entra como defasagem 1.
		copy(buffer[1:], buffer[:len(buffer)-1])
		buffer[0] = predicted
	}

	return domain.ProductForecast{
		Product: rows[0].Product,
		Days:    days,
		Summary: domain.Summarize(days),
	}
}

// applyAdjustments aplica o desconto escolhido sobre o preço base e o
// ajuste hipotético sobre todos os preços de concorrência da linha.
func applyAdjustments(row *domain.FrameRow, adj *adjustments) {
	row.SellPrice = row.BasePrice * (1 - adj.discountPct/100)
	row.DiscountPct = adj.discountPct

	factor := 1 + adj.competitorAdjPct/100
	row.CompetitorPrice *= factor
	if row.Amazon > 0 {
		row.Amazon *= factor
	}
	if row.Decathlon > 0 {
		row.Decathlon *= factor
	}
	if row.Deporvillage > 0 {
		row.Deporvillage *= factor
	}
}

func validate(frame []domain.FrameRow, model Regressor) error {
	if model == nil {
		return ErrNilModel
	}
	if len(frame) == 0 {
		return ErrEmptyFrame
	}

	return nil
}

func groupByProduct(frame []domain.FrameRow) map[string][]domain.FrameRow {
	byProduct := make(map[string][]domain.FrameRow)
	for _, row := range frame {
		byProduct[row.Product] = append(byProduct[row.Product], row)
	}

	for product := range byProduct {
		rows := byProduct[product]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	}

	return byProduct
}

func sortedKeys(m map[string][]domain.FrameRow) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
