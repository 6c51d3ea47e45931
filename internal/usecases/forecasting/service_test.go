package forecasting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

// fakeRegressor devolve uma função arbitrária do vetor de variáveis,
// na ordem do catálogo informado.
type fakeRegressor struct {
	names   []string
	predict func(features []float64) float64
}

func (f *fakeRegressor) Predict(features []float64) float64 { return f.predict(features) }
func (f *fakeRegressor) FeatureNames() []string             { return f.names }

// echoLag1 prevê exatamente a defasagem 1: torna a propagação
// recursiva observável dia a dia.
func echoLag1() *fakeRegressor {
	return &fakeRegressor{
		names: []string{
			"unidades_vendidas_lag1",
			"unidades_vendidas_lag2",
			"unidades_vendidas_ma7",
			"precio_venta",
			"precio_competencia",
			"descuento_porcentaje",
			"ratio_precio",
		},
		predict: func(features []float64) float64 { return features[0] },
	}
}

func novemberFrame(product string, days int) []domain.FrameRow {
	frame := make([]domain.FrameRow, 0, days)
	for d := 1; d <= days; d++ {
		date := time.Date(2025, time.November, d, 0, 0, 0, 0, time.UTC)
		frame = append(frame, domain.FrameRow{
			Date:            date,
			Product:         product,
			Category:        "Calzado",
			Subcategory:     "Running",
			BasePrice:       100,
			SellPrice:       90,
			CompetitorPrice: 95,
			Amazon:          94,
			Decathlon:       96,
			DiscountPct:     10,
			DayOfMonth:      d,
			IsBlackFriday:   d == 28,
			Lags:            [7]float64{8, 7, 9, 6, 5, 7, 8},
			MA7:             50.0 / 7.0,
		})
	}

	return frame
}

func TestBaseline(t *testing.T) {
	svc := NewService()

	t.Run("Uma linha por dia do mês com preços do plano", func(t *testing.T) {
		frame := novemberFrame("Zapatillas Running", 30)

		forecasts, err := svc.Baseline(frame, echoLag1())
		require.NoError(t, err)
		require.Len(t, forecasts, 1)

		forecast := forecasts[0]
		require.Len(t, forecast.Days, 30)

		seen := map[string]struct{}{}
		for _, day := range forecast.Days {
			_, dup := seen[day.Date]
			assert.False(t, dup, "dia duplicado: %s", day.Date)
			seen[day.Date] = struct{}{}

			assert.Equal(t, 90.0, day.SellPrice)
			assert.Equal(t, 10.0, day.DiscountPct)
			assert.GreaterOrEqual(t, day.PredictedUnits, 0.0)
		}

		assert.Equal(t, "2025-11-01", forecast.Days[0].Date)
		assert.Equal(t, "2025-11-30", forecast.Days[29].Date)
		assert.True(t, forecast.Days[27].IsBlackFriday)
	})

	t.Run("Defasagem 1 do dia seguinte é a previsão do dia anterior", func(t *testing.T) {
		frame := novemberFrame("Zapatillas Running", 5)

		forecasts, err := svc.Baseline(frame, echoLag1())
		require.NoError(t, err)

		days := forecasts[0].Days

		// O modelo ecoa a defasagem 1: dia 1 prevê a semente (8) e cada
		// dia seguinte repete a previsão anterior.
		assert.Equal(t, 8.0, days[0].PredictedUnits)
		for i := 1; i < len(days); i++ {
			assert.Equal(t, days[i-1].PredictedUnits, days[i].PredictedUnits)
		}
	})

	t.Run("Média móvel acompanha a janela realimentada", func(t *testing.T) {
		frame := novemberFrame("Zapatillas Running", 3)

		// Prevê a média móvel corrente.
		echoMA7 := &fakeRegressor{
			names:   []string{"unidades_vendidas_ma7"},
			predict: func(features []float64) float64 { return features[0] },
		}

		forecasts, err := svc.Baseline(frame, echoMA7)
		require.NoError(t, err)

		days := forecasts[0].Days
		seed := [7]float64{8, 7, 9, 6, 5, 7, 8}

		assert.InDelta(t, 50.0/7.0, days[0].PredictedUnits, 1e-9)

		// Dia 2: a previsão do dia 1 substitui a defasagem 7 na janela.
		window := [7]float64{days[0].PredictedUnits, seed[0], seed[1], seed[2], seed[3], seed[4], seed[5]}
		var sum float64
		for _, v := range window {
			sum += v
		}
		assert.InDelta(t, sum/7, days[1].PredictedUnits, 1e-9)
	})

	t.Run("Previsões negativas são truncadas em zero", func(t *testing.T) {
		frame := novemberFrame("Zapatillas Running", 4)

		negative := &fakeRegressor{
			names:   []string{"precio_venta"},
			predict: func([]float64) float64 { return -3.5 },
		}

		forecasts, err := svc.Baseline(frame, negative)
		require.NoError(t, err)

		for _, day := range forecasts[0].Days {
			assert.Equal(t, 0.0, day.PredictedUnits)
			assert.Equal(t, 0.0, day.Revenue)
		}
	})

	t.Run("Quadro vazio é rejeitado", func(t *testing.T) {
		_, err := svc.Baseline(nil, echoLag1())
		assert.True(t, errors.Is(err, ErrEmptyFrame))
	})

	t.Run("Modelo ausente é rejeitado", func(t *testing.T) {
		_, err := svc.Baseline(novemberFrame("Balón Fútbol", 2), nil)
		assert.True(t, errors.Is(err, ErrNilModel))
	})
}

func TestSimulate(t *testing.T) {
	svc := NewService()

	t.Run("Desconto recalcula preço de venda e razão de preços", func(t *testing.T) {
		frame := novemberFrame("Zapatillas Running", 2)

		forecast, err := svc.Simulate(frame, echoLag1(), "Zapatillas Running", 20, 0)
		require.NoError(t, err)

		for _, day := range forecast.Days {
			assert.Equal(t, 80.0, day.SellPrice) // 100 * (1 - 20/100)
			assert.Equal(t, 20.0, day.DiscountPct)
			assert.InDelta(t, 80.0/95.0, day.PriceRatio, 1e-9)
		}
	})

	t.Run("Ajuste de concorrência escala todos os preços concorrentes", func(t *testing.T) {
		frame := novemberFrame("Zapatillas Running", 2)

		forecast, err := svc.Simulate(frame, echoLag1(), "Zapatillas Running", 0, 5)
		require.NoError(t, err)

		day := forecast.Days[0]
		assert.InDelta(t, 95.0*1.05, day.CompetitorPrice, 1e-9)
		assert.InDelta(t, 100.0/(95.0*1.05), day.PriceRatio, 1e-9)
	})

	t.Run("Concorrência zerada mantém razão neutra", func(t *testing.T) {
		frame := novemberFrame("Balón Fútbol", 2)
		for i := range frame {
			frame[i].CompetitorPrice = 0
			frame[i].Amazon = 0
			frame[i].Decathlon = 0
		}

		forecast, err := svc.Simulate(frame, echoLag1(), "Balón Fútbol", 0, -5)
		require.NoError(t, err)

		assert.Equal(t, 1.0, forecast.Days[0].PriceRatio)
	})

	t.Run("Desconto fora da faixa é rejeitado", func(t *testing.T) {
		frame := novemberFrame("Zapatillas Running", 2)

		_, err := svc.Simulate(frame, echoLag1(), "Zapatillas Running", 55, 0)
		assert.True(t, errors.Is(err, ErrDiscountOutOfRange))

		_, err = svc.Simulate(frame, echoLag1(), "Zapatillas Running", -51, 0)
		assert.True(t, errors.Is(err, ErrDiscountOutOfRange))
	})

	t.Run("Ajuste fora da faixa é rejeitado", func(t *testing.T) {
		frame := novemberFrame("Zapatillas Running", 2)

		_, err := svc.Simulate(frame, echoLag1(), "Zapatillas Running", 0, 60)
		assert.True(t, errors.Is(err, ErrAdjustmentOutOfRange))
	})

	t.Run("Produto inexistente é rejeitado", func(t *testing.T) {
		frame := novemberFrame("Zapatillas Running", 2)

		_, err := svc.Simulate(frame, echoLag1(), "Bicicleta Montaña", 0, 0)
		assert.True(t, errors.Is(err, ErrProductNotFound))
	})
}

func TestCompareScenarios(t *testing.T) {
	svc := NewService()
	frame := novemberFrame("Zapatillas Running", 10)

	comparison, err := svc.CompareScenarios(frame, echoLag1(), "Zapatillas Running", 15)
	require.NoError(t, err)

	require.Len(t, comparison.Scenarios, 3)
	assert.Equal(t, "Zapatillas Running", comparison.Product)
	assert.Equal(t, 15.0, comparison.DiscountPct)

	assert.Equal(t, -5.0, comparison.Scenarios[0].AdjustmentPct)
	assert.Equal(t, 0.0, comparison.Scenarios[1].AdjustmentPct)
	assert.Equal(t, 5.0, comparison.Scenarios[2].AdjustmentPct)

	// Mesmo desconto nos três cenários: o preço médio não muda.
	for _, scenario := range comparison.Scenarios {
		assert.InDelta(t, 85.0, scenario.Summary.AveragePrice, 1e-9)
	}
}
