package training

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-forecast-api/internal/feature"
)

// syntheticSet gera um histórico linear com ruído determinístico: a
// venda cresce com o dia e cai com o preço.
func syntheticSet(days int) *feature.TrainingSet {
	ts := &feature.TrainingSet{
		FeatureNames: []string{"precio_venta", "dia_semana", "unidades_vendidas_lag1"},
	}

	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	prev := 10.0

	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		price := 80.0 + float64(d%5)
		units := 50.0 - 0.4*price + 0.5*prev + float64(d%7)

		ts.X = append(ts.X, []float64{price, float64(d % 7), prev})
		ts.Y = append(ts.Y, units)
		ts.Dates = append(ts.Dates, date)
		ts.Products = append(ts.Products, "Zapatillas Running")

		prev = units
	}

	return ts
}

func TestTrain(t *testing.T) {
	t.Run("Treina com configuração padrão e mede a validação", func(t *testing.T) {
		trainer := NewService(Config{ValidationDays: 7, Seed: 42})

		result, err := trainer.Train(syntheticSet(60))
		require.NoError(t, err)

		require.NotNil(t, result.Model)
		assert.Equal(t, 60, result.TrainingRows)
		assert.Equal(t, 7, result.ValidationRows)
		assert.Greater(t, result.Metrics.RMSE, 0.0)
		assert.GreaterOrEqual(t, result.Metrics.MAE, 0.0)
		require.Len(t, result.Grid, 1)
		assert.True(t, result.Grid[0].Chosen)
	})

	t.Run("Busca em grade escolhe o menor RMSE de validação", func(t *testing.T) {
		trainer := NewService(Config{ValidationDays: 7, GridSearch: true, Seed: 42})

		result, err := trainer.Train(syntheticSet(60))
		require.NoError(t, err)

		require.Len(t, result.Grid, len(grid))

		var chosen int
		best := result.Grid[0].Metrics.RMSE
		for _, candidate := range result.Grid {
			if candidate.Metrics.RMSE < best {
				best = candidate.Metrics.RMSE
			}
			if candidate.Chosen {
				chosen++
			}
		}

		assert.Equal(t, 1, chosen)
		assert.Equal(t, best, result.Metrics.RMSE)
		assert.Equal(t, result.Params.Trees, chosenParams(result).Trees)
	})

	t.Run("Treino é determinístico para a mesma semente", func(t *testing.T) {
		first, err := NewService(Config{ValidationDays: 7, Seed: 7}).Train(syntheticSet(45))
		require.NoError(t, err)

		second, err := NewService(Config{ValidationDays: 7, Seed: 7}).Train(syntheticSet(45))
		require.NoError(t, err)

		assert.Equal(t, first.Metrics, second.Metrics)

		row := []float64{82, 3, 12}
		assert.Equal(t, first.Model.Predict(row), second.Model.Predict(row))
	})

	t.Run("Matriz vazia é rejeitada", func(t *testing.T) {
		trainer := NewService(Config{ValidationDays: 7})

		_, err := trainer.Train(nil)
		assert.True(t, errors.Is(err, ErrNoTrainingSet))

		_, err = trainer.Train(&feature.TrainingSet{})
		assert.True(t, errors.Is(err, ErrNoTrainingSet))
	})

	t.Run("Histórico menor que o período de validação é rejeitado", func(t *testing.T) {
		trainer := NewService(Config{ValidationDays: 30})

		_, err := trainer.Train(syntheticSet(10))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInsufficientHistory))
	})
}

func chosenParams(result *Result) (params struct{ Trees int }) {
	for _, candidate := range result.Grid {
		if candidate.Chosen {
			params.Trees = candidate.Params.Trees
		}
	}

	return params
}
