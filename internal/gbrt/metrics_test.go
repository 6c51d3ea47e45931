package gbrt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("Deve calcular MAE, RMSE e R² corretamente", func(t *testing.T) {
		predicted := []float64{3, 5}
		actual := []float64{1, 5}

		metrics, err := Evaluate(predicted, actual)
		require.NoError(t, err)

		assert.InDelta(t, 1.0, metrics.MAE, 1e-9)
		assert.InDelta(t, math.Sqrt(2), metrics.RMSE, 1e-9)
		// SSE = 4, SST = 8
		assert.InDelta(t, 0.5, metrics.R2, 1e-9)
		assert.Equal(t, 2, metrics.Rows)
	})

	t.Run("Previsão perfeita deve ter R² igual a 1", func(t *testing.T) {
		values := []float64{2, 4, 6, 8}

		metrics, err := Evaluate(values, values)
		require.NoError(t, err)

		assert.Equal(t, 0.0, metrics.MAE)
		assert.Equal(t, 0.0, metrics.RMSE)
		assert.InDelta(t, 1.0, metrics.R2, 1e-9)
	})

	t.Run("Alvo constante deve reportar R² como zero", func(t *testing.T) {
		metrics, err := Evaluate([]float64{5, 5}, []float64{4, 4})
		require.NoError(t, err)

		assert.Equal(t, 0.0, metrics.R2)
	})

	t.Run("Deve falhar com vetores de tamanhos diferentes", func(t *testing.T) {
		_, err := Evaluate([]float64{1}, []float64{1, 2})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("Deve falhar com vetores vazios", func(t *testing.T) {
		_, err := Evaluate(nil, nil)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}
