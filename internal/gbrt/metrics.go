package gbrt

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

// Evaluate calcula MAE, RMSE e R² das previsões contra os valores
// observados. R² indefinido (alvo constante) é reportado como zero.
func Evaluate(predicted, actual []float64) (domain.EvaluationMetrics, error) {
	if len(predicted) == 0 || len(predicted) != len(actual) {
		return domain.EvaluationMetrics{}, ErrDimensionMismatch
	}

	n := float64(len(predicted))

	residuals := make([]float64, len(predicted))
	copy(residuals, predicted)
	floats.Sub(residuals, actual)

	var absSum float64
	for _, r := range residuals {
		absSum += math.Abs(r)
	}

	sse := floats.Dot(residuals, residuals)

	mean := stat.Mean(actual, nil)
	deviations := make([]float64, len(actual))
	for i, a := range actual {
		deviations[i] = a - mean
	}
	sst := floats.Dot(deviations, deviations)

	r2 := 0.0
	if sst > 0 {
		r2 = 1 - sse/sst
	}

	return domain.EvaluationMetrics{
		MAE:  absSum / n,
		RMSE: math.Sqrt(sse / n),
		R2:   r2,
		Rows: len(predicted),
	}, nil
}
