package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-forecast-api/internal/usecases/simulating"
	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

// BaselineForecast retorna a previsão base gravada pelo pipeline
func BaselineForecast(service simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		forecasts, err := service.BaselineForecast()
		if err != nil {
			logger.WithError(err).Warn("forecast: baseline forecast unavailable")
			writeSimulationError(w, err)
			return
		}

		logger.WithField("products", len(forecasts)).Info("forecast: returning baseline forecast")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(forecasts); err != nil {
			logger.WithError(err).Error("forecast: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ModelInfo retorna os metadados e as métricas do modelo carregado
func ModelInfo(service simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		info, err := service.ModelInfo()
		if err != nil {
			logger.WithError(err).Warn("model: model info unavailable")
			writeSimulationError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"run_id":     info.RunID,
			"model_rmse": info.Metrics.RMSE,
		}).Info("model: returning model info")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(info); err != nil {
			logger.WithError(err).Error("model: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
