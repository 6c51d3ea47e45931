package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/simulating"
	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

// writeSimulationError traduz os erros dos casos de uso para os
// códigos padronizados da API.
func writeSimulationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, simulating.ErrArtifactsNotLoaded):
		apiErrors.WriteError(w, apiErrors.ErrModelNotLoaded, "Execute o pipeline antes de simular", nil)
	case errors.Is(err, simulating.ErrProductRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Produto não informado", nil)
	case errors.Is(err, forecasting.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProductNotFound, err.Error(), nil)
	case errors.Is(err, forecasting.ErrDiscountOutOfRange),
		errors.Is(err, forecasting.ErrAdjustmentOutOfRange):
		apiErrors.WriteError(w, apiErrors.ErrDiscountOutOfRange, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar a simulação", nil)
	}
}

// Simulate executa uma simulação de desconto para um produto
func Simulate(service simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req simulating.SimulationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("simulation: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"product":        req.Product,
			"discount_pct":   req.DiscountPct,
			"competitor_pct": req.CompetitorAdjPct,
		}).Info("simulation: running discount simulation")

		result, err := service.Simulate(req)
		if err != nil {
			logger.WithFields(log.Fields{
				"product": req.Product,
				"error":   err.Error(),
			}).Warn("simulation: simulation rejected")

			writeSimulationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("simulation: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// CompareScenarios compara os cenários pré-definidos de concorrência
// para um produto e desconto fixos
func CompareScenarios(service simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		product := r.URL.Query().Get("product")

		discountPct := 0.0
		if raw := r.URL.Query().Get("discount_pct"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				logger.WithFields(log.Fields{
					"product":      product,
					"discount_pct": raw,
				}).Warn("simulation: invalid discount_pct parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro discount_pct inválido", nil)
				return
			}
			discountPct = parsed
		}

		logger.WithFields(log.Fields{
			"product":      product,
			"discount_pct": discountPct,
		}).Info("simulation: comparing competitor scenarios")

		comparison, err := service.CompareScenarios(product, discountPct)
		if err != nil {
			logger.WithFields(log.Fields{
				"product": product,
				"error":   err.Error(),
			}).Warn("simulation: scenario comparison rejected")

			writeSimulationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(comparison); err != nil {
			logger.WithError(err).Error("simulation: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
