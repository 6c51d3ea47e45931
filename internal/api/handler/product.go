package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-forecast-api/internal/usecases/simulating"
	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

// ListProducts lista os produtos disponíveis para simulação
func ListProducts(service simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.ListProducts()
		if err != nil {
			logger.WithError(err).Warn("products: failed to list products")
			writeSimulationError(w, err)
			return
		}

		logger.WithField("products", len(products)).Info("products: listing simulatable products")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("products: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
