package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-forecast-api/internal/scheduler"
	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
)

// ReloadArtifacts dispara manualmente a recarga dos artefatos do
// simulador
func ReloadArtifacts(service *scheduler.ArtifactReloadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReloadArtifacts")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga de artefatos não disponível", nil)
			return
		}

		service.TriggerManualReload()

		response := map[string]any{
			"message": "Recarga de artefatos iniciada com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetArtifactStatus retorna o status do agendador de recarga
func GetArtifactStatus(service *scheduler.ArtifactReloadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetArtifactStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga de artefatos não disponível", nil)
			return
		}

		json.NewEncoder(w).Encode(service.GetStatus())
	}
}
