package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/sales-forecast-api/internal/scheduler"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/simulating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// UI retorna as rotas do visualizador embutido
func UI() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Viewer(),
		},
		{
			Path:    "/ui",
			Method:  http.MethodGet,
			Handler: Viewer(),
		},
	}
}

// Simulations retorna as rotas de produtos e simulações de desconto
func Simulations(service simulating.Simulator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/simulations",
			Method:  http.MethodPost,
			Handler: Simulate(service),
		},
		{
			Path:    "/v1/simulations/scenarios",
			Method:  http.MethodGet,
			Handler: CompareScenarios(service),
		},
	}
}

// Forecasts retorna as rotas da previsão base e do modelo
func Forecasts(service simulating.Simulator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/forecast/baseline",
			Method:  http.MethodGet,
			Handler: BaselineForecast(service),
		},
		{
			Path:    "/v1/model",
			Method:  http.MethodGet,
			Handler: ModelInfo(service),
		},
	}
}

// Artifacts retorna as rotas de recarga e status dos artefatos
func Artifacts(service *scheduler.ArtifactReloadService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/artifacts/reload",
			Method:  http.MethodPost,
			Handler: ReloadArtifacts(service),
		},
		{
			Path:    "/v1/artifacts/status",
			Method:  http.MethodGet,
			Handler: GetArtifactStatus(service),
		},
	}
}
