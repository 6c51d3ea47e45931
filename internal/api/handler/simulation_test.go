package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/simulating"
	simulatormocks "github.com/vfg2006/sales-forecast-api/internal/usecases/simulating/mocks"
	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
)

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))

	return apiErr
}

func TestSimulateHandler(t *testing.T) {
	validBody := `{"product":"Camiseta Tecnica Dry","discount_pct":15,"competitor_adjustment_pct":5}`

	tests := []struct {
		name       string
		body       string
		setup      func(service *simulatormocks.MockSimulator)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Simulação válida responde 200 com o resultado",
			body: validBody,
			setup: func(service *simulatormocks.MockSimulator) {
				service.EXPECT().Simulate(gomock.Any()).Return(&domain.SimulationResult{
					Product:     "Camiseta Tecnica Dry",
					DiscountPct: 15,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Corpo inválido responde 400 com código de formato",
			body:       `{"product":`,
			setup:      func(service *simulatormocks.MockSimulator) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "Artefatos não carregados respondem 503",
			body: validBody,
			setup: func(service *simulatormocks.MockSimulator) {
				service.EXPECT().Simulate(gomock.Any()).Return(nil, simulating.ErrArtifactsNotLoaded)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   apiErrors.ErrModelNotLoaded,
		},
		{
			name: "Produto não informado responde 400 com código de dados obrigatórios",
			body: `{"discount_pct":10}`,
			setup: func(service *simulatormocks.MockSimulator) {
				service.EXPECT().Simulate(gomock.Any()).Return(nil, simulating.ErrProductRequired)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Produto inexistente responde 404",
			body: validBody,
			setup: func(service *simulatormocks.MockSimulator) {
				service.EXPECT().Simulate(gomock.Any()).
					Return(nil, errors.Wrap(forecasting.ErrProductNotFound, "\"Patines\""))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrProductNotFound,
		},
		{
			name: "Desconto fora da faixa responde 400 com código de simulação",
			body: `{"product":"Camiseta Tecnica Dry","discount_pct":80}`,
			setup: func(service *simulatormocks.MockSimulator) {
				service.EXPECT().Simulate(gomock.Any()).
					Return(nil, errors.Wrap(forecasting.ErrDiscountOutOfRange, "80.0%"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrDiscountOutOfRange,
		},
		{
			name: "Ajuste de concorrência fora da faixa responde 400",
			body: validBody,
			setup: func(service *simulatormocks.MockSimulator) {
				service.EXPECT().Simulate(gomock.Any()).
					Return(nil, errors.Wrap(forecasting.ErrAdjustmentOutOfRange, "90.0%"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrDiscountOutOfRange,
		},
		{
			name: "Erro inesperado responde 500",
			body: validBody,
			setup: func(service *simulatormocks.MockSimulator) {
				service.EXPECT().Simulate(gomock.Any()).Return(nil, errors.New("disco indisponível"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := simulatormocks.NewMockSimulator(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodPost, "/v1/simulations", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			Simulate(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestCompareScenariosHandler(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(service *simulatormocks.MockSimulator)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "Comparação válida responde 200 com os três cenários",
			target: "/v1/simulations/scenarios?product=Camiseta%20Tecnica%20Dry&discount_pct=10",
			setup: func(service *simulatormocks.MockSimulator) {
				service.EXPECT().CompareScenarios("Camiseta Tecnica Dry", 10.0).
					Return(&domain.ScenarioComparison{
						Product:     "Camiseta Tecnica Dry",
						DiscountPct: 10,
						Scenarios: []domain.Scenario{
							{Name: "Concorrência -5%", AdjustmentPct: -5},
							{Name: "Preços atuais"},
							{Name: "Concorrência +5%", AdjustmentPct: 5},
						},
					}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Parâmetro de desconto ilegível responde 400",
			target:     "/v1/simulations/scenarios?product=Camiseta%20Tecnica%20Dry&discount_pct=dez",
			setup:      func(service *simulatormocks.MockSimulator) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Produto ausente responde 400",
			target: "/v1/simulations/scenarios?discount_pct=10",
			setup: func(service *simulatormocks.MockSimulator) {
				service.EXPECT().CompareScenarios("", 10.0).Return(nil, simulating.ErrProductRequired)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := simulatormocks.NewMockSimulator(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			CompareScenarios(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}

			if tt.wantStatus == http.StatusOK {
				var comparison domain.ScenarioComparison
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&comparison))
				assert.Len(t, comparison.Scenarios, 3)
			}
		})
	}
}
