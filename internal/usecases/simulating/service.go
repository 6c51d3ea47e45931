// Package simulating é o serviço por trás do visualizador interativo:
// mantém os artefatos carregados (modelo e quadro de inferência),
// valida as requisições e delega a pontuação ao forecasting.
package simulating

import (
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/sales-forecast-api/infrastructure/artifact"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

// SimulationRequest é o pedido de simulação vindo do visualizador.
type SimulationRequest struct {
	Product          string  `json:"product"`
	DiscountPct      float64 `json:"discount_pct"`
	CompetitorAdjPct float64 `json:"competitor_adjustment_pct"`
}

type Simulator interface {
	ListProducts() ([]domain.ProductInfo, error)
	Simulate(req SimulationRequest) (*domain.SimulationResult, error)
	CompareScenarios(product string, discountPct float64) (*domain.ScenarioComparison, error)
	BaselineForecast() ([]domain.ProductForecast, error)
	ModelInfo() (*domain.ModelInfo, error)

	// Reload recarrega os artefatos do repositório e os troca de forma
	// atômica; simulações em andamento seguem com a versão anterior.
	Reload() error
	LoadedAt() time.Time
}

type service struct {
	store      artifact.Store
	forecaster forecasting.Forecaster

	mu       sync.RWMutex
	model    *artifact.ModelArtifact
	frame    []domain.FrameRow
	baseline []domain.ProductForecast
	loadedAt time.Time
}

func NewService(store artifact.Store, forecaster forecasting.Forecaster) Simulator {
	return &service{
		store:      store,
		forecaster: forecaster,
	}
}

func (s *service) Reload() error {
	model, err := s.store.LoadModel()
	if err != nil {
		return err
	}

	frame, err := s.store.LoadFrame()
	if err != nil {
		return err
	}

	baseline, err := s.store.LoadForecast()
	if err != nil {
		// A previsão base é opcional para simular; sem ela apenas a
		// rota de baseline fica indisponível.
		log.L.WithError(err).Warn("simulação: previsão base indisponível, seguindo sem ela")
		baseline = nil
	}

	s.mu.Lock()
	s.model = model
	s.frame = frame
	s.baseline = baseline
	s.loadedAt = time.Now()
	s.mu.Unlock()

	log.L.WithFields(log.Fields{
		"run_id":   model.Info.RunID,
		"products": len(model.Info.Products),
		"rows":     len(frame),
	}).Info("simulação: artefatos carregados")

	return nil
}

func (s *service) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}

func (s *service) ListProducts() ([]domain.ProductInfo, error) {
	_, frame, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	products := make([]domain.ProductInfo, 0)

	for _, row := range frame {
		if _, ok := seen[row.Product]; ok {
			continue
		}
		seen[row.Product] = struct{}{}

		products = append(products, domain.ProductInfo{
			Name:        row.Product,
			Category:    row.Category,
			Subcategory: row.Subcategory,
		})
	}

	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	return products, nil
}

func (s *service) Simulate(req SimulationRequest) (*domain.SimulationResult, error) {
	if req.Product == "" {
		return nil, ErrProductRequired
	}

	model, frame, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	forecast, err := s.forecaster.Simulate(frame, model.Model, req.Product, req.DiscountPct, req.CompetitorAdjPct)
	if err != nil {
		return nil, err
	}

	return &domain.SimulationResult{
		Product:          forecast.Product,
		DiscountPct:      req.DiscountPct,
		CompetitorAdjPct: req.CompetitorAdjPct,
		GeneratedAt:      time.Now(),
		Days:             forecast.Days,
		Summary:          forecast.Summary,
	}, nil
}

func (s *service) CompareScenarios(product string, discountPct float64) (*domain.ScenarioComparison, error) {
	if product == "" {
		return nil, ErrProductRequired
	}

	model, frame, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return s.forecaster.CompareScenarios(frame, model.Model, product, discountPct)
}

func (s *service) BaselineForecast() ([]domain.ProductForecast, error) {
	s.mu.RLock()
	baseline := s.baseline
	s.mu.RUnlock()

	if baseline == nil {
		return nil, ErrArtifactsNotLoaded
	}

	return baseline, nil
}

func (s *service) ModelInfo() (*domain.ModelInfo, error) {
	model, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	info := model.Info

	return &info, nil
}

// snapshot retorna a versão corrente dos artefatos. As simulações
// trabalham sobre a referência capturada: um Reload concorrente nunca
// troca os dados no meio de uma pontuação.
func (s *service) snapshot() (*artifact.ModelArtifact, []domain.FrameRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.model == nil || len(s.frame) == 0 {
		return nil, nil, ErrArtifactsNotLoaded
	}

	return s.model, s.frame, nil
}
