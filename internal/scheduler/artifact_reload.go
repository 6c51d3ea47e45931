package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-forecast-api/infrastructure/artifact"
	"github.com/vfg2006/sales-forecast-api/internal/config"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/simulating"
)

// ArtifactReloadConfig representa a configuração do agendador de
// recarga de artefatos
type ArtifactReloadConfig struct {
	CronSchedule  string
	ReloadEnabled bool
}

// ArtifactReloadService observa o diretório de artefatos e recarrega o
// simulador quando o pipeline regrava o modelo ou o quadro de
// inferência
type ArtifactReloadService struct {
	scheduler           *gocron.Scheduler
	config              ArtifactReloadConfig
	appConfig           *config.Config
	store               artifact.Store
	simulator           simulating.Simulator
	reloadRunning       bool
	reloadMutex         sync.Mutex
	lastSeenModifiedAt  time.Time
	lastReloadStartedAt time.Time
	lastReloadAppliedAt time.Time
}

// NewArtifactReloadService cria uma nova instância do serviço de
// recarga de artefatos
func NewArtifactReloadService(
	store artifact.Store,
	simulator simulating.Simulator,
	appConfig *config.Config,
) *ArtifactReloadService {
	// Criar a configuração com base na config global
	reloadConfig := ArtifactReloadConfig{
		CronSchedule:  appConfig.ArtifactReload.CronSchedule,
		ReloadEnabled: appConfig.ArtifactReload.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  reloadConfig.CronSchedule,
		"reload_enabled": reloadConfig.ReloadEnabled,
	}).Info("Configuração do agendador de recarga de artefatos carregada")

	return &ArtifactReloadService{
		scheduler:     scheduler,
		config:        reloadConfig,
		appConfig:     appConfig,
		store:         store,
		simulator:     simulator,
		reloadRunning: false,
	}
}

// Start inicia o agendador
func (s *ArtifactReloadService) Start(ctx context.Context) error {
	if !s.config.ReloadEnabled {
		logrus.Info("Recarga automática de artefatos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga de artefatos")

	// Agendar a verificação de artefatos
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reloadIfChanged()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de artefatos: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga de artefatos")
		s.scheduler.Stop()
	}()

	return nil
}

// reloadIfChanged recarrega o simulador quando algum artefato foi
// regravado desde a última verificação
func (s *ArtifactReloadService) reloadIfChanged() {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga de artefatos já em andamento, ignorando")
		return
	}
	s.reloadRunning = true
	s.lastReloadStartedAt = time.Now()
	lastSeen := s.lastSeenModifiedAt
	s.reloadMutex.Unlock()

	defer func() {
		s.reloadMutex.Lock()
		s.reloadRunning = false
		s.reloadMutex.Unlock()
	}()

	modifiedAt, err := s.store.ModifiedAt()
	if err != nil {
		logrus.WithError(err).Warn("Artefatos indisponíveis durante a verificação de recarga")
		return
	}

	if !modifiedAt.After(lastSeen) {
		logrus.Debug("Artefatos inalterados desde a última verificação")
		return
	}

	logrus.WithFields(logrus.Fields{
		"modified_at": modifiedAt,
		"last_seen":   lastSeen,
	}).Info("Artefatos regravados, recarregando o simulador")

	if err := s.simulator.Reload(); err != nil {
		logrus.WithError(err).Error("Erro ao recarregar artefatos no simulador")
		return
	}

	s.reloadMutex.Lock()
	s.lastSeenModifiedAt = modifiedAt
	s.lastReloadAppliedAt = time.Now()
	s.reloadMutex.Unlock()

	logrus.Info("Recarga de artefatos concluída com sucesso")
}

// TriggerManualReload dispara manualmente uma verificação de recarga
func (s *ArtifactReloadService) TriggerManualReload() {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga de artefatos já em andamento, ignorando solicitação manual")
		return
	}
	s.reloadMutex.Unlock()

	logrus.Info("Iniciando recarga manual de artefatos")
	go s.reloadIfChanged()
}

// GetStatus retorna o status atual do agendador. Os carimbos de tempo
// são lidos sob o mutex: o handler de status atende em paralelo às
// recargas.
func (s *ArtifactReloadService) GetStatus() map[string]any {
	s.reloadMutex.Lock()
	lastStartedAt := s.lastReloadStartedAt
	lastAppliedAt := s.lastReloadAppliedAt
	s.reloadMutex.Unlock()

	return map[string]any{
		"reload_enabled":         s.config.ReloadEnabled,
		"reload_cron":            s.config.CronSchedule,
		"artifacts_dir":          s.store.Dir(),
		"artifacts_loaded_at":    s.simulator.LoadedAt(),
		"last_reload_started_at": lastStartedAt,
		"last_reload_applied_at": lastAppliedAt,
	}
}
