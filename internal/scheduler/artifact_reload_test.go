package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	storemocks "github.com/vfg2006/sales-forecast-api/infrastructure/artifact/mocks"
	simulatormocks "github.com/vfg2006/sales-forecast-api/internal/usecases/simulating/mocks"
)

func TestArtifactReloadService_reloadIfChanged(t *testing.T) {
	rewriteTime := time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lastSeen time.Time
		setup    func(store *storemocks.MockStore, simulator *simulatormocks.MockSimulator)
		validate func(t *testing.T, service *ArtifactReloadService)
	}{
		{
			name: "Artefatos regravados - recarrega o simulador",
			setup: func(store *storemocks.MockStore, simulator *simulatormocks.MockSimulator) {
				store.EXPECT().ModifiedAt().Return(rewriteTime, nil)
				simulator.EXPECT().Reload().Return(nil)
			},
			validate: func(t *testing.T, service *ArtifactReloadService) {
				assert.Equal(t, rewriteTime, service.lastSeenModifiedAt)
				assert.False(t, service.lastReloadAppliedAt.IsZero())
			},
		},
		{
			name:     "Artefatos inalterados - não recarrega",
			lastSeen: rewriteTime,
			setup: func(store *storemocks.MockStore, simulator *simulatormocks.MockSimulator) {
				store.EXPECT().ModifiedAt().Return(rewriteTime, nil)
				// Nenhuma chamada a Reload é esperada.
			},
			validate: func(t *testing.T, service *ArtifactReloadService) {
				assert.True(t, service.lastReloadAppliedAt.IsZero())
			},
		},
		{
			name: "Artefatos indisponíveis - mantém o estado anterior",
			setup: func(store *storemocks.MockStore, simulator *simulatormocks.MockSimulator) {
				store.EXPECT().ModifiedAt().Return(time.Time{}, errors.New("artefato não encontrado"))
			},
			validate: func(t *testing.T, service *ArtifactReloadService) {
				assert.True(t, service.lastSeenModifiedAt.IsZero())
				assert.True(t, service.lastReloadAppliedAt.IsZero())
			},
		},
		{
			name: "Erro na recarga - não avança o marcador de versão",
			setup: func(store *storemocks.MockStore, simulator *simulatormocks.MockSimulator) {
				store.EXPECT().ModifiedAt().Return(rewriteTime, nil)
				simulator.EXPECT().Reload().Return(errors.New("quadro corrompido"))
			},
			validate: func(t *testing.T, service *ArtifactReloadService) {
				assert.True(t, service.lastSeenModifiedAt.IsZero())
				assert.True(t, service.lastReloadAppliedAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := storemocks.NewMockStore(ctrl)
			mockSimulator := simulatormocks.NewMockSimulator(ctrl)

			service := &ArtifactReloadService{
				store:              mockStore,
				simulator:          mockSimulator,
				lastSeenModifiedAt: tt.lastSeen,
			}

			tt.setup(mockStore, mockSimulator)
			service.reloadIfChanged()
			tt.validate(t, service)
		})
	}
}

func TestArtifactReloadService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storemocks.NewMockStore(ctrl)
	mockSimulator := simulatormocks.NewMockSimulator(ctrl)

	loadedAt := time.Date(2025, 10, 20, 8, 5, 0, 0, time.UTC)
	mockStore.EXPECT().Dir().Return("/var/artifacts")
	mockSimulator.EXPECT().LoadedAt().Return(loadedAt)

	service := &ArtifactReloadService{
		store:     mockStore,
		simulator: mockSimulator,
		config: ArtifactReloadConfig{
			CronSchedule:  "*/5 * * * *",
			ReloadEnabled: true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["reload_enabled"])
	assert.Equal(t, "*/5 * * * *", status["reload_cron"])
	assert.Equal(t, "/var/artifacts", status["artifacts_dir"])
	assert.Equal(t, loadedAt, status["artifacts_loaded_at"])
}

// O handler de status atende em paralelo às verificações do agendador;
// os carimbos de tempo precisam ser consistentes sob o detector de
// corrida.
func TestArtifactReloadService_StatusConcorrenteComRecarga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storemocks.NewMockStore(ctrl)
	mockSimulator := simulatormocks.NewMockSimulator(ctrl)

	rewriteTime := time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC)
	mockStore.EXPECT().ModifiedAt().Return(rewriteTime, nil).AnyTimes()
	mockStore.EXPECT().Dir().Return("/var/artifacts").AnyTimes()
	mockSimulator.EXPECT().Reload().Return(nil).AnyTimes()
	mockSimulator.EXPECT().LoadedAt().Return(rewriteTime).AnyTimes()

	service := &ArtifactReloadService{
		store:     mockStore,
		simulator: mockSimulator,
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			service.reloadIfChanged()
		}()
		go func() {
			defer wg.Done()
			_ = service.GetStatus()
		}()
	}
	wg.Wait()

	status := service.GetStatus()
	assert.False(t, status["last_reload_started_at"].(time.Time).IsZero())
}
