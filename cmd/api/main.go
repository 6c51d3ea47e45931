package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast-api/infrastructure/artifact"
	"github.com/vfg2006/sales-forecast-api/internal/api"
	"github.com/vfg2006/sales-forecast-api/internal/config"
	"github.com/vfg2006/sales-forecast-api/internal/scheduler"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/simulating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := artifact.NewStore(cfg.Artifacts.Dir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o diretório de artefatos")
	}

	forecaster := forecasting.NewService()
	simulator := simulating.NewService(store, forecaster)

	// A carga inicial é tolerante: sem artefatos o servidor sobe e o
	// agendador aplica a primeira versão que o pipeline gravar.
	if err := simulator.Reload(); err != nil {
		logrus.WithError(err).Warn("Artefatos indisponíveis na inicialização, aguardando o pipeline")
	} else {
		logrus.Info("Artefatos carregados com sucesso na inicialização")
	}

	artifactReloadService := scheduler.NewArtifactReloadService(store, simulator, cfg)

	if err := artifactReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de artefatos")
	} else {
		logrus.Info("Agendador de recarga de artefatos iniciado com sucesso")
	}

	server, err := api.New(cfg, simulator, artifactReloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
