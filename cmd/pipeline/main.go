package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast-api/infrastructure/artifact"
	"github.com/vfg2006/sales-forecast-api/infrastructure/dataset"
	"github.com/vfg2006/sales-forecast-api/infrastructure/export"
	"github.com/vfg2006/sales-forecast-api/internal/config"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/feature"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/training"
	"github.com/vfg2006/sales-forecast-api/pkg/utils"
)

// topFeatureCount limita a lista de variáveis mais importantes gravada
// nos metadados do modelo.
const topFeatureCount = 10

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	runID, err := utils.GenerateRunID()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar o identificador da execução")
	}

	startedAt := time.Now()
	targetMonth := fmt.Sprintf("%04d-%02d", cfg.Forecast.TargetYear, cfg.Forecast.TargetMonth)

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"mes_alvo":  targetMonth,
		"artefatos": cfg.Artifacts.Dir,
	}).Info("Iniciando execução do pipeline de previsão")

	// Leitura dos dados de entrada
	reader := dataset.NewReader()

	sales, err := reader.ReadSales(cfg.Dataset.SalesPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o histórico de vendas")
	}
	logrus.WithFields(logrus.Fields{
		"arquivo": cfg.Dataset.SalesPath,
		"linhas":  len(sales),
	}).Info("Histórico de vendas carregado")

	plan, err := reader.ReadPlan(cfg.Dataset.PlanPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o plano comercial")
	}
	logrus.WithFields(logrus.Fields{
		"arquivo": cfg.Dataset.PlanPath,
		"linhas":  len(plan),
	}).Info("Plano comercial carregado")

	// Montagem das variáveis
	builder := feature.NewBuilder()

	ts, err := builder.TrainingSet(sales)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar a matriz de treino")
	}

	// Treino com validação cronológica e busca em grade
	trainer := training.NewService(training.Config{
		ValidationDays: cfg.Training.ValidationDays,
		GridSearch:     cfg.Training.GridSearch,
		Seed:           cfg.Training.Seed,
	})

	result, err := trainer.Train(ts)
	if err != nil {
		logrus.WithError(err).Fatal("Erro no treino do modelo")
	}

	// Quadro de inferência do mês alvo
	frame, err := builder.InferenceFrame(plan, sales, cfg.Forecast.TargetYear, time.Month(cfg.Forecast.TargetMonth))
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o quadro de inferência")
	}

	// Previsão base com os preços do plano
	forecaster := forecasting.NewService()

	baseline, err := forecaster.Baseline(frame, result.Model)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar a previsão base")
	}

	// Gravação dos artefatos
	store, err := artifact.NewStore(cfg.Artifacts.Dir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o diretório de artefatos")
	}

	products := productNames(frame)

	info := domain.ModelInfo{
		RunID:        runID,
		TrainedAt:    result.TrainedAt,
		TargetMonth:  targetMonth,
		TrainingRows: result.TrainingRows,
		Products:     products,
		FeatureNames: result.Model.FeatureNames(),
		Hyperparams:  result.Params,
		Metrics:      result.Metrics,
		TopFeatures:  topFeatures(result.Model.FeatureNames(), result.Model.Importance),
	}

	if err := store.SaveModel(&artifact.ModelArtifact{Info: info, Model: result.Model}); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar o modelo")
	}

	if err := store.SaveFrame(frame); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar o quadro de inferência")
	}

	if err := store.SaveForecast(baseline); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar a previsão base")
	}

	report := &domain.MetricsReport{Validation: result.Metrics, Grid: result.Grid}
	if err := store.SaveMetrics(report); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar as métricas")
	}
	logrus.Debug("Métricas da execução:\n", utils.PrettyJson(report))

	excelPath := filepath.Join(cfg.Artifacts.Dir, artifact.ExcelFile)
	if err := export.NewExcelWriter().WriteForecast(excelPath, baseline); err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar a planilha da previsão")
	}

	salesHash, err := fileSHA256(cfg.Dataset.SalesPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao calcular o hash do histórico de vendas")
	}
	planHash, err := fileSHA256(cfg.Dataset.PlanPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao calcular o hash do plano comercial")
	}

	runInfo := &domain.RunInfo{
		ID:             runID,
		StartedAt:      startedAt,
		CompletedAt:    time.Now(),
		SalesPath:      cfg.Dataset.SalesPath,
		PlanPath:       cfg.Dataset.PlanPath,
		SalesSHA256:    salesHash,
		PlanSHA256:     planHash,
		SalesRows:      len(sales),
		PlanRows:       len(plan),
		TrainingRows:   result.TrainingRows,
		ValidationRows: result.ValidationRows,
		Products:       len(products),
		TargetMonth:    targetMonth,
		Config: domain.RunConfig{
			ValidationDays: cfg.Training.ValidationDays,
			GridSearch:     cfg.Training.GridSearch,
			Seed:           cfg.Training.Seed,
			TargetYear:     cfg.Forecast.TargetYear,
			TargetMonth:    cfg.Forecast.TargetMonth,
		},
		Artifacts: []string{
			artifact.ModelFile,
			artifact.FrameFile,
			artifact.ForecastFile,
			artifact.ExcelFile,
			artifact.MetricsFile,
		},
	}

	if err := store.SaveRunInfo(runInfo); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar os metadados da execução")
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duracao":  time.Since(startedAt).Round(time.Millisecond).String(),
		"produtos": len(products),
		"rmse":     result.Metrics.RMSE,
		"mae":      result.Metrics.MAE,
		"r2":       result.Metrics.R2,
	}).Info("Pipeline concluído com sucesso")
}

// fileSHA256 calcula o hash do arquivo de entrada gravado nos
// metadados da execução.
func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func productNames(frame []domain.FrameRow) []string {
	seen := map[string]struct{}{}
	names := make([]string, 0)

	for _, row := range frame {
		if _, ok := seen[row.Product]; ok {
			continue
		}
		seen[row.Product] = struct{}{}
		names = append(names, row.Product)
	}

	sort.Strings(names)

	return names
}

// topFeatures ordena as variáveis por importância e devolve as mais
// relevantes para os metadados do modelo.
func topFeatures(names []string, importance []float64) []domain.FeatureImportance {
	if len(names) != len(importance) {
		return nil
	}

	ranked := make([]domain.FeatureImportance, len(names))
	for i, name := range names {
		ranked[i] = domain.FeatureImportance{Feature: name, Importance: importance[i]}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Importance > ranked[j].Importance })

	if len(ranked) > topFeatureCount {
		ranked = ranked[:topFeatureCount]
	}

	return ranked
}
