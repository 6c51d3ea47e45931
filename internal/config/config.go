package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Artifacts      Artifacts      `mapstructure:",squash"`
	Training       Training       `mapstructure:",squash"`
	Forecast       Forecast       `mapstructure:",squash"`
	ArtifactReload ArtifactReload `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Dataset struct {
	SalesPath string `mapstructure:"dataset_sales_path"`
	PlanPath  string `mapstructure:"dataset_plan_path"`
}

type Artifacts struct {
	Dir string `mapstructure:"artifacts_dir"`
}

type Training struct {
	ValidationDays int   `mapstructure:"training_validation_days"`
	GridSearch     bool  `mapstructure:"training_grid_search"`
	Seed           int64 `mapstructure:"training_seed"`
}

type Forecast struct {
	TargetYear  int `mapstructure:"forecast_target_year"`
	TargetMonth int `mapstructure:"forecast_target_month"`
}

type ArtifactReload struct {
	CronSchedule string `mapstructure:"artifact_reload_cron"`
	Enabled      bool   `mapstructure:"artifact_reload_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_SALES_PATH", "data/ventas_diarias.csv")
	viper.SetDefault("DATASET_PLAN_PATH", "data/plan_noviembre.csv")

	viper.SetDefault("ARTIFACTS_DIR", "artifacts")

	// Defaults do treino do modelo
	viper.SetDefault("TRAINING_VALIDATION_DAYS", 14) // Duas semanas de validação cronológica
	viper.SetDefault("TRAINING_GRID_SEARCH", true)   // Habilitar busca em grade de hiperparâmetros
	viper.SetDefault("TRAINING_SEED", 42)            // Semente da subamostragem

	// Defaults do horizonte de previsão
	viper.SetDefault("FORECAST_TARGET_YEAR", 2025)
	viper.SetDefault("FORECAST_TARGET_MONTH", 11) // Novembro

	// Defaults da recarga de artefatos do simulador
	viper.SetDefault("ARTIFACT_RELOAD_CRON", "*/5 * * * *") // A cada cinco minutos
	viper.SetDefault("ARTIFACT_RELOAD_ENABLED", true)       // Habilitar recarga automática

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
