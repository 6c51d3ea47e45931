// Package artifact contém o repositório de artefatos do pipeline:
// modelo treinado, quadro de inferência, previsão base e metadados,
// todos gravados como arquivos comuns no diretório configurado.
package artifact

import (
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/gbrt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nomes dos arquivos de artefato dentro do diretório configurado.
const (
	ModelFile    = "modelo_gbrt.json"
	FrameFile    = "inferencia_noviembre.csv"
	ForecastFile = "forecast_noviembre.csv"
	ExcelFile    = "forecast_noviembre.xlsx"
	MetricsFile  = "metricas.json"
	RunFile      = "run.json"
)

// Erros do repositório de artefatos
var (
	ErrArtifactNotFound  = errors.New("artefato não encontrado no diretório configurado")
	ErrCorruptedArtifact = errors.New("artefato ilegível ou corrompido")
)

// ModelArtifact é o artefato de modelo completo: o ensemble treinado e
// os metadados de treino que o descrevem. Uma vez gravado é imutável;
// o simulador apenas o consulta.
type ModelArtifact struct {
	Info  domain.ModelInfo `json:"info"`
	Model *gbrt.Model      `json:"model"`
}

// Store é o repositório de artefatos do pipeline.
type Store interface {
	Dir() string

	SaveModel(artifact *ModelArtifact) error
	LoadModel() (*ModelArtifact, error)

	SaveFrame(frame []domain.FrameRow) error
	LoadFrame() ([]domain.FrameRow, error)

	SaveForecast(forecasts []domain.ProductForecast) error
	LoadForecast() ([]domain.ProductForecast, error)

	SaveMetrics(report *domain.MetricsReport) error
	SaveRunInfo(info *domain.RunInfo) error
	LoadRunInfo() (*domain.RunInfo, error)

	// ModifiedAt retorna a modificação mais recente entre os artefatos
	// consumidos pelo simulador (modelo e quadro de inferência).
	ModifiedAt() (time.Time, error)
}

type store struct {
	dir string
}

// NewStore cria o repositório sobre o diretório informado, criando-o
// se necessário.
func NewStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "criando diretório de artefatos %s", dir)
	}

	return &store{dir: dir}, nil
}

func (s *store) Dir() string {
	return s.dir
}

func (s *store) SaveModel(artifact *ModelArtifact) error {
	return s.writeJSON(ModelFile, artifact)
}

func (s *store) LoadModel() (*ModelArtifact, error) {
	artifact := &ModelArtifact{}
	if err := s.readJSON(ModelFile, artifact); err != nil {
		return nil, err
	}

	if artifact.Model == nil || len(artifact.Model.Features) == 0 {
		return nil, errors.Wrapf(ErrCorruptedArtifact, "%s sem catálogo de variáveis", ModelFile)
	}

	return artifact, nil
}

func (s *store) SaveMetrics(report *domain.MetricsReport) error {
	return s.writeJSON(MetricsFile, report)
}

func (s *store) SaveRunInfo(info *domain.RunInfo) error {
	return s.writeJSON(RunFile, info)
}

func (s *store) LoadRunInfo() (*domain.RunInfo, error) {
	info := &domain.RunInfo{}
	if err := s.readJSON(RunFile, info); err != nil {
		return nil, err
	}

	return info, nil
}

func (s *store) ModifiedAt() (time.Time, error) {
	var latest time.Time

	for _, name := range []string{ModelFile, FrameFile} {
		stat, err := os.Stat(s.path(name))
		if err != nil {
			if os.IsNotExist(err) {
				return time.Time{}, errors.Wrapf(ErrArtifactNotFound, "%s", name)
			}
			return time.Time{}, errors.Wrapf(err, "consultando %s", name)
		}

		if stat.ModTime().After(latest) {
			latest = stat.ModTime()
		}
	}

	return latest, nil
}

func (s *store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *store) writeJSON(name string, payload any) error {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "serializando %s", name)
	}

	if err := os.WriteFile(s.path(name), raw, 0o644); err != nil {
		return errors.Wrapf(err, "gravando %s", name)
	}

	return nil
}

func (s *store) readJSON(name string, target any) error {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrArtifactNotFound, "%s", name)
		}
		return errors.Wrapf(err, "lendo %s", name)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return errors.Wrapf(ErrCorruptedArtifact, "%s: %v", name, err)
	}

	return nil
}
