package gbrt

import "github.com/pkg/errors"

// Erros de treino do modelo
var (
	ErrNoTrainingData    = errors.New("matriz de treino vazia")
	ErrDimensionMismatch = errors.New("dimensões incompatíveis entre matriz, alvo e catálogo de variáveis")
	ErrInvalidParams     = errors.New("hiperparâmetros inválidos")
)

// Params são os hiperparâmetros do gradient boosting.
type Params struct {
	Trees          int     `json:"trees"`
	LearningRate   float64 `json:"learning_rate"`
	MaxDepth       int     `json:"max_depth"`
	MinSamplesLeaf int     `json:"min_samples_leaf"`
	Subsample      float64 `json:"subsample"`
	Seed           int64   `json:"seed"`
}

// DefaultParams retorna os hiperparâmetros padrão do pipeline.
func DefaultParams() Params {
	return Params{
		Trees:          200,
		LearningRate:   0.05,
		MaxDepth:       3,
		MinSamplesLeaf: 5,
		Subsample:      1.0,
		Seed:           42,
	}
}

func (p Params) validate() error {
	switch {
	case p.Trees <= 0:
		return errors.Wrap(ErrInvalidParams, "número de árvores deve ser positivo")
	case p.LearningRate <= 0 || p.LearningRate > 1:
		return errors.Wrap(ErrInvalidParams, "taxa de aprendizado deve estar em (0, 1]")
	case p.MaxDepth < 1:
		return errors.Wrap(ErrInvalidParams, "profundidade máxima deve ser ao menos 1")
	case p.MinSamplesLeaf < 1:
		return errors.Wrap(ErrInvalidParams, "mínimo de amostras por folha deve ser ao menos 1")
	case p.Subsample <= 0 || p.Subsample > 1:
		return errors.Wrap(ErrInvalidParams, "subamostragem deve estar em (0, 1]")
	}

	return nil
}

// Option ajusta os hiperparâmetros de treino.
type Option func(*Params)

func WithTrees(n int) Option {
	return func(p *Params) { p.Trees = n }
}

func WithLearningRate(lr float64) Option {
	return func(p *Params) { p.LearningRate = lr }
}

func WithMaxDepth(depth int) Option {
	return func(p *Params) { p.MaxDepth = depth }
}

func WithMinSamplesLeaf(n int) Option {
	return func(p *Params) { p.MinSamplesLeaf = n }
}

func WithSubsample(fraction float64) Option {
	return func(p *Params) { p.Subsample = fraction }
}

func WithSeed(seed int64) Option {
	return func(p *Params) { p.Seed = seed }
}
