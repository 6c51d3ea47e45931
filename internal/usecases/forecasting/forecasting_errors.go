package forecasting

import "github.com/pkg/errors"

// Limites aceitos para os ajustes de simulação, em pontos percentuais.
const (
	MinDiscountPct   = -50.0
	MaxDiscountPct   = 50.0
	MinAdjustmentPct = -50.0
	MaxAdjustmentPct = 50.0
)

// Erros específicos do contexto de previsão
var (
	ErrEmptyFrame           = errors.New("quadro de inferência vazio")
	ErrProductNotFound      = errors.New("produto não encontrado no quadro de inferência")
	ErrDiscountOutOfRange   = errors.New("percentual de desconto fora da faixa aceita")
	ErrAdjustmentOutOfRange = errors.New("ajuste de concorrência fora da faixa aceita")
	ErrNilModel             = errors.New("modelo não informado para a previsão")
)
