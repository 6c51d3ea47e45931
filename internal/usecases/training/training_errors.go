package training

import "github.com/pkg/errors"

// Erros específicos do contexto de treino
var (
	ErrNoTrainingSet       = errors.New("matriz de treino não informada")
	ErrInsufficientHistory = errors.New("histórico insuficiente para separar o período de validação")
)
