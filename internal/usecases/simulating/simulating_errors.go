package simulating

import "github.com/pkg/errors"

// Erros específicos do contexto de simulação
var (
	ErrArtifactsNotLoaded = errors.New("artefatos do modelo ainda não carregados")
	ErrProductRequired    = errors.New("produto não informado na requisição")
)
