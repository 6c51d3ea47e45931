package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de modelo (3000-3999)
	ErrModelNotLoaded   = "MDL_001" // Artefatos do modelo ainda não carregados
	ErrModelUnavailable = "MDL_002" // Artefatos do modelo indisponíveis ou corrompidos

	// Erros de simulação (4000-4999)
	ErrProductNotFound    = "SIM_001" // Produto inexistente no plano de inferência
	ErrDiscountOutOfRange = "SIM_002" // Percentual de desconto fora da faixa aceita

	// Erros do servidor (5000-5999)
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrArtifactStorage  = "SRV_002" // Erro de leitura ou escrita de artefatos
	ErrExportGeneration = "SRV_003" // Erro ao gerar arquivos de exportação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrModelNotLoaded:      http.StatusServiceUnavailable,
	ErrModelUnavailable:    http.StatusServiceUnavailable,
	ErrProductNotFound:     http.StatusNotFound,
	ErrDiscountOutOfRange:  http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrArtifactStorage:     http.StatusInternalServerError,
	ErrExportGeneration:    http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
