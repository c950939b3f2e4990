package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/mtl-labs/dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrUnknownAssignee     = "VAL_004" // Responsável fora da equipe

	// Erros de recurso (4000-4999)
	ErrRecordNotFound = "RES_001" // Registro não encontrado
	ErrDuplicateMonth = "RES_002" // Mês já registrado na evolução

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUnknownAssignee:     http.StatusBadRequest,
	ErrRecordNotFound:      http.StatusNotFound,
	ErrDuplicateMonth:      http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// CodeFor escolhe o código da API a partir dos erros sentinela do domínio
func CodeFor(err error) string {
	var dashErr *domain.DashboardError
	if errors.As(err, &dashErr) && dashErr.Code != "" {
		return dashErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return ErrInvalidRequest
	case errors.Is(err, domain.ErrDuplicateMonth):
		return ErrDuplicateMonth
	case errors.Is(err, domain.ErrNotFound):
		return ErrRecordNotFound
	case errors.Is(err, domain.ErrStore):
		return ErrDatabaseOperation
	}

	return ErrInternalServer
}

// WriteDomainError traduz um erro dos serviços para a resposta padronizada.
// Falhas de banco nunca expõem a mensagem original.
func WriteDomainError(w http.ResponseWriter, err error, fallbackMessage string) {
	code := CodeFor(err)

	var dashErr *domain.DashboardError
	if !errors.As(err, &dashErr) {
		WriteError(w, code, fallbackMessage, nil)
		return
	}

	if StatusFor(code) >= http.StatusInternalServerError {
		WriteError(w, code, fallbackMessage, nil)
		return
	}

	WriteError(w, code, dashErr.Details, nil)
}

// FromError cria um erro de API a partir de um erro Go
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
