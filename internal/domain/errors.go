package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation cobre texto obrigatório vazio, valor não positivo e enums desconhecidos
	ErrValidation = errors.New("validation error")
	// ErrDuplicateMonth indica que já existe um registro de evolução para o mês
	ErrDuplicateMonth = errors.New("duplicate month")
	// ErrStore envolve qualquer falha vinda do banco
	ErrStore    = errors.New("store error")
	ErrNotFound = errors.New("record not found")
)

// DashboardError é um erro com contexto adicional para a API
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	ID      string // ID do registro envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewDashboardErrorWithID(err error, code string, id string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		ID:      id,
		Details: details,
	}
}

// NewStoreError envolve a falha original mantendo ErrStore na cadeia
func NewStoreError(err error, details string) *DashboardError {
	return &DashboardError{
		Err:     fmt.Errorf("%w: %w", ErrStore, err),
		Details: details,
	}
}

func NewValidationError(details string) *DashboardError {
	return &DashboardError{
		Err:     ErrValidation,
		Details: details,
	}
}

func NewNotFoundError(id string, details string) *DashboardError {
	return &DashboardError{
		Err:     ErrNotFound,
		ID:      id,
		Details: details,
	}
}
