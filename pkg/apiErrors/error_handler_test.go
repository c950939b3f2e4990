package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtl-labs/dashboard-api/internal/domain"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Validação", fmt.Errorf("nome: %w", domain.ErrValidation), ErrInvalidRequest},
		{"Mês repetido", fmt.Errorf("Marzo: %w", domain.ErrDuplicateMonth), ErrDuplicateMonth},
		{"Não encontrado", domain.NewDashboardError(domain.ErrNotFound, "", "tarefa"), ErrRecordNotFound},
		{"Código explícito vence", domain.NewDashboardError(domain.ErrValidation, ErrUnknownAssignee, "x"), ErrUnknownAssignee},
		{"Banco", domain.NewDashboardError(domain.ErrStore, "", ""), ErrDatabaseOperation},
		{"Desconhecido", errors.New("boom"), ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeFor(tt.err))
		})
	}
}

func TestWriteDomainError(t *testing.T) {
	t.Run("conflito de mês", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteDomainError(rec, domain.NewDashboardError(domain.ErrDuplicateMonth, ErrDuplicateMonth, "Ya existe un registro para este mes"), "falha")

		assert.Equal(t, http.StatusConflict, rec.Code)

		var body APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, ErrDuplicateMonth, body.Code)
		assert.Equal(t, "Ya existe un registro para este mes", body.Message)
	})

	t.Run("erro de banco usa mensagem genérica", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteDomainError(rec, domain.NewDashboardError(domain.ErrStore, ErrDatabaseOperation, "pq: connection refused"), "Erro ao salvar")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Erro ao salvar", body.Message)
	})
}
