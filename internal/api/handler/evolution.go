package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/internal/usecases/evolution"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
)

// fieldValueRequest guarda o valor cru; o tipo esperado depende do campo editado
type fieldValueRequest struct {
	Value jsoniter.RawMessage `json:"value"`
}

func ListEvolution(service evolution.EvolutionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.ListEvolution(r.Context())
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao listar evolução de clientes")
			return
		}

		writeJSON(w, http.StatusOK, rows)
	})
}

func CreateEvolution(service evolution.EvolutionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEvolution")

		var req domain.CreateClientEvolutionRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		row, err := service.CreateEvolution(r.Context(), &req)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao registrar evolução de clientes")
			return
		}

		writeJSON(w, http.StatusCreated, row)
	})
}

// UpdateEvolutionField edita um campo e devolve a linha com os derivados recalculados
func UpdateEvolutionField(service evolution.EvolutionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		field, err := domain.ParseEvolutionField(params.ByName("field"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		var req fieldValueRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		if len(req.Value) == 0 || string(req.Value) == "null" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo value é obrigatório", nil)
			return
		}

		edit := domain.EvolutionFieldUpdate{ID: params.ByName("id"), Field: field}
		if field == domain.FieldMonthText {
			err = json.Unmarshal(req.Value, &edit.Text)
		} else {
			err = json.Unmarshal(req.Value, &edit.Number)
		}
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Valor inválido para o campo "+string(field), nil)
			return
		}

		row, err := service.UpdateField(r.Context(), edit)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao atualizar evolução de clientes")
			return
		}

		writeJSON(w, http.StatusOK, row)
	})
}
