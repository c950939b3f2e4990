package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/internal/usecases/costing"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
)

func ListCosts(service costing.CostService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		costs, err := service.ListCosts(r.Context())
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao listar custos")
			return
		}

		writeJSON(w, http.StatusOK, costs)
	})
}

func CreateCost(service costing.CostService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCost")

		var req domain.CreateCostRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		cost, err := service.CreateCost(r.Context(), &req)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao registrar custo")
			return
		}

		writeJSON(w, http.StatusCreated, cost)
	})
}

// MonthlyCosts devolve os totais mensais e o detalhe do mês pedido em ?month=yyyy-MM
func MonthlyCosts(service costing.CostService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.MonthlyView(r.Context(), r.URL.Query().Get("month"))
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao agregar custos mensais")
			return
		}

		writeJSON(w, http.StatusOK, view)
	})
}
