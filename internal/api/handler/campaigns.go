package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/internal/usecases/marketing"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
)

type stageCounterRequest struct {
	Value *float64 `json:"value"`
}

func ListCampaigns(service marketing.MarketingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListCampaigns(r.Context())
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	})
}

func CreateCampaign(service marketing.MarketingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		var req domain.CreateCampaignRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), &req)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	})
}

// UpdateStageCounter grava o contador manual de uma etapa do funil
func UpdateStageCounter(service marketing.MarketingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		var req stageCounterRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		if req.Value == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo value é obrigatório", nil)
			return
		}

		campaign, err := service.UpdateStageCounter(r.Context(), params.ByName("id"), params.ByName("stage"), *req.Value)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao atualizar etapa da campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	})
}

func GetCampaignMetrics(service marketing.MarketingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		metrics, err := service.CampaignMetrics(r.Context(), id)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao calcular métricas da campanha")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	})
}

// GetCampaignFunnel compara os contadores manuais com os leads de cada etapa
func GetCampaignFunnel(service marketing.MarketingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		comparison, err := service.CompareFunnel(r.Context(), id)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao comparar funil da campanha")
			return
		}

		writeJSON(w, http.StatusOK, comparison)
	})
}

func ListCampaignLeads(service marketing.MarketingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		leads, err := service.ListLeads(r.Context(), id)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao listar leads")
			return
		}

		writeJSON(w, http.StatusOK, leads)
	})
}

func CreateCampaignLead(service marketing.MarketingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaignLead")

		var req domain.CreateLeadRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		req.CampaignID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		lead, err := service.CreateLead(r.Context(), &req)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao criar lead")
			return
		}

		writeJSON(w, http.StatusCreated, lead)
	})
}

func UpdateLeadStatus(service marketing.MarketingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req statusRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		lead, err := service.UpdateLeadStatus(r.Context(), id, req.Status)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao atualizar status do lead")
			return
		}

		writeJSON(w, http.StatusOK, lead)
	})
}
