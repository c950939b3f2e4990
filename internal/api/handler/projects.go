package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/internal/usecases/projecting"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
)

// statusRequest é o corpo das rotas que alteram apenas o status
type statusRequest struct {
	Status string `json:"status"`
}

func ListProjects(service projecting.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		projects, err := service.ListProjects(r.Context())
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao listar projetos")
			return
		}

		writeJSON(w, http.StatusOK, projects)
	})
}

func CreateProject(service projecting.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProject")

		var req domain.CreateProjectRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		project, err := service.CreateProject(r.Context(), &req)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao criar projeto")
			return
		}

		writeJSON(w, http.StatusCreated, project)
	})
}

func UpdateProject(service projecting.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProject")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateProjectRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		// O ID da URL prevalece sobre o do corpo
		req.ID = id

		project, err := service.UpdateProject(r.Context(), &req)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao atualizar projeto")
			return
		}

		writeJSON(w, http.StatusOK, project)
	})
}

func UpdateProjectStatus(service projecting.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req statusRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		project, err := service.UpdateProjectStatus(r.Context(), id, req.Status)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao atualizar status do projeto")
			return
		}

		writeJSON(w, http.StatusOK, project)
	})
}

func DeleteProject(service projecting.ProjectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProject(r.Context(), id); err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao remover projeto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
