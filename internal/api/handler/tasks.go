package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/internal/usecases/projecting"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
)

// ListTasks aceita os filtros opcionais ?project_id= e ?status=
func ListTasks(service projecting.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		tasks, err := service.ListTasks(r.Context(), query.Get("project_id"), query.Get("status"))
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao listar tarefas")
			return
		}

		writeJSON(w, http.StatusOK, tasks)
	})
}

func CreateTask(service projecting.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateTask")

		var req domain.CreateTaskRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		task, err := service.CreateTask(r.Context(), &req)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao criar tarefa")
			return
		}

		writeJSON(w, http.StatusCreated, task)
	})
}

func UpdateTask(service projecting.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateTask")

		var req domain.UpdateTaskRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		task, err := service.UpdateTask(r.Context(), &req)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao atualizar tarefa")
			return
		}

		writeJSON(w, http.StatusOK, task)
	})
}

func UpdateTaskStatus(service projecting.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req statusRequest
		if err := decodeBody(r, &req); err != nil {
			writeInvalidBody(w, err)
			return
		}

		task, err := service.UpdateTaskStatus(r.Context(), id, req.Status)
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao atualizar status da tarefa")
			return
		}

		writeJSON(w, http.StatusOK, task)
	})
}

func DeleteTask(service projecting.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTask(r.Context(), id); err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao remover tarefa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// TaskSummary devolve a contagem e o percentual de tarefas por status
func TaskSummary(service projecting.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context(), r.URL.Query().Get("project_id"))
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao resumir tarefas")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

// TaskTimeline devolve as barras do gráfico de Gantt
func TaskTimeline(service projecting.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bars, err := service.Timeline(r.Context(), r.URL.Query().Get("project_id"))
		if err != nil {
			apiErrors.WriteDomainError(w, err, "Erro ao montar cronograma")
			return
		}

		writeJSON(w, http.StatusOK, bars)
	})
}

func ListTeam(service projecting.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Team())
	})
}
