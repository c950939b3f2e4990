package projecting

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/infrastructure/repository"
	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/internal/reporting"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
)

type TaskService interface {
	ListTasks(ctx context.Context, projectID string, status string) ([]*domain.Task, error)
	CreateTask(ctx context.Context, req *domain.CreateTaskRequest) (*domain.Task, error)
	UpdateTask(ctx context.Context, req *domain.UpdateTaskRequest) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	Summary(ctx context.Context, projectID string) (*reporting.TaskSummary, error)
	Timeline(ctx context.Context, projectID string) ([]reporting.TimelineBar, error)
	Team() []domain.TeamMember
}

type TaskManager struct {
	taskRepository repository.TaskRepository
	team           []domain.TeamMember
}

func NewTaskService(taskRepository repository.TaskRepository, team []domain.TeamMember) TaskService {
	return &TaskManager{
		taskRepository: taskRepository,
		team:           team,
	}
}

func (s *TaskManager) Team() []domain.TeamMember {
	return s.team
}

func (s *TaskManager) ListTasks(ctx context.Context, projectID string, status string) ([]*domain.Task, error) {
	filters := domain.TaskFilters{ProjectID: projectID}

	if status != "" {
		parsed, err := domain.ParseStatus(status)
		if err != nil {
			return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
		}
		filters.Status = &parsed
	}

	tasks, err := s.taskRepository.ListTasks(ctx, filters)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"project_id": projectID,
			"status":     status,
		}).Error("Erro ao listar tarefas")
		return nil, domain.NewStoreError(err, "Falha ao listar tarefas")
	}

	return tasks, nil
}

func (s *TaskManager) CreateTask(ctx context.Context, req *domain.CreateTaskRequest) (*domain.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "O título da tarefa é obrigatório")
	}

	if strings.TrimSpace(req.ProjectID) == "" {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "O projeto da tarefa é obrigatório")
	}

	task := &domain.Task{
		ProjectID:   strings.TrimSpace(req.ProjectID),
		Title:       title,
		Description: req.Description,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Status:      domain.StatusPending,
		Priority:    domain.PriorityMedium,
	}

	if req.Status != "" {
		status, err := domain.ParseStatus(req.Status)
		if err != nil {
			return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
		}
		task.Status = status
	}

	if req.Priority != "" {
		priority, err := domain.ParsePriority(req.Priority)
		if err != nil {
			return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
		}
		task.Priority = priority
	}

	if req.AssignedTo != nil && *req.AssignedTo != "" {
		if err := s.checkAssignee(*req.AssignedTo); err != nil {
			return nil, err
		}
		task.AssignedTo = req.AssignedTo
	}

	id, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		logrus.WithError(err).WithField("project_id", task.ProjectID).Error("Erro ao criar tarefa")
		return nil, domain.NewStoreError(err, "Falha ao criar tarefa")
	}

	return s.reload(ctx, id)
}

func (s *TaskManager) UpdateTask(ctx context.Context, req *domain.UpdateTaskRequest) (*domain.Task, error) {
	if req.ID == "" {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "ID da tarefa é obrigatório")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "O título da tarefa é obrigatório")
		}
		req.Title = &title
	}

	if req.Status != nil {
		if _, err := domain.ParseStatus(string(*req.Status)); err != nil {
			return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
		}
	}

	if req.Priority != nil {
		if _, err := domain.ParsePriority(string(*req.Priority)); err != nil {
			return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
		}
	}

	if req.AssignedTo != nil {
		if *req.AssignedTo == "" {
			req.AssignedTo = nil
			req.ClearAssignee = true
		} else if err := s.checkAssignee(*req.AssignedTo); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepository.UpdateTask(ctx, req); err != nil {
		return nil, s.mutationError(err, req.ID, "Falha ao atualizar tarefa")
	}

	return s.reload(ctx, req.ID)
}

func (s *TaskManager) UpdateTaskStatus(ctx context.Context, id string, status string) (*domain.Task, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
	}

	return s.UpdateTask(ctx, &domain.UpdateTaskRequest{ID: id, Status: &parsed})
}

func (s *TaskManager) DeleteTask(ctx context.Context, id string) error {
	if err := s.taskRepository.DeleteTask(ctx, id); err != nil {
		return s.mutationError(err, id, "Falha ao remover tarefa")
	}

	return nil
}

func (s *TaskManager) Summary(ctx context.Context, projectID string) (*reporting.TaskSummary, error) {
	tasks, err := s.ListTasks(ctx, projectID, "")
	if err != nil {
		return nil, err
	}

	summary := reporting.SummarizeTasks(derefTasks(tasks))
	return &summary, nil
}

func (s *TaskManager) Timeline(ctx context.Context, projectID string) ([]reporting.TimelineBar, error) {
	tasks, err := s.ListTasks(ctx, projectID, "")
	if err != nil {
		return nil, err
	}

	return reporting.TimelineBars(derefTasks(tasks)), nil
}

func (s *TaskManager) checkAssignee(memberID string) error {
	for _, member := range s.team {
		if member.ID == memberID {
			return nil
		}
	}

	return domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrUnknownAssignee, "Responsável não faz parte da equipe: "+memberID)
}

func (s *TaskManager) reload(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.taskRepository.GetTaskByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("task_id", id).Error("Erro ao recarregar tarefa")
		return nil, domain.NewStoreError(err, "Falha ao recarregar tarefa")
	}

	if task == nil {
		return nil, domain.NewNotFoundError(id, "Tarefa não encontrada")
	}

	return task, nil
}

func (s *TaskManager) mutationError(err error, id string, details string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFoundError(id, "Tarefa não encontrada")
	}

	logrus.WithError(err).WithField("task_id", id).Error(details)
	return domain.NewStoreError(err, details)
}

func derefTasks(tasks []*domain.Task) []domain.Task {
	values := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		values = append(values, *task)
	}
	return values
}
