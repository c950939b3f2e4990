package projecting

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/infrastructure/repository"
	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
)

type ProjectService interface {
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	CreateProject(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error)
	UpdateProject(ctx context.Context, req *domain.UpdateProjectRequest) (*domain.Project, error)
	UpdateProjectStatus(ctx context.Context, id string, status string) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type ProjectManager struct {
	projectRepository repository.ProjectRepository
}

func NewProjectService(projectRepository repository.ProjectRepository) ProjectService {
	return &ProjectManager{
		projectRepository: projectRepository,
	}
}

func (s *ProjectManager) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projectRepository.ListProjects(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar projetos")
		return nil, domain.NewStoreError(err, "Falha ao listar projetos")
	}

	return projects, nil
}

func (s *ProjectManager) CreateProject(ctx context.Context, req *domain.CreateProjectRequest) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "O nome do projeto é obrigatório")
	}

	status := domain.StatusPending
	if req.Status != "" {
		parsed, err := domain.ParseStatus(req.Status)
		if err != nil {
			return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
		}
		status = parsed
	}

	id, err := s.projectRepository.CreateProject(ctx, &domain.Project{
		Name:        name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      status,
	})
	if err != nil {
		logrus.WithError(err).WithField("name", name).Error("Erro ao criar projeto")
		return nil, domain.NewStoreError(err, "Falha ao criar projeto")
	}

	return s.reload(ctx, id)
}

func (s *ProjectManager) UpdateProject(ctx context.Context, req *domain.UpdateProjectRequest) (*domain.Project, error) {
	if req.ID == "" {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "ID do projeto é obrigatório")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "O nome do projeto é obrigatório")
		}
		req.Name = &name
	}

	if req.Status != nil {
		if _, err := domain.ParseStatus(string(*req.Status)); err != nil {
			return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
		}
	}

	if err := s.projectRepository.UpdateProject(ctx, req); err != nil {
		return nil, s.mutationError(err, req.ID, "Falha ao atualizar projeto")
	}

	return s.reload(ctx, req.ID)
}

func (s *ProjectManager) UpdateProjectStatus(ctx context.Context, id string, status string) (*domain.Project, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
	}

	return s.UpdateProject(ctx, &domain.UpdateProjectRequest{ID: id, Status: &parsed})
}

func (s *ProjectManager) DeleteProject(ctx context.Context, id string) error {
	if err := s.projectRepository.DeleteProject(ctx, id); err != nil {
		return s.mutationError(err, id, "Falha ao remover projeto")
	}

	return nil
}

func (s *ProjectManager) reload(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projectRepository.GetProjectByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("project_id", id).Error("Erro ao recarregar projeto")
		return nil, domain.NewStoreError(err, "Falha ao recarregar projeto")
	}

	if project == nil {
		return nil, domain.NewNotFoundError(id, "Projeto não encontrado")
	}

	return project, nil
}

func (s *ProjectManager) mutationError(err error, id string, details string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFoundError(id, "Projeto não encontrado")
	}

	logrus.WithError(err).WithField("project_id", id).Error(details)
	return domain.NewStoreError(err, details)
}
