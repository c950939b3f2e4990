package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mtl-labs/dashboard-api/infrastructure/database/postgres"
	"github.com/mtl-labs/dashboard-api/internal/domain"
)

const (
	projectsTable   = "projects"
	projectsColumns = "id, name, description, start_date, end_date, status, created_at, updated_at"
)

type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	GetProjectByID(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, project *domain.Project) (string, error)
	UpdateProject(ctx context.Context, req *domain.UpdateProjectRequest) error
	DeleteProject(ctx context.Context, id string) error
}

type projectRepository struct {
	conn postgres.Conn
}

func NewProjectRepository(conn postgres.Conn) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	projectsSQL, projectsArgs, err := squirrel.
		Select(projectsColumns).
		From(projectsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, projectsSQL, projectsArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := r.deserializeProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (r *projectRepository) GetProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	projectSQL, projectArgs, err := squirrel.
		Select(projectsColumns).
		From(projectsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	project, err := r.deserializeProject(r.conn.QueryRowContext(ctx, projectSQL, projectArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project %s: %w", id, err)
	}

	return project, nil
}

func (r *projectRepository) CreateProject(ctx context.Context, project *domain.Project) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	projectSQL, projectArgs, err := squirrel.
		Insert(projectsTable).
		Columns("id", "name", "description", "start_date", "end_date", "status").
		Values(id, project.Name, project.Description, project.StartDate, project.EndDate, project.Status).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, projectSQL, projectArgs...); err != nil {
		return "", fmt.Errorf("failed to insert project: %w", err)
	}

	return id, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, req *domain.UpdateProjectRequest) error {
	changes := map[string]any{}

	if req.Name != nil {
		changes["name"] = *req.Name
	}

	if req.Description != nil {
		changes["description"] = *req.Description
	}

	if req.StartDate != nil {
		changes["start_date"] = *req.StartDate
	}

	if req.EndDate != nil {
		changes["end_date"] = *req.EndDate
	}

	if req.Status != nil {
		changes["status"] = *req.Status
	}

	return updateByID(ctx, r.conn, projectsTable, req.ID, changes, true)
}

func (r *projectRepository) DeleteProject(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, projectsTable, id)
}

func (r *projectRepository) deserializeProject(row scanner) (*domain.Project, error) {
	project := &domain.Project{}

	if err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.StartDate,
		&project.EndDate,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return project, nil
}
