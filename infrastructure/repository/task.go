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
	tasksTable   = "tasks"
	tasksColumns = "id, project_id, title, description, start_date, due_date, status, priority, assigned_to, created_at, updated_at"
)

type TaskRepository interface {
	ListTasks(ctx context.Context, filters domain.TaskFilters) ([]*domain.Task, error)
	GetTaskByID(ctx context.Context, id string) (*domain.Task, error)
	CreateTask(ctx context.Context, task *domain.Task) (string, error)
	UpdateTask(ctx context.Context, req *domain.UpdateTaskRequest) error
	DeleteTask(ctx context.Context, id string) error
}

type taskRepository struct {
	conn postgres.Conn
}

func NewTaskRepository(conn postgres.Conn) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

func (r *taskRepository) ListTasks(ctx context.Context, filters domain.TaskFilters) ([]*domain.Task, error) {
	queryBuilder := squirrel.
		Select(tasksColumns).
		From(tasksTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.ProjectID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"project_id": filters.ProjectID})
	}

	if filters.Status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *filters.Status})
	}

	tasksSQL, tasksArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, tasksSQL, tasksArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := r.deserializeTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) GetTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	taskSQL, taskArgs, err := squirrel.
		Select(tasksColumns).
		From(tasksTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	task, err := r.deserializeTask(r.conn.QueryRowContext(ctx, taskSQL, taskArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}

	return task, nil
}

func (r *taskRepository) CreateTask(ctx context.Context, task *domain.Task) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	taskSQL, taskArgs, err := squirrel.
		Insert(tasksTable).
		Columns("id", "project_id", "title", "description", "start_date", "due_date", "status", "priority", "assigned_to").
		Values(id, task.ProjectID, task.Title, task.Description, task.StartDate, task.DueDate, task.Status, task.Priority, task.AssignedTo).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, taskSQL, taskArgs...); err != nil {
		return "", fmt.Errorf("failed to insert task: %w", err)
	}

	return id, nil
}

func (r *taskRepository) UpdateTask(ctx context.Context, req *domain.UpdateTaskRequest) error {
	changes := map[string]any{}

	if req.Title != nil {
		changes["title"] = *req.Title
	}

	if req.Description != nil {
		changes["description"] = *req.Description
	}

	if req.StartDate != nil {
		changes["start_date"] = *req.StartDate
	}

	if req.DueDate != nil {
		changes["due_date"] = *req.DueDate
	}

	if req.Status != nil {
		changes["status"] = *req.Status
	}

	if req.Priority != nil {
		changes["priority"] = *req.Priority
	}

	if req.ClearAssignee {
		changes["assigned_to"] = nil
	} else if req.AssignedTo != nil {
		changes["assigned_to"] = *req.AssignedTo
	}

	return updateByID(ctx, r.conn, tasksTable, req.ID, changes, true)
}

func (r *taskRepository) DeleteTask(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, tasksTable, id)
}

func (r *taskRepository) deserializeTask(row scanner) (*domain.Task, error) {
	task := &domain.Task{}

	if err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Title,
		&task.Description,
		&task.StartDate,
		&task.DueDate,
		&task.Status,
		&task.Priority,
		&task.AssignedTo,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return task, nil
}
