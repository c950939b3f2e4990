package domain

import "time"

type Task struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   *Date     `json:"start_date"`
	DueDate     *Date     `json:"due_date"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	AssignedTo  *string   `json:"assigned_to"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TaskFilters struct {
	ProjectID string
	Status    *Status
}

type CreateTaskRequest struct {
	ProjectID   string  `json:"project_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartDate   *Date   `json:"start_date"`
	DueDate     *Date   `json:"due_date"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	AssignedTo  *string `json:"assigned_to"`
}

// UpdateTaskRequest carrega apenas os campos alterados. ClearAssignee remove o responsável.
type UpdateTaskRequest struct {
	ID            string    `json:"id"`
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	StartDate     *Date     `json:"start_date,omitempty"`
	DueDate       *Date     `json:"due_date,omitempty"`
	Status        *Status   `json:"status,omitempty"`
	Priority      *Priority `json:"priority,omitempty"`
	AssignedTo    *string   `json:"assigned_to,omitempty"`
	ClearAssignee bool      `json:"clear_assignee,omitempty"`
}
