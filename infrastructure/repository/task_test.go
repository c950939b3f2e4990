package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtl-labs/dashboard-api/internal/domain"
)

var taskRowColumns = []string{"id", "project_id", "title", "description", "start_date", "due_date", "status", "priority", "assigned_to", "created_at", "updated_at"}

func TestTaskRepository_ListTasks(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	inProgress := domain.StatusInProgress

	tests := []struct {
		name          string
		filters       domain.TaskFilters
		expectedQuery string
		expectedArgs  []driver.Value
	}{
		{
			name:          "Sem filtros",
			filters:       domain.TaskFilters{},
			expectedQuery: "FROM tasks ORDER BY created_at DESC",
		},
		{
			name:          "Filtro por projeto e status",
			filters:       domain.TaskFilters{ProjectID: "p1", Status: &inProgress},
			expectedQuery: "FROM tasks WHERE project_id = $1 AND status = $2 ORDER BY created_at DESC",
			expectedArgs:  []driver.Value{"p1", "in_progress"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock, db := setupConn(t)
			defer db.Close()

			expectation := mock.ExpectQuery(regexp.QuoteMeta(tt.expectedQuery))
			if len(tt.expectedArgs) > 0 {
				expectation = expectation.WithArgs(tt.expectedArgs...)
			}
			expectation.WillReturnRows(sqlmock.NewRows(taskRowColumns).
				AddRow("t1", "p1", "Diseño", "", "2024-01-01", "2024-01-08", "in_progress", "high", "maxi", now, now).
				AddRow("t2", "p1", "Sin fechas", "", nil, nil, "in_progress", "low", nil, now, now))

			tasks, err := NewTaskRepository(conn).ListTasks(context.Background(), tt.filters)
			require.NoError(t, err)

			require.Len(t, tasks, 2)
			assert.Equal(t, domain.NewDate(2024, time.January, 8), *tasks[0].DueDate)
			assert.Equal(t, "maxi", *tasks[0].AssignedTo)
			assert.Nil(t, tasks[1].StartDate)
			assert.Nil(t, tasks[1].AssignedTo)

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTaskRepository_UpdateTask(t *testing.T) {
	conn, mock, db := setupConn(t)
	defer db.Close()

	repo := NewTaskRepository(conn)

	t.Run("remove o responsável", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks SET assigned_to = $1, updated_at = NOW() WHERE id = $2")).
			WithArgs(nil, "t1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateTask(context.Background(), &domain.UpdateTaskRequest{ID: "t1", ClearAssignee: true}))
	})

	t.Run("atualiza prazo e prioridade", func(t *testing.T) {
		due := domain.NewDate(2024, time.May, 2)
		priority := domain.PriorityHigh

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks SET due_date = $1, priority = $2, updated_at = NOW() WHERE id = $3")).
			WithArgs("2024-05-02", "high", "t1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateTask(context.Background(), &domain.UpdateTaskRequest{ID: "t1", DueDate: &due, Priority: &priority}))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_CreateTask(t *testing.T) {
	conn, mock, db := setupConn(t)
	defer db.Close()

	start := domain.NewDate(2024, time.January, 1)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tasks")).
		WithArgs(sqlmock.AnyArg(), "p1", "Diseño", "", "2024-01-01", nil, "pending", "medium", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := NewTaskRepository(conn).CreateTask(context.Background(), &domain.Task{
		ProjectID: "p1",
		Title:     "Diseño",
		StartDate: &start,
		Status:    domain.StatusPending,
		Priority:  domain.PriorityMedium,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, mock.ExpectationsWereMet())
}
