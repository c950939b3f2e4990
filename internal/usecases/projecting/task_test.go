package projecting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mtl-labs/dashboard-api/infrastructure/repository/mocks"
	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
)

var team = []domain.TeamMember{
	{ID: "maxi", DisplayName: "Maxi"},
	{ID: "tomas", DisplayName: "Tomas"},
}

func stringPtr(s string) *string {
	return &s
}

func datePtr(year int, month time.Month, day int) *domain.Date {
	d := domain.NewDate(year, month, day)
	return &d
}

func TestTaskManager_CreateTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		request       *domain.CreateTaskRequest
		setup         func(repo *mocks.MockTaskRepository)
		expectedError error
		expectedCode  string
	}{
		{
			name:    "Cria tarefa com padrões de status e prioridade",
			request: &domain.CreateTaskRequest{ProjectID: "p1", Title: "  Diseño  ", AssignedTo: stringPtr("maxi")},
			setup: func(repo *mocks.MockTaskRepository) {
				repo.EXPECT().
					CreateTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task *domain.Task) (string, error) {
						assert.Equal(t, "Diseño", task.Title)
						assert.Equal(t, domain.StatusPending, task.Status)
						assert.Equal(t, domain.PriorityMedium, task.Priority)
						return "t1", nil
					})
				repo.EXPECT().GetTaskByID(gomock.Any(), "t1").Return(&domain.Task{ID: "t1", Title: "Diseño"}, nil)
			},
		},
		{
			name:          "Título vazio não chega ao banco",
			request:       &domain.CreateTaskRequest{ProjectID: "p1", Title: "   "},
			setup:         func(repo *mocks.MockTaskRepository) {},
			expectedError: domain.ErrValidation,
			expectedCode:  apiErrors.ErrMissingRequiredData,
		},
		{
			name:          "Responsável fora da equipe",
			request:       &domain.CreateTaskRequest{ProjectID: "p1", Title: "Diseño", AssignedTo: stringPtr("leandro")},
			setup:         func(repo *mocks.MockTaskRepository) {},
			expectedError: domain.ErrValidation,
			expectedCode:  apiErrors.ErrUnknownAssignee,
		},
		{
			name:          "Prioridade desconhecida",
			request:       &domain.CreateTaskRequest{ProjectID: "p1", Title: "Diseño", Priority: "urgent"},
			setup:         func(repo *mocks.MockTaskRepository) {},
			expectedError: domain.ErrValidation,
			expectedCode:  apiErrors.ErrInvalidFormat,
		},
		{
			name:    "Falha do banco",
			request: &domain.CreateTaskRequest{ProjectID: "p1", Title: "Diseño"},
			setup: func(repo *mocks.MockTaskRepository) {
				repo.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return("", errors.New("connection refused"))
			},
			expectedError: domain.ErrStore,
			expectedCode:  apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockTaskRepository(ctrl)
			tt.setup(repo)

			task, err := NewTaskService(repo, team).CreateTask(context.Background(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Equal(t, tt.expectedCode, apiErrors.CodeFor(err))
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "t1", task.ID)
		})
	}
}

func TestTaskManager_UpdateTaskStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("qualquer status pode ser atribuído", func(t *testing.T) {
		repo := mocks.NewMockTaskRepository(ctrl)
		cancelled := domain.StatusCancelled

		repo.EXPECT().UpdateTask(gomock.Any(), &domain.UpdateTaskRequest{ID: "t1", Status: &cancelled}).Return(nil)
		repo.EXPECT().GetTaskByID(gomock.Any(), "t1").Return(&domain.Task{ID: "t1", Status: domain.StatusCancelled}, nil)

		task, err := NewTaskService(repo, team).UpdateTaskStatus(context.Background(), "t1", "cancelled")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, task.Status)
	})

	t.Run("tarefa inexistente", func(t *testing.T) {
		repo := mocks.NewMockTaskRepository(ctrl)
		repo.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).Return(fmt.Errorf("tasks missing: %w", domain.ErrNotFound))

		task, err := NewTaskService(repo, team).UpdateTaskStatus(context.Background(), "missing", "completed")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, apiErrors.ErrRecordNotFound, apiErrors.CodeFor(err))
		assert.Nil(t, task)
	})

	t.Run("status desconhecido", func(t *testing.T) {
		repo := mocks.NewMockTaskRepository(ctrl)

		_, err := NewTaskService(repo, team).UpdateTaskStatus(context.Background(), "t1", "done")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestTaskManager_UpdateTask_ClearAssignee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTaskRepository(ctrl)
	repo.EXPECT().
		UpdateTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.UpdateTaskRequest) error {
			assert.True(t, req.ClearAssignee)
			assert.Nil(t, req.AssignedTo)
			return nil
		})
	repo.EXPECT().GetTaskByID(gomock.Any(), "t1").Return(&domain.Task{ID: "t1"}, nil)

	task, err := NewTaskService(repo, team).UpdateTask(context.Background(), &domain.UpdateTaskRequest{ID: "t1", AssignedTo: stringPtr("")})
	require.NoError(t, err)
	assert.Nil(t, task.AssignedTo)
}

func TestTaskManager_SummaryAndTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tasks := []*domain.Task{
		{ID: "t1", Title: "Landing", Status: domain.StatusCompleted, StartDate: datePtr(2024, time.January, 1), DueDate: datePtr(2024, time.January, 8)},
		{ID: "t2", Title: "Sin fechas", Status: domain.StatusPending},
	}

	repo := mocks.NewMockTaskRepository(ctrl)
	repo.EXPECT().ListTasks(gomock.Any(), domain.TaskFilters{ProjectID: "p1"}).Return(tasks, nil).Times(2)

	service := NewTaskService(repo, team)

	summary, err := service.Summary(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, int64(50), summary.ByStatus[0].Percentage)

	bars, err := service.Timeline(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, 7, bars[0].Duration)
}

func TestTaskManager_ListTasks_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTaskRepository(ctrl)

	tasks, err := NewTaskService(repo, team).ListTasks(context.Background(), "", "pendiente")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, tasks)
}
