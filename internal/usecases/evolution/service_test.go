package evolution

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

func newTestService(repo *mocks.MockClientEvolutionRepository) *Service {
	return &Service{
		evolutionRepository: repo,
		now: func() time.Time {
			return time.Date(2024, time.March, 12, 10, 0, 0, 0, time.UTC)
		},
	}
}

func TestService_CreateEvolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		request       *domain.CreateClientEvolutionRequest
		setup         func(repo *mocks.MockClientEvolutionRepository)
		expectedCode  string
		expectedError error
		validate      func(t *testing.T, row *domain.ClientEvolutionRow)
	}{
		{
			name:    "Cria o mês com os derivados calculados",
			request: &domain.CreateClientEvolutionRequest{MonthText: "Marzo", ActiveClients: 10, TrialClients: 2, PaidClients: 5, Expenses: 10000},
			setup: func(repo *mocks.MockClientEvolutionRepository) {
				repo.EXPECT().
					CreateEvolution(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, row *domain.ClientEvolutionRow) (string, error) {
						assert.Equal(t, int64(100000), row.Income)
						assert.Equal(t, int64(90000), row.NetIncome)
						assert.Equal(t, int64(30000), row.ProfitPerPartner)
						assert.Equal(t, domain.NewDate(2024, time.March, 12), row.Month)
						return "row1", nil
					})
				repo.EXPECT().GetEvolutionByID(gomock.Any(), "row1").Return(&domain.ClientEvolutionRow{
					ID: "row1", MonthText: "Marzo", PaidClients: 5, Expenses: 10000, Income: 100000, NetIncome: 90000, ProfitPerPartner: 30000,
				}, nil)
			},
			validate: func(t *testing.T, row *domain.ClientEvolutionRow) {
				assert.Equal(t, "row1", row.ID)
				assert.Equal(t, int64(30000), row.ProfitPerPartner)
			},
		},
		{
			name:    "Mês vazio usa o mês corrente",
			request: &domain.CreateClientEvolutionRequest{PaidClients: 1},
			setup: func(repo *mocks.MockClientEvolutionRepository) {
				repo.EXPECT().
					CreateEvolution(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, row *domain.ClientEvolutionRow) (string, error) {
						assert.Equal(t, "Marzo", row.MonthText)
						return "row2", nil
					})
				repo.EXPECT().GetEvolutionByID(gomock.Any(), "row2").Return(&domain.ClientEvolutionRow{ID: "row2", MonthText: "Marzo"}, nil)
			},
			validate: func(t *testing.T, row *domain.ClientEvolutionRow) {
				assert.Equal(t, "Marzo", row.MonthText)
			},
		},
		{
			name:    "Marzo repetido retorna DuplicateMonth",
			request: &domain.CreateClientEvolutionRequest{MonthText: "Marzo", PaidClients: 3},
			setup: func(repo *mocks.MockClientEvolutionRepository) {
				repo.EXPECT().
					CreateEvolution(gomock.Any(), gomock.Any()).
					Return("", fmt.Errorf("Marzo (row1): %w", domain.ErrDuplicateMonth))
			},
			expectedCode:  apiErrors.ErrDuplicateMonth,
			expectedError: domain.ErrDuplicateMonth,
		},
		{
			name:          "Mês fora da lista é rejeitado antes do banco",
			request:       &domain.CreateClientEvolutionRequest{MonthText: "March"},
			setup:         func(repo *mocks.MockClientEvolutionRepository) {},
			expectedCode:  apiErrors.ErrInvalidFormat,
			expectedError: domain.ErrValidation,
		},
		{
			name:    "Falha do banco não retorna linha",
			request: &domain.CreateClientEvolutionRequest{MonthText: "Abril"},
			setup: func(repo *mocks.MockClientEvolutionRepository) {
				repo.EXPECT().CreateEvolution(gomock.Any(), gomock.Any()).Return("", errors.New("connection refused"))
			},
			expectedError: domain.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockClientEvolutionRepository(ctrl)
			tt.setup(repo)

			row, err := newTestService(repo).CreateEvolution(context.Background(), tt.request)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, row)
				if tt.expectedCode != "" {
					assert.Equal(t, tt.expectedCode, apiErrors.CodeFor(err))
				}
				return
			}

			require.NoError(t, err)
			tt.validate(t, row)
		})
	}
}

func TestService_UpdateField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := &domain.ClientEvolutionRow{
		ID:               "row1",
		MonthText:        "Marzo",
		PaidClients:      5,
		Expenses:         10000,
		Income:           100000,
		NetIncome:        90000,
		ProfitPerPartner: 30000,
	}

	t.Run("Despesas não alteram a receita", func(t *testing.T) {
		repo := mocks.NewMockClientEvolutionRepository(ctrl)

		updated := *stored
		updated.Expenses = 40000
		updated.NetIncome = 60000
		updated.ProfitPerPartner = 20000

		gomock.InOrder(
			repo.EXPECT().GetEvolutionByID(gomock.Any(), "row1").Return(stored, nil),
			repo.EXPECT().UpdateEvolution(gomock.Any(), "row1", map[string]any{
				"expenses":           int64(40000),
				"net_income":         int64(60000),
				"profit_per_partner": int64(20000),
			}).Return(nil),
			repo.EXPECT().GetEvolutionByID(gomock.Any(), "row1").Return(&updated, nil),
		)

		row, err := newTestService(repo).UpdateField(context.Background(), domain.EvolutionFieldUpdate{
			ID:     "row1",
			Field:  domain.FieldExpenses,
			Number: 40000,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(100000), row.Income)
		assert.Equal(t, int64(60000), row.NetIncome)
	})

	t.Run("Campo derivado é rejeitado", func(t *testing.T) {
		repo := mocks.NewMockClientEvolutionRepository(ctrl)

		row, err := newTestService(repo).UpdateField(context.Background(), domain.EvolutionFieldUpdate{ID: "row1", Field: "income", Number: 1})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Nil(t, row)
	})

	t.Run("Registro inexistente", func(t *testing.T) {
		repo := mocks.NewMockClientEvolutionRepository(ctrl)
		repo.EXPECT().GetEvolutionByID(gomock.Any(), "missing").Return(nil, nil)

		row, err := newTestService(repo).UpdateField(context.Background(), domain.EvolutionFieldUpdate{ID: "missing", Field: domain.FieldPaidClients, Number: 2})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, row)
	})

	t.Run("Falha ao gravar não retorna linha parcial", func(t *testing.T) {
		repo := mocks.NewMockClientEvolutionRepository(ctrl)
		repo.EXPECT().GetEvolutionByID(gomock.Any(), "row1").Return(stored, nil)
		repo.EXPECT().UpdateEvolution(gomock.Any(), "row1", gomock.Any()).Return(errors.New("timeout"))

		row, err := newTestService(repo).UpdateField(context.Background(), domain.EvolutionFieldUpdate{ID: "row1", Field: domain.FieldPaidClients, Number: 6})
		assert.ErrorIs(t, err, domain.ErrStore)
		assert.Nil(t, row)
	})
}

func TestService_ListEvolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockClientEvolutionRepository(ctrl)
	repo.EXPECT().ListEvolution(gomock.Any()).Return([]*domain.ClientEvolutionRow{
		{ID: "row1", MonthText: "Enero", PaidClients: 2, Expenses: 1000, Income: 0},
	}, nil)

	rows, err := newTestService(repo).ListEvolution(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(40000), rows[0].Income)
	assert.Equal(t, int64(39000), rows[0].NetIncome)
	assert.Equal(t, int64(13000), rows[0].ProfitPerPartner)
}

func TestService_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockClientEvolutionRepository(ctrl)
	repo.EXPECT().ListEvolution(gomock.Any()).Return([]*domain.ClientEvolutionRow{
		{ID: "ok", PaidClients: 1, Expenses: 0, Income: 20000, NetIncome: 20000, ProfitPerPartner: 6667},
		{ID: "drift", PaidClients: 3, Expenses: 0, Income: 40000, NetIncome: 40000, ProfitPerPartner: 13333},
	}, nil)
	repo.EXPECT().UpdateEvolution(gomock.Any(), "drift", map[string]any{
		"income":             int64(60000),
		"net_income":         int64(60000),
		"profit_per_partner": int64(20000),
	}).Return(nil)

	fixed, err := newTestService(repo).Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)
}
