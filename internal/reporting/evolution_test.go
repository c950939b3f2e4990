package reporting

import (
	"testing"

	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecompute(t *testing.T) {
	tests := []struct {
		name        string
		paidClients int64
		expenses    int64
		expected    EvolutionFigures
	}{
		{
			name:        "Cinco pagantes com despesas",
			paidClients: 5,
			expenses:    10000,
			expected:    EvolutionFigures{Income: 100000, NetIncome: 90000, ProfitPerPartner: 30000},
		},
		{
			name:        "Despesas quebradas",
			paidClients: 1,
			expenses:    500,
			expected:    EvolutionFigures{Income: 20000, NetIncome: 19500, ProfitPerPartner: 6500},
		},
		{
			name:        "Divisão não exata",
			paidClients: 1,
			expenses:    0,
			expected:    EvolutionFigures{Income: 20000, NetIncome: 20000, ProfitPerPartner: 6667},
		},
		{
			name:        "Prejuízo",
			paidClients: 0,
			expenses:    1000,
			expected:    EvolutionFigures{Income: 0, NetIncome: -1000, ProfitPerPartner: -333},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Recompute(tt.paidClients, tt.expenses))
		})
	}
}

func TestBuildEvolutionRow(t *testing.T) {
	row, err := BuildEvolutionRow(domain.CreateClientEvolutionRequest{
		MonthText:     "Marzo",
		ActiveClients: 10.4,
		TrialClients:  2.5,
		PaidClients:   4.6,
		Expenses:      15000,
	})
	require.NoError(t, err)

	assert.Equal(t, "Marzo", row.MonthText)
	assert.Equal(t, int64(10), row.ActiveClients)
	assert.Equal(t, int64(3), row.TrialClients)
	assert.Equal(t, int64(5), row.PaidClients)
	assert.Equal(t, int64(100000), row.Income)
	assert.Equal(t, int64(85000), row.NetIncome)
	assert.Equal(t, int64(28333), row.ProfitPerPartner)

	_, err = BuildEvolutionRow(domain.CreateClientEvolutionRequest{MonthText: "March"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApplyEvolutionEdit(t *testing.T) {
	stored := domain.ClientEvolutionRow{
		ID:               "row1",
		MonthText:        "Marzo",
		ActiveClients:    10,
		TrialClients:     2,
		PaidClients:      5,
		Expenses:         10000,
		Income:           100000,
		NetIncome:        90000,
		ProfitPerPartner: 30000,
	}

	tests := []struct {
		name            string
		edit            domain.EvolutionFieldUpdate
		expectedRow     func(row domain.ClientEvolutionRow) domain.ClientEvolutionRow
		expectedColumns []string
		expectedErr     error
	}{
		{
			name: "Alterar pagantes recalcula receita, líquido e lucro",
			edit: domain.EvolutionFieldUpdate{Field: domain.FieldPaidClients, Number: 6},
			expectedRow: func(row domain.ClientEvolutionRow) domain.ClientEvolutionRow {
				row.PaidClients = 6
				row.Income = 120000
				row.NetIncome = 110000
				row.ProfitPerPartner = 36667
				return row
			},
			expectedColumns: []string{"paid_clients", "income", "net_income", "profit_per_partner"},
		},
		{
			name: "Alterar despesas mantém a receita armazenada",
			edit: domain.EvolutionFieldUpdate{Field: domain.FieldExpenses, Number: 40000},
			expectedRow: func(row domain.ClientEvolutionRow) domain.ClientEvolutionRow {
				row.Expenses = 40000
				row.NetIncome = 60000
				row.ProfitPerPartner = 20000
				return row
			},
			expectedColumns: []string{"expenses", "net_income", "profit_per_partner"},
		},
		{
			name: "Alterar ativos não mexe nos derivados",
			edit: domain.EvolutionFieldUpdate{Field: domain.FieldActiveClients, Number: 12.5},
			expectedRow: func(row domain.ClientEvolutionRow) domain.ClientEvolutionRow {
				row.ActiveClients = 13
				return row
			},
			expectedColumns: []string{"active_clients"},
		},
		{
			name: "Alterar mês de texto",
			edit: domain.EvolutionFieldUpdate{Field: domain.FieldMonthText, Text: "Abril"},
			expectedRow: func(row domain.ClientEvolutionRow) domain.ClientEvolutionRow {
				row.MonthText = "Abril"
				return row
			},
			expectedColumns: []string{"month_text"},
		},
		{
			name:        "Mês de texto inválido",
			edit:        domain.EvolutionFieldUpdate{Field: domain.FieldMonthText, Text: "abril"},
			expectedErr: domain.ErrValidation,
		},
		{
			name:        "Campo derivado não é editável",
			edit:        domain.EvolutionFieldUpdate{Field: "income", Number: 1},
			expectedErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, changes, err := ApplyEvolutionEdit(stored, tt.edit)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, changes)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedRow(stored), row)

			columns := make([]string, 0, len(changes))
			for column := range changes {
				columns = append(columns, column)
			}
			assert.ElementsMatch(t, tt.expectedColumns, columns)
		})
	}
}

func TestApplyEvolutionEdit_ExpensesUsesStoredIncome(t *testing.T) {
	// receita divergente de paid_clients × 20000 é preservada
	stored := domain.ClientEvolutionRow{PaidClients: 5, Income: 90000, Expenses: 0, NetIncome: 90000, ProfitPerPartner: 30000}

	row, changes, err := ApplyEvolutionEdit(stored, domain.EvolutionFieldUpdate{Field: domain.FieldExpenses, Number: 30000})
	require.NoError(t, err)

	assert.Equal(t, int64(90000), row.Income)
	assert.Equal(t, int64(60000), row.NetIncome)
	assert.Equal(t, int64(20000), row.ProfitPerPartner)
	assert.NotContains(t, changes, "income")
}

func TestNormalizeEvolutionRow(t *testing.T) {
	row, drifted := NormalizeEvolutionRow(domain.ClientEvolutionRow{PaidClients: 2, Expenses: 1000, Income: 40000, NetIncome: 39000, ProfitPerPartner: 13000})
	assert.False(t, drifted)
	assert.Equal(t, int64(13000), row.ProfitPerPartner)

	row, drifted = NormalizeEvolutionRow(domain.ClientEvolutionRow{PaidClients: 3, Expenses: 0, Income: 40000})
	assert.True(t, drifted)
	assert.Equal(t, int64(60000), row.Income)
	assert.Equal(t, int64(20000), row.ProfitPerPartner)
}

func TestEnsureUniqueMonth(t *testing.T) {
	rows := []domain.ClientEvolutionRow{{ID: "a", MonthText: "Marzo"}}

	assert.ErrorIs(t, EnsureUniqueMonth(rows, "Marzo"), domain.ErrDuplicateMonth)
	assert.NoError(t, EnsureUniqueMonth(rows, "marzo"))
	assert.NoError(t, EnsureUniqueMonth(nil, "Marzo"))
}
