package domain

import (
	"fmt"
	"time"
)

// ClientEvolutionRow guarda os números de um mês. Income, NetIncome e
// ProfitPerPartner são derivados de PaidClients e Expenses.
type ClientEvolutionRow struct {
	ID               string `json:"id"`
	Month            Date   `json:"month"`
	MonthText        string `json:"month_text"`
	ActiveClients    int64  `json:"active_clients"`
	TrialClients     int64  `json:"trial_clients"`
	PaidClients      int64  `json:"paid_clients"`
	Expenses         int64  `json:"expenses"`
	Income           int64  `json:"income"`
	NetIncome        int64  `json:"net_income"`
	ProfitPerPartner int64  `json:"profit_per_partner"`
}

type CreateClientEvolutionRequest struct {
	Month         *Date   `json:"month,omitempty"`
	MonthText     string  `json:"month_text"`
	ActiveClients float64 `json:"active_clients"`
	TrialClients  float64 `json:"trial_clients"`
	PaidClients   float64 `json:"paid_clients"`
	Expenses      float64 `json:"expenses"`
}

// EvolutionField é um campo editável de uma linha de evolução
type EvolutionField string

const (
	FieldMonthText     EvolutionField = "month_text"
	FieldActiveClients EvolutionField = "active_clients"
	FieldTrialClients  EvolutionField = "trial_clients"
	FieldPaidClients   EvolutionField = "paid_clients"
	FieldExpenses      EvolutionField = "expenses"
)

func ParseEvolutionField(value string) (EvolutionField, error) {
	switch EvolutionField(value) {
	case FieldMonthText, FieldActiveClients, FieldTrialClients, FieldPaidClients, FieldExpenses:
		return EvolutionField(value), nil
	}
	return "", fmt.Errorf("%w: campo não editável %q", ErrValidation, value)
}

// EvolutionFieldUpdate é a edição de um único campo; Text vale para month_text, Number para o resto
type EvolutionFieldUpdate struct {
	ID     string
	Field  EvolutionField
	Text   string
	Number float64
}

// MonthNames são os valores aceitos em month_text
var MonthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func IsMonthName(value string) bool {
	for _, name := range MonthNames {
		if name == value {
			return true
		}
	}
	return false
}

// MonthNameOf retorna o nome do mês usado em month_text
func MonthNameOf(t time.Time) string {
	return MonthNames[int(t.Month())-1]
}
