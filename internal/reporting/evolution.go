package reporting

import (
	"fmt"
	"strings"

	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/pkg/utils"
)

const (
	// SubscriptionPrice é o valor de uma assinatura paga
	SubscriptionPrice = 20000
	// PartnerCount é o número de sócios que dividem o lucro líquido
	PartnerCount = 3
)

type EvolutionFigures struct {
	Income           int64 `json:"income"`
	NetIncome        int64 `json:"net_income"`
	ProfitPerPartner int64 `json:"profit_per_partner"`
}

func Recompute(paidClients, expenses int64) EvolutionFigures {
	income := utils.RoundHalfUp(float64(paidClients) * SubscriptionPrice)
	net, profit := netFromIncome(income, expenses)

	return EvolutionFigures{
		Income:           income,
		NetIncome:        net,
		ProfitPerPartner: profit,
	}
}

func netFromIncome(income, expenses int64) (int64, int64) {
	net := utils.RoundHalfUp(float64(income - expenses))
	profit := utils.RoundHalfUp(float64(net) / PartnerCount)
	return net, profit
}

// BuildEvolutionRow arredonda as entradas e preenche os campos derivados
func BuildEvolutionRow(req domain.CreateClientEvolutionRequest) (domain.ClientEvolutionRow, error) {
	monthText := strings.TrimSpace(req.MonthText)
	if !domain.IsMonthName(monthText) {
		return domain.ClientEvolutionRow{}, fmt.Errorf("%w: mês inválido %q", domain.ErrValidation, req.MonthText)
	}

	row := domain.ClientEvolutionRow{
		MonthText:     monthText,
		ActiveClients: utils.RoundHalfUp(req.ActiveClients),
		TrialClients:  utils.RoundHalfUp(req.TrialClients),
		PaidClients:   utils.RoundHalfUp(req.PaidClients),
		Expenses:      utils.RoundHalfUp(req.Expenses),
	}
	if req.Month != nil {
		row.Month = *req.Month
	}

	figures := Recompute(row.PaidClients, row.Expenses)
	row.Income = figures.Income
	row.NetIncome = figures.NetIncome
	row.ProfitPerPartner = figures.ProfitPerPartner

	return row, nil
}

// ApplyEvolutionEdit aplica a edição de um campo sobre a linha armazenada e
// retorna a linha resultante junto com as colunas a gravar. Apenas o campo
// editado e seus dependentes entram nas alterações.
func ApplyEvolutionEdit(row domain.ClientEvolutionRow, edit domain.EvolutionFieldUpdate) (domain.ClientEvolutionRow, map[string]any, error) {
	changes := map[string]any{}

	switch edit.Field {
	case domain.FieldMonthText:
		monthText := strings.TrimSpace(edit.Text)
		if !domain.IsMonthName(monthText) {
			return row, nil, fmt.Errorf("%w: mês inválido %q", domain.ErrValidation, edit.Text)
		}
		row.MonthText = monthText
		changes["month_text"] = monthText

	case domain.FieldActiveClients:
		row.ActiveClients = utils.RoundHalfUp(edit.Number)
		changes["active_clients"] = row.ActiveClients

	case domain.FieldTrialClients:
		row.TrialClients = utils.RoundHalfUp(edit.Number)
		changes["trial_clients"] = row.TrialClients

	case domain.FieldPaidClients:
		row.PaidClients = utils.RoundHalfUp(edit.Number)
		figures := Recompute(row.PaidClients, row.Expenses)
		row.Income = figures.Income
		row.NetIncome = figures.NetIncome
		row.ProfitPerPartner = figures.ProfitPerPartner
		changes["paid_clients"] = row.PaidClients
		changes["income"] = row.Income
		changes["net_income"] = row.NetIncome
		changes["profit_per_partner"] = row.ProfitPerPartner

	case domain.FieldExpenses:
		// a receita armazenada é mantida, mesmo que divirja de paid_clients
		row.Expenses = utils.RoundHalfUp(edit.Number)
		row.NetIncome, row.ProfitPerPartner = netFromIncome(row.Income, row.Expenses)
		changes["expenses"] = row.Expenses
		changes["net_income"] = row.NetIncome
		changes["profit_per_partner"] = row.ProfitPerPartner

	default:
		return row, nil, fmt.Errorf("%w: campo não editável %q", domain.ErrValidation, edit.Field)
	}

	return row, changes, nil
}

// NormalizeEvolutionRow recalcula os derivados a partir de paid_clients e expenses.
// Retorna true quando algum valor armazenado divergia.
func NormalizeEvolutionRow(row domain.ClientEvolutionRow) (domain.ClientEvolutionRow, bool) {
	figures := Recompute(row.PaidClients, row.Expenses)
	drifted := row.Income != figures.Income ||
		row.NetIncome != figures.NetIncome ||
		row.ProfitPerPartner != figures.ProfitPerPartner

	row.Income = figures.Income
	row.NetIncome = figures.NetIncome
	row.ProfitPerPartner = figures.ProfitPerPartner

	return row, drifted
}

// EnsureUniqueMonth falha com ErrDuplicateMonth se month_text já existir
func EnsureUniqueMonth(rows []domain.ClientEvolutionRow, monthText string) error {
	for _, row := range rows {
		if row.MonthText == monthText {
			return fmt.Errorf("%w: já existe um registro para %s (%s)", domain.ErrDuplicateMonth, monthText, row.ID)
		}
	}
	return nil
}
