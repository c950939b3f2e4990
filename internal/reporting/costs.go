package reporting

import (
	"sort"
	"time"

	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/pkg/utils"
)

type MonthlyCosts struct {
	Totals map[string]float64 `json:"totals"`
	Months []string           `json:"months"`
}

type CostBreakdown struct {
	domain.CostEntry
	MonthlyAmount float64 `json:"monthly_amount"`
}

// MonthlyAmount normaliza o valor de um custo para um mês
func MonthlyAmount(cost domain.CostEntry) float64 {
	if cost.Frequency == domain.FrequencyAnnual {
		return cost.Amount / 12
	}
	return cost.Amount
}

// AggregateMonthlyCosts soma cada custo apenas no mês da sua data de início
func AggregateMonthlyCosts(costs []domain.CostEntry) MonthlyCosts {
	totals := make(map[string]float64)
	for _, cost := range costs {
		if cost.StartDate.IsZero() {
			continue
		}
		totals[cost.StartDate.MonthKey()] += MonthlyAmount(cost)
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	return MonthlyCosts{Totals: totals, Months: months}
}

func CostsInMonth(costs []domain.CostEntry, month string) []CostBreakdown {
	breakdown := make([]CostBreakdown, 0)
	for _, cost := range costs {
		if cost.StartDate.IsZero() || cost.StartDate.MonthKey() != month {
			continue
		}
		breakdown = append(breakdown, CostBreakdown{
			CostEntry:     cost,
			MonthlyAmount: MonthlyAmount(cost),
		})
	}
	return breakdown
}

// SelectMonth escolhe o mês exibido: o pedido se existir, senão o primeiro
// disponível, senão o mês corrente
func SelectMonth(months []string, requested string, now time.Time) string {
	for _, month := range months {
		if month == requested {
			return month
		}
	}
	if len(months) > 0 {
		return months[0]
	}
	return now.Format(utils.MonthLayout)
}
