package reporting

import (
	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/pkg/utils"
)

type StatusCount struct {
	Status     domain.Status `json:"status"`
	Count      int           `json:"count"`
	Percentage int64         `json:"percentage"`
}

type TaskSummary struct {
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"by_status"`
}

// SummarizeTasks conta as tarefas por status com o percentual arredondado
func SummarizeTasks(tasks []domain.Task) TaskSummary {
	counts := make(map[domain.Status]int, len(domain.Statuses))
	for _, task := range tasks {
		counts[task.Status]++
	}

	summary := TaskSummary{
		Total:    len(tasks),
		ByStatus: make([]StatusCount, 0, len(domain.Statuses)),
	}
	for _, status := range domain.Statuses {
		var percentage int64
		if summary.Total > 0 {
			percentage = utils.RoundHalfUp(float64(counts[status]) / float64(summary.Total) * 100)
		}
		summary.ByStatus = append(summary.ByStatus, StatusCount{
			Status:     status,
			Count:      counts[status],
			Percentage: percentage,
		})
	}

	return summary
}
