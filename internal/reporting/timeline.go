package reporting

import (
	"github.com/mtl-labs/dashboard-api/internal/domain"
)

var statusColors = map[domain.Status]string{
	domain.StatusPending:    "rgba(234, 179, 8, 0.8)",
	domain.StatusInProgress: "rgba(59, 130, 246, 0.8)",
	domain.StatusCompleted:  "rgba(34, 197, 94, 0.8)",
	domain.StatusCancelled:  "rgba(156, 163, 175, 0.8)",
}

const defaultColor = "rgba(156, 163, 175, 0.8)"

type TimelineBar struct {
	TaskID     string        `json:"task_id"`
	X          domain.Date   `json:"x"`
	Label      string        `json:"label"`
	Duration   int           `json:"duration"`
	Color      string        `json:"color"`
	Status     domain.Status `json:"status"`
	AssignedTo *string       `json:"assigned_to"`
}

func StatusColor(status domain.Status) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return defaultColor
}

// DurationDays conta os dias de calendário entre as datas, sem incluir o último
func DurationDays(start, end domain.Date) int {
	days := int(end.Sub(start.Time).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// TimelineBars gera uma barra por tarefa com início e prazo definidos
func TimelineBars(tasks []domain.Task) []TimelineBar {
	bars := make([]TimelineBar, 0, len(tasks))
	for _, task := range tasks {
		if task.StartDate == nil || task.DueDate == nil || task.StartDate.IsZero() || task.DueDate.IsZero() {
			continue
		}

		bars = append(bars, TimelineBar{
			TaskID:     task.ID,
			X:          *task.StartDate,
			Label:      task.Title,
			Duration:   DurationDays(*task.StartDate, *task.DueDate),
			Color:      StatusColor(task.Status),
			Status:     task.Status,
			AssignedTo: task.AssignedTo,
		})
	}
	return bars
}
