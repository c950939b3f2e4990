package handler

import (
	"net/http"

	"github.com/mtl-labs/dashboard-api/internal/api/handler/router"
	"github.com/mtl-labs/dashboard-api/internal/usecases/costing"
	"github.com/mtl-labs/dashboard-api/internal/usecases/evolution"
	"github.com/mtl-labs/dashboard-api/internal/usecases/marketing"
	"github.com/mtl-labs/dashboard-api/internal/usecases/projecting"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// Metrics expõe o handler do prometheus
func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Projects(service projecting.ProjectService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects",
			Method:  http.MethodGet,
			Handler: ListProjects(service),
		},
		{
			Path:    "/v1/projects",
			Method:  http.MethodPost,
			Handler: CreateProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodPut,
			Handler: UpdateProject(service),
		},
		{
			Path:    "/v1/projects/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProject(service),
		},
		{
			Path:    "/v1/projects/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateProjectStatus(service),
		},
	}
}

func Tasks(service projecting.TaskService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tasks",
			Method:  http.MethodGet,
			Handler: ListTasks(service),
		},
		{
			Path:    "/v1/tasks",
			Method:  http.MethodPost,
			Handler: CreateTask(service),
		},
		{
			Path:    "/v1/tasks/summary",
			Method:  http.MethodGet,
			Handler: TaskSummary(service),
		},
		{
			Path:    "/v1/tasks/timeline",
			Method:  http.MethodGet,
			Handler: TaskTimeline(service),
		},
		{
			Path:    "/v1/tasks/:id",
			Method:  http.MethodPut,
			Handler: UpdateTask(service),
		},
		{
			Path:    "/v1/tasks/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTask(service),
		},
		{
			Path:    "/v1/tasks/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateTaskStatus(service),
		},
		{
			Path:    "/v1/team",
			Method:  http.MethodGet,
			Handler: ListTeam(service),
		},
	}
}

func Campaigns(service marketing.MarketingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id/stages/:stage",
			Method:  http.MethodPut,
			Handler: UpdateStageCounter(service),
		},
		{
			Path:    "/v1/campaigns/:id/metrics",
			Method:  http.MethodGet,
			Handler: GetCampaignMetrics(service),
		},
		{
			Path:    "/v1/campaigns/:id/funnel",
			Method:  http.MethodGet,
			Handler: GetCampaignFunnel(service),
		},
		{
			Path:    "/v1/campaigns/:id/leads",
			Method:  http.MethodGet,
			Handler: ListCampaignLeads(service),
		},
		{
			Path:    "/v1/campaigns/:id/leads",
			Method:  http.MethodPost,
			Handler: CreateCampaignLead(service),
		},
		{
			Path:    "/v1/leads/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateLeadStatus(service),
		},
	}
}

func Evolution(service evolution.EvolutionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/evolution",
			Method:  http.MethodGet,
			Handler: ListEvolution(service),
		},
		{
			Path:    "/v1/evolution",
			Method:  http.MethodPost,
			Handler: CreateEvolution(service),
		},
		{
			Path:    "/v1/evolution/:id/:field",
			Method:  http.MethodPut,
			Handler: UpdateEvolutionField(service),
		},
	}
}

func Costs(service costing.CostService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/costs",
			Method:  http.MethodGet,
			Handler: ListCosts(service),
		},
		{
			Path:    "/v1/costs",
			Method:  http.MethodPost,
			Handler: CreateCost(service),
		},
		{
			Path:    "/v1/costs/monthly",
			Method:  http.MethodGet,
			Handler: MonthlyCosts(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
