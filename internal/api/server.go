package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/internal/api/handler"
	"github.com/mtl-labs/dashboard-api/internal/api/handler/router"
	"github.com/mtl-labs/dashboard-api/internal/config"
	"github.com/mtl-labs/dashboard-api/internal/usecases/costing"
	"github.com/mtl-labs/dashboard-api/internal/usecases/evolution"
	"github.com/mtl-labs/dashboard-api/internal/usecases/marketing"
	"github.com/mtl-labs/dashboard-api/internal/usecases/projecting"
	"github.com/mtl-labs/dashboard-api/pkg/middleware"
)

// Services agrupa as dependências expostas pela API
type Services struct {
	Projects  projecting.ProjectService
	Tasks     projecting.TaskService
	Marketing marketing.MarketingService
	Evolution evolution.EvolutionService
	Costs     costing.CostService
	Database  handler.Pinger
	CronJobs  handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	httpMetrics := middleware.NewHTTPMetrics(registry)

	rt := NewRouter(services, httpMetrics, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewRouter monta todas as rotas da API, cada uma instrumentada pelo prometheus
func NewRouter(services Services, httpMetrics *middleware.HTTPMetrics, metricsHandler http.Handler) *router.Router {
	return router.New(
		router.WithInstrumentation(httpMetrics.Instrument),
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Metrics(metricsHandler)...),
		router.WithRoutes(handler.Projects(services.Projects)...),
		router.WithRoutes(handler.Tasks(services.Tasks)...),
		router.WithRoutes(handler.Campaigns(services.Marketing)...),
		router.WithRoutes(handler.Evolution(services.Evolution)...),
		router.WithRoutes(handler.Costs(services.Costs)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
