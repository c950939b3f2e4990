package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/infrastructure/database/postgres"
	"github.com/mtl-labs/dashboard-api/infrastructure/repository"
	"github.com/mtl-labs/dashboard-api/internal/api"
	"github.com/mtl-labs/dashboard-api/internal/api/handler"
	"github.com/mtl-labs/dashboard-api/internal/config"
	"github.com/mtl-labs/dashboard-api/internal/scheduler"
	"github.com/mtl-labs/dashboard-api/internal/usecases/costing"
	"github.com/mtl-labs/dashboard-api/internal/usecases/evolution"
	"github.com/mtl-labs/dashboard-api/internal/usecases/marketing"
	"github.com/mtl-labs/dashboard-api/internal/usecases/projecting"
	"github.com/mtl-labs/dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	projectRepo := repository.NewProjectRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	leadRepo := repository.NewLeadRepository(pgConn)
	evolutionRepo := repository.NewClientEvolutionRepository(pgConn)
	costRepo := repository.NewCostRepository(pgConn)

	evolutionService := evolution.NewService(evolutionRepo)

	reconcileService := scheduler.NewEvolutionReconcileService(evolutionService, cfg)
	if err := reconcileService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação da evolução")
	} else {
		logrus.Info("Agendador de reconciliação da evolução iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Projects:  projecting.NewProjectService(projectRepo),
		Tasks:     projecting.NewTaskService(taskRepo, cfg.Team.Directory),
		Marketing: marketing.NewService(campaignRepo, leadRepo),
		Evolution: evolutionService,
		Costs:     costing.NewService(costRepo),
		Database:  pgConn,
		CronJobs: handler.CronJobServices{
			EvolutionReconcileService: reconcileService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
