package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/infrastructure/database/postgres"
	"github.com/mtl-labs/dashboard-api/internal/config"
	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/internal/reporting"
	"github.com/mtl-labs/dashboard-api/pkg/log"
	"github.com/mtl-labs/dashboard-api/pkg/utils"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id VARCHAR(32) PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date DATE,
		end_date DATE,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id VARCHAR(32) PRIMARY KEY,
		project_id VARCHAR(32) NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date DATE,
		due_date DATE,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		priority VARCHAR(10) NOT NULL DEFAULT 'medium',
		assigned_to VARCHAR(64),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id VARCHAR(32) PRIMARY KEY,
		name TEXT NOT NULL,
		source VARCHAR(20) NOT NULL,
		start_date DATE,
		end_date DATE,
		cost DOUBLE PRECISION NOT NULL DEFAULT 0,
		contacto_inicial BIGINT NOT NULL DEFAULT 0,
		info_enviada BIGINT NOT NULL DEFAULT 0,
		contacto_personal BIGINT NOT NULL DEFAULT 0,
		registrado BIGINT NOT NULL DEFAULT 0,
		suscrito BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id VARCHAR(32) PRIMARY KEY,
		campaign_id VARCHAR(32) NOT NULL,
		name TEXT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'contacto_inicial',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS client_evolution (
		id VARCHAR(32) PRIMARY KEY,
		month DATE NOT NULL,
		month_text VARCHAR(20) NOT NULL,
		active_clients BIGINT NOT NULL DEFAULT 0,
		trial_clients BIGINT NOT NULL DEFAULT 0,
		paid_clients BIGINT NOT NULL DEFAULT 0,
		expenses BIGINT NOT NULL DEFAULT 0,
		income BIGINT NOT NULL DEFAULT 0,
		net_income BIGINT NOT NULL DEFAULT 0,
		profit_per_partner BIGINT NOT NULL DEFAULT 0,
		CONSTRAINT client_evolution_month_text_unique UNIQUE (month_text)
	)`,
	`CREATE TABLE IF NOT EXISTS costs (
		id VARCHAR(32) PRIMARY KEY,
		description TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		frequency VARCHAR(10) NOT NULL DEFAULT 'monthly',
		start_date DATE NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS tasks_project_id_idx ON tasks (project_id)`,
	`CREATE INDEX IF NOT EXISTS leads_campaign_id_idx ON leads (campaign_id)`,
}

type seedTask struct {
	Title      string
	Start      domain.Date
	Due        domain.Date
	Status     domain.Status
	Priority   domain.Priority
	AssignedTo string
}

func createSchema(tx *sql.Tx) error {
	for _, statement := range schema {
		if _, err := tx.Exec(statement); err != nil {
			return err
		}
	}
	return nil
}

// seedIsNeeded evita duplicar os dados de demonstração em execuções repetidas
func seedIsNeeded(tx *sql.Tx) (bool, error) {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedProject(tx *sql.Tx, team []domain.TeamMember) error {
	projectID, err := utils.GenerateID()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO projects (id, name, description, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5, $6)`,
		projectID, "Lanzamiento web", "Sitio y embudo de suscripción",
		domain.NewDate(2024, time.January, 8), domain.NewDate(2024, time.March, 29), domain.StatusInProgress,
	)
	if err != nil {
		return err
	}

	assignee := func(i int) any {
		if len(team) == 0 {
			return nil
		}
		return team[i%len(team)].ID
	}

	tasks := []seedTask{
		{Title: "Diseño de landing", Start: domain.NewDate(2024, time.January, 8), Due: domain.NewDate(2024, time.January, 26), Status: domain.StatusCompleted, Priority: domain.PriorityHigh},
		{Title: "Integración de pagos", Start: domain.NewDate(2024, time.January, 22), Due: domain.NewDate(2024, time.February, 16), Status: domain.StatusInProgress, Priority: domain.PriorityHigh},
		{Title: "Contenido para redes", Start: domain.NewDate(2024, time.February, 5), Due: domain.NewDate(2024, time.March, 1), Status: domain.StatusPending, Priority: domain.PriorityMedium},
		{Title: "Pruebas con usuarios", Start: domain.NewDate(2024, time.March, 4), Due: domain.NewDate(2024, time.March, 22), Status: domain.StatusPending, Priority: domain.PriorityLow},
	}

	for i, task := range tasks {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			`INSERT INTO tasks (id, project_id, title, start_date, due_date, status, priority, assigned_to) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			id, projectID, task.Title, task.Start, task.Due, task.Status, task.Priority, assignee(i),
		)
		if err != nil {
			return err
		}
	}

	logrus.WithField("tasks", len(tasks)).Info("Projeto de demonstração inserido")
	return nil
}

func seedCampaign(tx *sql.Tx) error {
	campaignID, err := utils.GenerateID()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO campaigns (id, name, source, start_date, end_date, cost, contacto_inicial, info_enviada, contacto_personal, registrado, suscrito)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		campaignID, "Verano 2024", domain.SourceFacebook,
		domain.NewDate(2024, time.January, 1), domain.NewDate(2024, time.February, 29),
		150000.0, 120, 80, 45, 20, 12,
	)
	if err != nil {
		return err
	}

	leads := map[string]domain.FunnelStage{
		"Lucía Fernández": domain.StageContactoInicial,
		"Martín Gómez":    domain.StageInfoEnviada,
		"Sofía Ramírez":   domain.StageRegistrado,
		"Diego Torres":    domain.StageSuscrito,
	}

	for name, stage := range leads {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`INSERT INTO leads (id, campaign_id, name, status) VALUES ($1, $2, $3, $4)`, id, campaignID, name, stage); err != nil {
			return err
		}
	}

	logrus.WithField("leads", len(leads)).Info("Campanha de demonstração inserida")
	return nil
}

func seedEvolution(tx *sql.Tx) error {
	requests := []domain.CreateClientEvolutionRequest{
		{MonthText: "Enero", ActiveClients: 40, TrialClients: 12, PaidClients: 28, Expenses: 180000},
		{MonthText: "Febrero", ActiveClients: 46, TrialClients: 10, PaidClients: 35, Expenses: 195000},
		{MonthText: "Marzo", ActiveClients: 53, TrialClients: 9, PaidClients: 43, Expenses: 210000},
	}

	for i, req := range requests {
		month := domain.NewDate(2024, time.Month(i+1), 1)
		req.Month = &month

		// os derivados seguem a mesma regra da API
		row, err := reporting.BuildEvolutionRow(req)
		if err != nil {
			return err
		}

		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			`INSERT INTO client_evolution (id, month, month_text, active_clients, trial_clients, paid_clients, expenses, income, net_income, profit_per_partner)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			id, row.Month, row.MonthText, row.ActiveClients, row.TrialClients, row.PaidClients,
			row.Expenses, row.Income, row.NetIncome, row.ProfitPerPartner,
		)
		if err != nil {
			return err
		}
	}

	logrus.WithField("rows", len(requests)).Info("Evolução de clientes de demonstração inserida")
	return nil
}

func seedCosts(tx *sql.Tx) error {
	costs := []domain.CostEntry{
		{Description: "Hosting", Amount: 24000, Frequency: domain.FrequencyMonthly, StartDate: domain.NewDate(2024, time.January, 1)},
		{Description: "Dominio", Amount: 36000, Frequency: domain.FrequencyAnnual, StartDate: domain.NewDate(2024, time.January, 15)},
		{Description: "Herramientas de diseño", Amount: 18000, Frequency: domain.FrequencyMonthly, StartDate: domain.NewDate(2024, time.February, 1)},
	}

	for _, cost := range costs {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			`INSERT INTO costs (id, description, amount, frequency, start_date) VALUES ($1, $2, $3, $4, $5)`,
			id, cost.Description, cost.Amount, cost.Frequency, cost.StartDate,
		)
		if err != nil {
			return err
		}
	}

	logrus.WithField("costs", len(costs)).Info("Custos de demonstração inseridos")
	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando script de migração...")

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(tx); err != nil {
			return err
		}
		logrus.Info("Tabelas criadas ou já existentes")

		needed, err := seedIsNeeded(tx)
		if err != nil {
			return err
		}
		if !needed {
			logrus.Info("Banco já possui dados, seed ignorado")
			return nil
		}

		if err := seedProject(tx, cfg.Team.Directory); err != nil {
			return err
		}
		if err := seedCampaign(tx); err != nil {
			return err
		}
		if err := seedEvolution(tx); err != nil {
			return err
		}
		return seedCosts(tx)
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO na migração, nenhuma alteração aplicada")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
