package costing

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/infrastructure/repository"
	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/internal/reporting"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
	"github.com/mtl-labs/dashboard-api/pkg/utils"
)

type CostService interface {
	ListCosts(ctx context.Context) ([]*domain.CostEntry, error)
	CreateCost(ctx context.Context, req *domain.CreateCostRequest) (*domain.CostEntry, error)
	MonthlyView(ctx context.Context, month string) (*MonthlyView, error)
}

// MonthlyView é o que o painel de custos exibe: totais por mês e o detalhe do mês escolhido
type MonthlyView struct {
	reporting.MonthlyCosts
	SelectedMonth string                    `json:"selected_month"`
	SelectedTotal float64                   `json:"selected_total"`
	Breakdown     []reporting.CostBreakdown `json:"breakdown"`
}

type Service struct {
	costRepository repository.CostRepository
	now            func() time.Time
}

func NewService(costRepository repository.CostRepository) CostService {
	return &Service{
		costRepository: costRepository,
		now:            time.Now,
	}
}

func (s *Service) ListCosts(ctx context.Context) ([]*domain.CostEntry, error) {
	costs, err := s.costRepository.ListCosts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar custos")
		return nil, domain.NewStoreError(err, "Falha ao listar custos")
	}

	return costs, nil
}

func (s *Service) CreateCost(ctx context.Context, req *domain.CreateCostRequest) (*domain.CostEntry, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "A descrição do custo é obrigatória")
	}

	if req.Amount <= 0 {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrInvalidFormat, "O valor do custo deve ser positivo")
	}

	frequency := domain.FrequencyMonthly
	if req.Frequency != "" {
		parsed, err := domain.ParseCostFrequency(req.Frequency)
		if err != nil {
			return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
		}
		frequency = parsed
	}

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = domain.DateOf(s.now())
	}

	cost := &domain.CostEntry{
		Description: description,
		Amount:      req.Amount,
		Frequency:   frequency,
		StartDate:   startDate,
	}

	id, err := s.costRepository.CreateCost(ctx, cost)
	if err != nil {
		logrus.WithError(err).WithField("description", description).Error("Erro ao criar custo")
		return nil, domain.NewStoreError(err, "Falha ao criar custo")
	}

	// custos não têm leitura por id; a lista completa é relida
	costs, err := s.ListCosts(ctx)
	if err != nil {
		return nil, err
	}

	for _, stored := range costs {
		if stored.ID == id {
			return stored, nil
		}
	}

	return nil, domain.NewNotFoundError(id, "Custo não encontrado após inserção")
}

func (s *Service) MonthlyView(ctx context.Context, month string) (*MonthlyView, error) {
	if _, err := utils.ParseMonth(month); err != nil {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrInvalidFormat, "Mês inválido, use yyyy-MM")
	}

	costs, err := s.ListCosts(ctx)
	if err != nil {
		return nil, err
	}

	values := make([]domain.CostEntry, 0, len(costs))
	for _, cost := range costs {
		values = append(values, *cost)
	}

	aggregated := reporting.AggregateMonthlyCosts(values)
	selected := reporting.SelectMonth(aggregated.Months, month, s.now())

	return &MonthlyView{
		MonthlyCosts:  aggregated,
		SelectedMonth: selected,
		SelectedTotal: aggregated.Totals[selected],
		Breakdown:     reporting.CostsInMonth(values, selected),
	}, nil
}
