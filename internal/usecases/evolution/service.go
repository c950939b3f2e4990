package evolution

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/infrastructure/repository"
	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/internal/reporting"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
)

type EvolutionService interface {
	ListEvolution(ctx context.Context) ([]*domain.ClientEvolutionRow, error)
	CreateEvolution(ctx context.Context, req *domain.CreateClientEvolutionRequest) (*domain.ClientEvolutionRow, error)
	UpdateField(ctx context.Context, edit domain.EvolutionFieldUpdate) (*domain.ClientEvolutionRow, error)
	Reconcile(ctx context.Context) (int, error)
}

type Service struct {
	evolutionRepository repository.ClientEvolutionRepository
	now                 func() time.Time
}

func NewService(evolutionRepository repository.ClientEvolutionRepository) EvolutionService {
	return &Service{
		evolutionRepository: evolutionRepository,
		now:                 time.Now,
	}
}

// ListEvolution retorna as linhas com os derivados recalculados a partir de paid_clients e expenses
func (s *Service) ListEvolution(ctx context.Context) ([]*domain.ClientEvolutionRow, error) {
	rows, err := s.evolutionRepository.ListEvolution(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar evolução de clientes")
		return nil, domain.NewStoreError(err, "Falha ao listar evolução de clientes")
	}

	for i, row := range rows {
		normalized, _ := reporting.NormalizeEvolutionRow(*row)
		rows[i] = &normalized
	}

	return rows, nil
}

func (s *Service) CreateEvolution(ctx context.Context, req *domain.CreateClientEvolutionRequest) (*domain.ClientEvolutionRow, error) {
	now := s.now()

	if req.MonthText == "" {
		req.MonthText = domain.MonthNameOf(now)
	}

	if req.Month == nil || req.Month.IsZero() {
		today := domain.DateOf(now)
		req.Month = &today
	}

	row, err := reporting.BuildEvolutionRow(*req)
	if err != nil {
		return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
	}

	id, err := s.evolutionRepository.CreateEvolution(ctx, &row)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateMonth) {
			logrus.WithField("month_text", row.MonthText).Warn("Mês já registrado na evolução de clientes")
			return nil, domain.NewDashboardError(err, apiErrors.ErrDuplicateMonth, "Já existe um registro para este mês")
		}

		logrus.WithError(err).WithField("month_text", row.MonthText).Error("Erro ao criar evolução de clientes")
		return nil, domain.NewStoreError(err, "Falha ao criar evolução de clientes")
	}

	return s.reload(ctx, id)
}

// UpdateField grava o campo editado e apenas os campos derivados dele
func (s *Service) UpdateField(ctx context.Context, edit domain.EvolutionFieldUpdate) (*domain.ClientEvolutionRow, error) {
	if _, err := domain.ParseEvolutionField(string(edit.Field)); err != nil {
		return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
	}

	stored, err := s.reload(ctx, edit.ID)
	if err != nil {
		return nil, err
	}

	_, changes, err := reporting.ApplyEvolutionEdit(*stored, edit)
	if err != nil {
		return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
	}

	if err := s.evolutionRepository.UpdateEvolution(ctx, edit.ID, changes); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.NewNotFoundError(edit.ID, "Registro de evolução não encontrado")
		case errors.Is(err, domain.ErrDuplicateMonth):
			return nil, domain.NewDashboardError(err, apiErrors.ErrDuplicateMonth, "Já existe um registro para este mês")
		}

		logrus.WithError(err).WithFields(logrus.Fields{
			"evolution_id": edit.ID,
			"field":        edit.Field,
		}).Error("Erro ao atualizar evolução de clientes")
		return nil, domain.NewStoreError(err, "Falha ao atualizar evolução de clientes")
	}

	return s.reload(ctx, edit.ID)
}

// Reconcile regrava income, net_income e profit_per_partner das linhas que divergem
// de paid_clients e expenses. Retorna quantas linhas foram corrigidas.
func (s *Service) Reconcile(ctx context.Context) (int, error) {
	rows, err := s.evolutionRepository.ListEvolution(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar evolução para reconciliação")
		return 0, domain.NewStoreError(err, "Falha ao listar evolução de clientes")
	}

	fixed := 0
	for _, row := range rows {
		normalized, drifted := reporting.NormalizeEvolutionRow(*row)
		if !drifted {
			continue
		}

		changes := map[string]any{
			"income":             normalized.Income,
			"net_income":         normalized.NetIncome,
			"profit_per_partner": normalized.ProfitPerPartner,
		}

		if err := s.evolutionRepository.UpdateEvolution(ctx, row.ID, changes); err != nil {
			logrus.WithError(err).WithField("evolution_id", row.ID).Error("Erro ao corrigir linha de evolução")
			return fixed, domain.NewStoreError(err, "Falha ao corrigir evolução de clientes")
		}

		logrus.WithFields(logrus.Fields{
			"evolution_id": row.ID,
			"month_text":   row.MonthText,
			"income":       normalized.Income,
		}).Info("Linha de evolução recalculada")
		fixed++
	}

	return fixed, nil
}

func (s *Service) reload(ctx context.Context, id string) (*domain.ClientEvolutionRow, error) {
	row, err := s.evolutionRepository.GetEvolutionByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("evolution_id", id).Error("Erro ao buscar evolução de clientes")
		return nil, domain.NewStoreError(err, "Falha ao buscar evolução de clientes")
	}

	if row == nil {
		return nil, domain.NewNotFoundError(id, "Registro de evolução não encontrado")
	}

	return row, nil
}
