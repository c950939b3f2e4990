package marketing

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mtl-labs/dashboard-api/infrastructure/repository"
	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/internal/reporting"
	"github.com/mtl-labs/dashboard-api/pkg/apiErrors"
)

type MarketingService interface {
	ListCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	CreateCampaign(ctx context.Context, req *domain.CreateCampaignRequest) (*domain.Campaign, error)
	UpdateStageCounter(ctx context.Context, campaignID string, stage string, value float64) (*domain.Campaign, error)
	CampaignMetrics(ctx context.Context, campaignID string) (*reporting.CampaignMetrics, error)
	CompareFunnel(ctx context.Context, campaignID string) ([]reporting.StageComparison, error)
	ListLeads(ctx context.Context, campaignID string) ([]*domain.Lead, error)
	CreateLead(ctx context.Context, req *domain.CreateLeadRequest) (*domain.Lead, error)
	UpdateLeadStatus(ctx context.Context, leadID string, status string) (*domain.Lead, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	leadRepository     repository.LeadRepository
}

func NewService(
	campaignRepository repository.CampaignRepository,
	leadRepository repository.LeadRepository,
) MarketingService {
	return &Service{
		campaignRepository: campaignRepository,
		leadRepository:     leadRepository,
	}
}

func (s *Service) ListCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepository.ListCampaigns(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas")
		return nil, domain.NewStoreError(err, "Falha ao listar campanhas")
	}

	return campaigns, nil
}

func (s *Service) CreateCampaign(ctx context.Context, req *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "O nome da campanha é obrigatório")
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "As datas da campanha são obrigatórias")
	}

	source, err := domain.ParseCampaignSource(req.Source)
	if err != nil {
		return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
	}

	if req.Cost < 0 {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrInvalidFormat, "O custo da campanha não pode ser negativo")
	}

	counters := []int64{req.ContactoInicial, req.InfoEnviada, req.ContactoPersonal, req.Registrado, req.Suscrito}
	for _, counter := range counters {
		if counter < 0 {
			return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrInvalidFormat, "Os contadores do funil não podem ser negativos")
		}
	}

	id, err := s.campaignRepository.CreateCampaign(ctx, &domain.Campaign{
		Name:             name,
		Source:           source,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Cost:             req.Cost,
		ContactoInicial:  req.ContactoInicial,
		InfoEnviada:      req.InfoEnviada,
		ContactoPersonal: req.ContactoPersonal,
		Registrado:       req.Registrado,
		Suscrito:         req.Suscrito,
	})
	if err != nil {
		logrus.WithError(err).WithField("name", name).Error("Erro ao criar campanha")
		return nil, domain.NewStoreError(err, "Falha ao criar campanha")
	}

	return s.reloadCampaign(ctx, id)
}

// UpdateStageCounter altera apenas o contador manual; os leads não são tocados
func (s *Service) UpdateStageCounter(ctx context.Context, campaignID string, stage string, value float64) (*domain.Campaign, error) {
	parsed, err := domain.ParseFunnelStage(stage)
	if err != nil {
		return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
	}

	if value < 0 {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrInvalidFormat, "Os contadores do funil não podem ser negativos")
	}

	// valores fracionários são truncados, como em um campo inteiro
	if err := s.campaignRepository.UpdateStageCounter(ctx, campaignID, parsed, int64(value)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(campaignID, "Campanha não encontrada")
		}

		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"stage":       stage,
		}).Error("Erro ao atualizar etapa da campanha")
		return nil, domain.NewStoreError(err, "Falha ao atualizar etapa da campanha")
	}

	return s.reloadCampaign(ctx, campaignID)
}

func (s *Service) CampaignMetrics(ctx context.Context, campaignID string) (*reporting.CampaignMetrics, error) {
	campaign, err := s.reloadCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	metrics := reporting.Metrics(*campaign)
	return &metrics, nil
}

func (s *Service) CompareFunnel(ctx context.Context, campaignID string) ([]reporting.StageComparison, error) {
	campaign, err := s.reloadCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	leads, err := s.ListLeads(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	values := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		values = append(values, *lead)
	}

	return reporting.CompareFunnel(*campaign, values), nil
}

func (s *Service) ListLeads(ctx context.Context, campaignID string) ([]*domain.Lead, error) {
	leads, err := s.leadRepository.ListLeadsByCampaign(ctx, campaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao listar leads")
		return nil, domain.NewStoreError(err, "Falha ao listar leads")
	}

	return leads, nil
}

func (s *Service) CreateLead(ctx context.Context, req *domain.CreateLeadRequest) (*domain.Lead, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "O nome do lead é obrigatório")
	}

	if strings.TrimSpace(req.CampaignID) == "" {
		return nil, domain.NewDashboardError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "A campanha do lead é obrigatória")
	}

	status := domain.StageContactoInicial
	if req.Status != "" {
		parsed, err := domain.ParseFunnelStage(req.Status)
		if err != nil {
			return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
		}
		status = parsed
	}

	id, err := s.leadRepository.CreateLead(ctx, &domain.Lead{
		CampaignID: req.CampaignID,
		Name:       name,
		Status:     status,
	})
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", req.CampaignID).Error("Erro ao criar lead")
		return nil, domain.NewStoreError(err, "Falha ao criar lead")
	}

	return s.reloadLead(ctx, id)
}

func (s *Service) UpdateLeadStatus(ctx context.Context, leadID string, status string) (*domain.Lead, error) {
	parsed, err := domain.ParseFunnelStage(status)
	if err != nil {
		return nil, domain.NewDashboardError(err, apiErrors.ErrInvalidFormat, err.Error())
	}

	if err := s.leadRepository.UpdateLeadStatus(ctx, leadID, parsed); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(leadID, "Lead não encontrado")
		}

		logrus.WithError(err).WithField("lead_id", leadID).Error("Erro ao atualizar status do lead")
		return nil, domain.NewStoreError(err, "Falha ao atualizar status do lead")
	}

	return s.reloadLead(ctx, leadID)
}

func (s *Service) reloadCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.GetCampaignByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", id).Error("Erro ao buscar campanha")
		return nil, domain.NewStoreError(err, "Falha ao buscar campanha")
	}

	if campaign == nil {
		return nil, domain.NewNotFoundError(id, "Campanha não encontrada")
	}

	return campaign, nil
}

func (s *Service) reloadLead(ctx context.Context, id string) (*domain.Lead, error) {
	lead, err := s.leadRepository.GetLeadByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("lead_id", id).Error("Erro ao buscar lead")
		return nil, domain.NewStoreError(err, "Falha ao buscar lead")
	}

	if lead == nil {
		return nil, domain.NewNotFoundError(id, "Lead não encontrado")
	}

	return lead, nil
}
