package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mtl-labs/dashboard-api/infrastructure/database/postgres"
	"github.com/mtl-labs/dashboard-api/internal/domain"
)

const (
	campaignsTable   = "campaigns"
	campaignsColumns = "id, name, source, start_date, end_date, cost, contacto_inicial, info_enviada, contacto_personal, registrado, suscrito, created_at, updated_at"
)

type CampaignRepository interface {
	ListCampaigns(ctx context.Context) ([]*domain.Campaign, error)
	GetCampaignByID(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) (string, error)
	UpdateStageCounter(ctx context.Context, id string, stage domain.FunnelStage, value int64) error
}

type campaignRepository struct {
	conn postgres.Conn
}

func NewCampaignRepository(conn postgres.Conn) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	campaignsSQL, campaignsArgs, err := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, campaignsSQL, campaignsArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.deserializeCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, id string) (*domain.Campaign, error) {
	campaignSQL, campaignArgs, err := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	campaign, err := r.deserializeCampaign(r.conn.QueryRowContext(ctx, campaignSQL, campaignArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get campaign %s: %w", id, err)
	}

	return campaign, nil
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	campaignSQL, campaignArgs, err := squirrel.
		Insert(campaignsTable).
		Columns("id", "name", "source", "start_date", "end_date", "cost",
			"contacto_inicial", "info_enviada", "contacto_personal", "registrado", "suscrito").
		Values(id, campaign.Name, campaign.Source, campaign.StartDate, campaign.EndDate, campaign.Cost,
			campaign.ContactoInicial, campaign.InfoEnviada, campaign.ContactoPersonal, campaign.Registrado, campaign.Suscrito).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, campaignSQL, campaignArgs...); err != nil {
		return "", fmt.Errorf("failed to insert campaign: %w", err)
	}

	return id, nil
}

// UpdateStageCounter grava o contador manual de uma etapa; a coluna tem o nome da etapa
func (r *campaignRepository) UpdateStageCounter(ctx context.Context, id string, stage domain.FunnelStage, value int64) error {
	if _, err := domain.ParseFunnelStage(string(stage)); err != nil {
		return err
	}

	return updateByID(ctx, r.conn, campaignsTable, id, map[string]any{string(stage): value}, true)
}

func (r *campaignRepository) deserializeCampaign(row scanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	if err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Source,
		&campaign.StartDate,
		&campaign.EndDate,
		&campaign.Cost,
		&campaign.ContactoInicial,
		&campaign.InfoEnviada,
		&campaign.ContactoPersonal,
		&campaign.Registrado,
		&campaign.Suscrito,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return campaign, nil
}
