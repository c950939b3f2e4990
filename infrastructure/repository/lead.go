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
	leadsTable   = "leads"
	leadsColumns = "id, campaign_id, name, status, created_at, updated_at"
)

type LeadRepository interface {
	ListLeadsByCampaign(ctx context.Context, campaignID string) ([]*domain.Lead, error)
	GetLeadByID(ctx context.Context, id string) (*domain.Lead, error)
	CreateLead(ctx context.Context, lead *domain.Lead) (string, error)
	UpdateLeadStatus(ctx context.Context, id string, status domain.FunnelStage) error
}

type leadRepository struct {
	conn postgres.Conn
}

func NewLeadRepository(conn postgres.Conn) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

func (r *leadRepository) ListLeadsByCampaign(ctx context.Context, campaignID string) ([]*domain.Lead, error) {
	leadsSQL, leadsArgs, err := squirrel.
		Select(leadsColumns).
		From(leadsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, leadsSQL, leadsArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := r.deserializeLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *leadRepository) GetLeadByID(ctx context.Context, id string) (*domain.Lead, error) {
	leadSQL, leadArgs, err := squirrel.
		Select(leadsColumns).
		From(leadsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	lead, err := r.deserializeLead(r.conn.QueryRowContext(ctx, leadSQL, leadArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lead %s: %w", id, err)
	}

	return lead, nil
}

func (r *leadRepository) CreateLead(ctx context.Context, lead *domain.Lead) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	leadSQL, leadArgs, err := squirrel.
		Insert(leadsTable).
		Columns("id", "campaign_id", "name", "status").
		Values(id, lead.CampaignID, lead.Name, lead.Status).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, leadSQL, leadArgs...); err != nil {
		return "", fmt.Errorf("failed to insert lead: %w", err)
	}

	return id, nil
}

func (r *leadRepository) UpdateLeadStatus(ctx context.Context, id string, status domain.FunnelStage) error {
	return updateByID(ctx, r.conn, leadsTable, id, map[string]any{"status": status}, true)
}

func (r *leadRepository) deserializeLead(row scanner) (*domain.Lead, error) {
	lead := &domain.Lead{}

	if err := row.Scan(
		&lead.ID,
		&lead.CampaignID,
		&lead.Name,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return lead, nil
}
