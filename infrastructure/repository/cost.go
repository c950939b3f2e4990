package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mtl-labs/dashboard-api/infrastructure/database/postgres"
	"github.com/mtl-labs/dashboard-api/internal/domain"
)

const (
	costsTable   = "costs"
	costsColumns = "id, description, amount, frequency, start_date"
)

type CostRepository interface {
	ListCosts(ctx context.Context) ([]*domain.CostEntry, error)
	CreateCost(ctx context.Context, cost *domain.CostEntry) (string, error)
}

type costRepository struct {
	conn postgres.Conn
}

func NewCostRepository(conn postgres.Conn) CostRepository {
	return &costRepository{
		conn: conn,
	}
}

func (r *costRepository) ListCosts(ctx context.Context) ([]*domain.CostEntry, error) {
	costsSQL, costsArgs, err := squirrel.
		Select(costsColumns).
		From(costsTable).
		OrderBy("start_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, costsSQL, costsArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list costs: %w", err)
	}
	defer rows.Close()

	costs := make([]*domain.CostEntry, 0)
	for rows.Next() {
		cost := &domain.CostEntry{}
		if err := rows.Scan(
			&cost.ID,
			&cost.Description,
			&cost.Amount,
			&cost.Frequency,
			&cost.StartDate,
		); err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}

	return costs, rows.Err()
}

func (r *costRepository) CreateCost(ctx context.Context, cost *domain.CostEntry) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	costSQL, costArgs, err := squirrel.
		Insert(costsTable).
		Columns("id", "description", "amount", "frequency", "start_date").
		Values(id, cost.Description, cost.Amount, cost.Frequency, cost.StartDate).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, costSQL, costArgs...); err != nil {
		return "", fmt.Errorf("failed to insert cost: %w", err)
	}

	return id, nil
}
