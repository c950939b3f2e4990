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
	clientEvolutionTable   = "client_evolution"
	clientEvolutionColumns = "id, month, month_text, active_clients, trial_clients, paid_clients, expenses, income, net_income, profit_per_partner"
)

type ClientEvolutionRepository interface {
	ListEvolution(ctx context.Context) ([]*domain.ClientEvolutionRow, error)
	GetEvolutionByID(ctx context.Context, id string) (*domain.ClientEvolutionRow, error)
	CreateEvolution(ctx context.Context, row *domain.ClientEvolutionRow) (string, error)
	UpdateEvolution(ctx context.Context, id string, changes map[string]any) error
}

type clientEvolutionRepository struct {
	conn postgres.Conn
}

func NewClientEvolutionRepository(conn postgres.Conn) ClientEvolutionRepository {
	return &clientEvolutionRepository{
		conn: conn,
	}
}

func (r *clientEvolutionRepository) ListEvolution(ctx context.Context) ([]*domain.ClientEvolutionRow, error) {
	evolutionSQL, evolutionArgs, err := squirrel.
		Select(clientEvolutionColumns).
		From(clientEvolutionTable).
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, evolutionSQL, evolutionArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list client evolution: %w", err)
	}
	defer rows.Close()

	evolution := make([]*domain.ClientEvolutionRow, 0)
	for rows.Next() {
		row, err := r.deserializeEvolution(rows)
		if err != nil {
			return nil, err
		}
		evolution = append(evolution, row)
	}

	return evolution, rows.Err()
}

func (r *clientEvolutionRepository) GetEvolutionByID(ctx context.Context, id string) (*domain.ClientEvolutionRow, error) {
	evolutionSQL, evolutionArgs, err := squirrel.
		Select(clientEvolutionColumns).
		From(clientEvolutionTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row, err := r.deserializeEvolution(r.conn.QueryRowContext(ctx, evolutionSQL, evolutionArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get client evolution %s: %w", id, err)
	}

	return row, nil
}

// CreateEvolution verifica o month_text e insere na mesma transação.
// Um mês repetido retorna domain.ErrDuplicateMonth sem tocar no registro existente.
func (r *clientEvolutionRepository) CreateEvolution(ctx context.Context, row *domain.ClientEvolutionRow) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		existingSQL, existingArgs, err := squirrel.
			Select("id").
			From(clientEvolutionTable).
			Where(squirrel.Eq{"month_text": row.MonthText}).
			Limit(1).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		var existingID string
		err = tx.QueryRowContext(ctx, existingSQL, existingArgs...).Scan(&existingID)
		switch {
		case err == nil:
			return fmt.Errorf("%s (%s): %w", row.MonthText, existingID, domain.ErrDuplicateMonth)
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("failed to check month %s: %w", row.MonthText, err)
		}

		insertSQL, insertArgs, err := squirrel.
			Insert(clientEvolutionTable).
			Columns("id", "month", "month_text", "active_clients", "trial_clients", "paid_clients",
				"expenses", "income", "net_income", "profit_per_partner").
			Values(id, row.Month, row.MonthText, row.ActiveClients, row.TrialClients, row.PaidClients,
				row.Expenses, row.Income, row.NetIncome, row.ProfitPerPartner).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			if postgres.IsUniqueViolation(err) {
				return fmt.Errorf("%s: %w", row.MonthText, domain.ErrDuplicateMonth)
			}
			return fmt.Errorf("failed to insert client evolution: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// UpdateEvolution grava somente as colunas recebidas
func (r *clientEvolutionRepository) UpdateEvolution(ctx context.Context, id string, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}

	err := updateByID(ctx, r.conn, clientEvolutionTable, id, changes, false)
	if err != nil && postgres.IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w", id, domain.ErrDuplicateMonth)
	}

	return err
}

func (r *clientEvolutionRepository) deserializeEvolution(row scanner) (*domain.ClientEvolutionRow, error) {
	evolution := &domain.ClientEvolutionRow{}

	if err := row.Scan(
		&evolution.ID,
		&evolution.Month,
		&evolution.MonthText,
		&evolution.ActiveClients,
		&evolution.TrialClients,
		&evolution.PaidClients,
		&evolution.Expenses,
		&evolution.Income,
		&evolution.NetIncome,
		&evolution.ProfitPerPartner,
	); err != nil {
		return nil, err
	}

	return evolution, nil
}
