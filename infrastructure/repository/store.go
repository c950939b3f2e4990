package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mtl-labs/dashboard-api/infrastructure/database/postgres"
	"github.com/mtl-labs/dashboard-api/internal/domain"
	"github.com/mtl-labs/dashboard-api/pkg/utils"
)

// updateByID aplica uma alteração parcial. Retorna domain.ErrNotFound quando nenhuma linha foi afetada.
func updateByID(ctx context.Context, q postgres.Queryer, table, id string, changes map[string]any, touch bool) error {
	queryBuilder := squirrel.
		Update(table).
		SetMap(changes).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if touch {
		queryBuilder = queryBuilder.Set("updated_at", squirrel.Expr("NOW()"))
	}

	return execAffectingOne(ctx, q, queryBuilder, table, id)
}

func deleteByID(ctx context.Context, q postgres.Queryer, table, id string) error {
	queryBuilder := squirrel.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	return execAffectingOne(ctx, q, queryBuilder, table, id)
}

func execAffectingOne(ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer, table, id string) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query on %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows on %s: %w", table, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}

	return nil
}

func newID() (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id, nil
}

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}
