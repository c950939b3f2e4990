package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtl-labs/dashboard-api/internal/domain"
)

func TestLeadRepository_ListLeadsByCampaign(t *testing.T) {
	conn, mock, db := setupConn(t)
	defer db.Close()

	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM leads WHERE campaign_id = $1 ORDER BY created_at DESC")).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "campaign_id", "name", "status", "created_at", "updated_at"}).
			AddRow("l1", "c1", "Ana", "registrado", now, now))

	leads, err := NewLeadRepository(conn).ListLeadsByCampaign(context.Background(), "c1")
	require.NoError(t, err)

	require.Len(t, leads, 1)
	assert.Equal(t, domain.StageRegistrado, leads[0].Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepository_UpdateLeadStatus(t *testing.T) {
	conn, mock, db := setupConn(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("suscrito", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewLeadRepository(conn).UpdateLeadStatus(context.Background(), "missing", domain.StageSuscrito)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
