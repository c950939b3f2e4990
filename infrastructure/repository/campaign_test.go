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

func TestCampaignRepository_GetCampaignByID(t *testing.T) {
	conn, mock, db := setupConn(t)
	defer db.Close()

	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns WHERE id = $1")).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "source", "start_date", "end_date", "cost", "contacto_inicial", "info_enviada", "contacto_personal", "registrado", "suscrito", "created_at", "updated_at"}).
			AddRow("c1", "Verano", "instagram", "2024-01-01", "2024-01-31", 15000.5, 40, 30, 12, 6, 3, now, now))

	campaign, err := NewCampaignRepository(conn).GetCampaignByID(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, domain.SourceInstagram, campaign.Source)
	assert.Equal(t, 15000.5, campaign.Cost)
	assert.Equal(t, int64(3), campaign.StageCount(domain.StageSuscrito))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_UpdateStageCounter(t *testing.T) {
	conn, mock, db := setupConn(t)
	defer db.Close()

	repo := NewCampaignRepository(conn)

	t.Run("atualiza a coluna da etapa", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns SET registrado = $1, updated_at = NOW() WHERE id = $2")).
			WithArgs(int64(7), "c1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStageCounter(context.Background(), "c1", domain.StageRegistrado, 7))
	})

	t.Run("etapa desconhecida não acessa o banco", func(t *testing.T) {
		err := repo.UpdateStageCounter(context.Background(), "c1", domain.FunnelStage("cost"), 7)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
