package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/mtl-labs/dashboard-api/infrastructure/database/postgres"
)

func setupConn(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return postgres.FromDB(db), mock, db
}

const idLengthForTests = 12

func stringPtr(s string) *string {
	return &s
}
