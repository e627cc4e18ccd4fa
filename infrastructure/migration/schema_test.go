package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range statements {
		mock.ExpectExec("CREATE (TABLE|INDEX) IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_StopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS clients").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS products").WillReturnError(errors.New("permissão negada"))

	err = EnsureSchema(context.Background(), db)

	assert.ErrorContains(t, err, "passo 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_NumericColumnsKeepImportedScale(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS clients`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS products`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`exchange_rate\s+NUMERIC,`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`quantity\s+NUMERIC,\s+amount\s+NUMERIC,\s+amount_local\s+NUMERIC\s*\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	for range statements[4:] {
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())

	for _, stmt := range statements {
		assert.NotRegexp(t, `NUMERIC\s*\(`, stmt)
	}
}
