package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Connection{DB: db}, mock
}

func TestRunInTransaction_Commit(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sale_line_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.ExecContext(context.Background(), "DELETE FROM sale_line_items WHERE sale_id = $1", 1)
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	conn, mock := newMockConnection(t)
	failure := errors.New("falha no insert")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
