package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeita tanto por *sql.DB quanto por *sql.Tx, permitindo que os
// repositórios rodem dentro ou fora de uma transação
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
