// Package migration cria as tabelas usadas pela API e pelo importador
package migration

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id          BIGSERIAL PRIMARY KEY,
		document_id TEXT,
		name        TEXT,
		phone       TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id              BIGSERIAL PRIMARY KEY,
		original_name   TEXT NOT NULL,
		normalized_name TEXT NOT NULL,
		category        TEXT NOT NULL,
		brand           TEXT NOT NULL,
		extra_data      TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id              BIGSERIAL PRIMARY KEY,
		sale_date       DATE NOT NULL,
		document_type   TEXT,
		document_number TEXT,
		credit_term     TEXT,
		payment_method  TEXT,
		note            TEXT,
		currency        TEXT,
		exchange_rate   NUMERIC,
		salesperson     TEXT,
		client_id       BIGINT NOT NULL REFERENCES clients (id)
	)`,
	`CREATE TABLE IF NOT EXISTS sale_line_items (
		id           BIGSERIAL PRIMARY KEY,
		sale_id      BIGINT NOT NULL REFERENCES sales (id),
		product_id   BIGINT NOT NULL REFERENCES products (id),
		quantity     NUMERIC,
		amount       NUMERIC,
		amount_local NUMERIC
	)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_document_id ON clients (document_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_normalized_name ON products (normalized_name)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales (sale_date DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_line_items_sale_id ON sale_line_items (sale_id)`,
}

// EnsureSchema cria tabelas e índices que ainda não existem. Não altera tabelas existentes.
func EnsureSchema(ctx context.Context, db postgres.Queryer) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar schema (passo %d): %w", i+1, err)
		}
	}

	logrus.Debugf("Schema verificado: %d comandos aplicados", len(statements))

	return nil
}
