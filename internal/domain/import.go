package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportRow é uma linha da planilha histórica já convertida.
// Campos ausentes ou inválidos ficam nil.
type ImportRow struct {
	Line           int
	Date           *time.Time
	DocumentType   *string
	DocumentNumber *string
	CreditTerm     *string
	PaymentMethod  *string
	ClientDocument *string
	ClientName     *string
	ClientPhone    *string
	Note           *string
	Currency       *string
	Article        *string
	ExtraData      *string
	Quantity       *decimal.Decimal
	Amount         *decimal.Decimal
	ExchangeRate   *decimal.Decimal
	AmountLocal    *decimal.Decimal
	Salesperson    *string
}

// ImportResult resume uma execução da carga histórica
type ImportResult struct {
	RunID           string        `json:"run_id"`
	TotalRows       int           `json:"total_rows"`
	SkippedRows     int           `json:"skipped_rows"`
	ProcessedRows   int           `json:"processed_rows"`
	ClientsCreated  int           `json:"clients_created"`
	ProductsCreated int           `json:"products_created"`
	SalesCreated    int           `json:"sales_created"`
	DryRun          bool          `json:"dry_run"`
	Duration        time.Duration `json:"duration"`
}
