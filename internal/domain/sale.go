package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout é o formato de data trocado com a camada de apresentação
const DateLayout = "2006-01-02"

// Sale é o cabeçalho de uma transação de venda
type Sale struct {
	ID             int64
	Date           time.Time
	DocumentType   *string
	DocumentNumber *string
	CreditTerm     *string
	PaymentMethod  *string
	Note           *string
	Currency       *string
	ExchangeRate   decimal.NullDecimal
	Salesperson    *string
	ClientID       int64
}

// SaleLineItem é uma linha de produto vinculada a uma venda
type SaleLineItem struct {
	ID          int64
	SaleID      int64
	ProductID   int64
	Quantity    decimal.NullDecimal
	Amount      decimal.NullDecimal
	AmountLocal decimal.NullDecimal
}

// SaleRecord é a linha da listagem de vendas (venda + cliente + detalhe + produto)
type SaleRecord struct {
	ID             int64               `json:"id_venta"`
	Date           string              `json:"fecha"`
	DocumentType   *string             `json:"documento"`
	DocumentNumber *string             `json:"nro_doc"`
	PaymentMethod  *string             `json:"medio_pago"`
	Salesperson    *string             `json:"vendedor"`
	ClientDocument *string             `json:"doc_cliente"`
	ClientName     *string             `json:"cliente"`
	ClientPhone    *string             `json:"telefono"`
	Article        string              `json:"articulos"`
	Quantity       decimal.NullDecimal `json:"cantidad"`
	AmountLocal    decimal.NullDecimal `json:"importe_soles"`
}

// SaleRequest é o corpo recebido para criar ou editar uma venda
type SaleRequest struct {
	Date           string           `json:"fecha"`
	DocumentType   *string          `json:"documento"`
	DocumentNumber *string          `json:"nro_doc"`
	PaymentMethod  *string          `json:"medio_pago"`
	ClientDocument *string          `json:"doc_cliente"`
	ClientName     string           `json:"cliente"`
	ClientPhone    *string          `json:"telefono"`
	Article        string           `json:"articulos"`
	Quantity       *decimal.Decimal `json:"cantidad"`
	AmountLocal    *decimal.Decimal `json:"importe_soles"`
	Salesperson    *string          `json:"vendedor"`
}

// OperationResponse é a resposta das operações de escrita
type OperationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}
