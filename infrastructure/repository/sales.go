// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=sales.go -destination=mocks/mock_sales.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	clientsTable   = "clients"
	productsTable  = "products"
	salesTable     = "sales"
	lineItemsTable = "sale_line_items"
)

type SalesRepository interface {
	// WithTransaction executa fn com um repositório ligado a uma única transação.
	// Não deve ser chamado de dentro de outra transação.
	WithTransaction(ctx context.Context, fn func(repo SalesRepository) error) error

	FindClientByDocument(ctx context.Context, documentID string) (*domain.Client, error)
	FindClientWithoutDocument(ctx context.Context) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)
	InsertClient(ctx context.Context, client *domain.Client) (int64, error)

	FindProductByNormalizedName(ctx context.Context, normalizedName string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	InsertProduct(ctx context.Context, product *domain.Product) (int64, error)

	GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)
	InsertSale(ctx context.Context, sale *domain.Sale) (int64, error)
	UpdateSale(ctx context.Context, sale *domain.Sale) error
	DeleteSale(ctx context.Context, saleID int64) (int64, error)

	GetLineItemBySaleID(ctx context.Context, saleID int64) (*domain.SaleLineItem, error)
	InsertLineItem(ctx context.Context, item *domain.SaleLineItem) (int64, error)
	UpdateLineItem(ctx context.Context, item *domain.SaleLineItem) error
	DeleteLineItemsBySaleID(ctx context.Context, saleID int64) error

	ListSales(ctx context.Context, search string) ([]*domain.SaleRecord, error)
	SalespersonTotals(ctx context.Context) ([]*domain.SalespersonTotal, error)
	CategoryReport(ctx context.Context) ([]*domain.CategoryBrandSummary, error)
}

type salesRepository struct {
	conn *postgres.Connection
	db   postgres.Queryer
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
		db:   conn,
	}
}

func (r *salesRepository) WithTransaction(ctx context.Context, fn func(repo SalesRepository) error) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return fn(&salesRepository{conn: r.conn, db: tx})
	})
}

func (r *salesRepository) GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "sale_date", "document_type", "document_number", "credit_term", "payment_method",
			"note", "currency", "exchange_rate", "salesperson", "client_id").
		From(salesTable).
		Where(squirrel.Eq{"id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale := &domain.Sale{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&sale.ID,
		&sale.Date,
		&sale.DocumentType,
		&sale.DocumentNumber,
		&sale.CreditTerm,
		&sale.PaymentMethod,
		&sale.Note,
		&sale.Currency,
		&sale.ExchangeRate,
		&sale.Salesperson,
		&sale.ClientID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar venda %d: %w", saleID, err)
	}

	return sale, nil
}

func (r *salesRepository) InsertSale(ctx context.Context, sale *domain.Sale) (int64, error) {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("sale_date", "document_type", "document_number", "credit_term", "payment_method",
			"note", "currency", "exchange_rate", "salesperson", "client_id").
		Values(sale.Date, sale.DocumentType, sale.DocumentNumber, sale.CreditTerm, sale.PaymentMethod,
			sale.Note, sale.Currency, sale.ExchangeRate, sale.Salesperson, sale.ClientID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return id, nil
}

// UpdateSale atualiza apenas os campos editáveis pela tela de vendas
func (r *salesRepository) UpdateSale(ctx context.Context, sale *domain.Sale) error {
	query, args, err := squirrel.
		Update(salesTable).
		Set("sale_date", sale.Date).
		Set("document_type", sale.DocumentType).
		Set("document_number", sale.DocumentNumber).
		Set("payment_method", sale.PaymentMethod).
		Set("salesperson", sale.Salesperson).
		Set("client_id", sale.ClientID).
		Where(squirrel.Eq{"id": sale.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar venda %d: %w", sale.ID, err)
	}

	return nil
}

// DeleteSale remove o cabeçalho da venda e retorna quantas linhas foram afetadas
func (r *salesRepository) DeleteSale(ctx context.Context, saleID int64) (int64, error) {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao excluir venda %d: %w", saleID, err)
	}

	return result.RowsAffected()
}

func (r *salesRepository) GetLineItemBySaleID(ctx context.Context, saleID int64) (*domain.SaleLineItem, error) {
	query, args, err := squirrel.
		Select("id", "sale_id", "product_id", "quantity", "amount", "amount_local").
		From(lineItemsTable).
		Where(squirrel.Eq{"sale_id": saleID}).
		OrderBy("id ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item := &domain.SaleLineItem{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.SaleID,
		&item.ProductID,
		&item.Quantity,
		&item.Amount,
		&item.AmountLocal,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar detalhe da venda %d: %w", saleID, err)
	}

	return item, nil
}

func (r *salesRepository) InsertLineItem(ctx context.Context, item *domain.SaleLineItem) (int64, error) {
	query, args, err := squirrel.
		Insert(lineItemsTable).
		Columns("sale_id", "product_id", "quantity", "amount", "amount_local").
		Values(item.SaleID, item.ProductID, item.Quantity, item.Amount, item.AmountLocal).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir detalhe da venda %d: %w", item.SaleID, err)
	}

	return id, nil
}

func (r *salesRepository) UpdateLineItem(ctx context.Context, item *domain.SaleLineItem) error {
	query, args, err := squirrel.
		Update(lineItemsTable).
		Set("product_id", item.ProductID).
		Set("quantity", item.Quantity).
		Set("amount_local", item.AmountLocal).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar detalhe %d: %w", item.ID, err)
	}

	return nil
}

func (r *salesRepository) DeleteLineItemsBySaleID(ctx context.Context, saleID int64) error {
	query, args, err := squirrel.
		Delete(lineItemsTable).
		Where(squirrel.Eq{"sale_id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao excluir detalhes da venda %d: %w", saleID, err)
	}

	return nil
}

// ListSales lista as vendas com cliente e produto, das mais recentes para as
// mais antigas. search filtra sem diferenciar maiúsculas em cliente, documento
// do cliente, artigo, documento, número do documento e vendedor.
func (r *salesRepository) ListSales(ctx context.Context, search string) ([]*domain.SaleRecord, error) {
	queryBuilder := squirrel.
		Select(
			"v.id",
			"v.sale_date",
			"v.document_type",
			"v.document_number",
			"v.payment_method",
			"v.salesperson",
			"c.document_id",
			"c.name",
			"c.phone",
			"p.original_name",
			"li.quantity",
			"li.amount_local",
		).
		From("sales v").
		Join("clients c ON v.client_id = c.id").
		Join("sale_line_items li ON v.id = li.sale_id").
		Join("products p ON li.product_id = p.id").
		OrderBy("v.sale_date DESC", "v.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if term := strings.TrimSpace(search); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"c.name": pattern},
			squirrel.ILike{"c.document_id": pattern},
			squirrel.ILike{"p.original_name": pattern},
			squirrel.ILike{"v.document_type": pattern},
			squirrel.ILike{"v.document_number": pattern},
			squirrel.ILike{"v.salesperson": pattern},
		})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		record, err := scanSaleRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func scanSaleRecord(rows *sql.Rows) (*domain.SaleRecord, error) {
	record := &domain.SaleRecord{}
	var saleDate sql.NullTime

	err := rows.Scan(
		&record.ID,
		&saleDate,
		&record.DocumentType,
		&record.DocumentNumber,
		&record.PaymentMethod,
		&record.Salesperson,
		&record.ClientDocument,
		&record.ClientName,
		&record.ClientPhone,
		&record.Article,
		&record.Quantity,
		&record.AmountLocal,
	)
	if err != nil {
		return nil, err
	}

	if saleDate.Valid {
		record.Date = saleDate.Time.Format(domain.DateLayout)
	}

	return record, nil
}

// escapeLike escapa os curingas do LIKE para que o termo seja buscado literalmente
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
