package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// SalespersonTotals soma o valor em moeda local por vendedor, do maior para o menor
func (r *salesRepository) SalespersonTotals(ctx context.Context) ([]*domain.SalespersonTotal, error) {
	query, args, err := squirrel.
		Select("v.salesperson", "COALESCE(SUM(li.amount_local), 0) AS total").
		From("sales v").
		Join("sale_line_items li ON v.id = li.sale_id").
		GroupBy("v.salesperson").
		OrderBy("total DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totals := make([]*domain.SalespersonTotal, 0)
	for rows.Next() {
		item := &domain.SalespersonTotal{}
		if err := rows.Scan(&item.Salesperson, &item.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear total por vendedor: %w", err)
		}
		totals = append(totals, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// CategoryReport agrupa produtos e vendas por categoria e marca
func (r *salesRepository) CategoryReport(ctx context.Context) ([]*domain.CategoryBrandSummary, error) {
	query, args, err := squirrel.
		Select(
			"p.category",
			"p.brand",
			"COUNT(DISTINCT p.id)",
			"COUNT(li.id)",
			"COALESCE(SUM(li.amount_local), 0) AS total",
		).
		From("products p").
		LeftJoin("sale_line_items li ON li.product_id = p.id").
		GroupBy("p.category", "p.brand").
		OrderBy("p.category ASC", "total DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.CategoryBrandSummary, 0)
	for rows.Next() {
		item := &domain.CategoryBrandSummary{}
		if err := rows.Scan(&item.Category, &item.Brand, &item.ProductCount, &item.LineCount, &item.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo por categoria: %w", err)
		}
		summaries = append(summaries, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}
