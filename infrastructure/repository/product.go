package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func (r *salesRepository) FindProductByNormalizedName(ctx context.Context, normalizedName string) (*domain.Product, error) {
	return r.getProduct(ctx, squirrel.Eq{"normalized_name": normalizedName})
}

func (r *salesRepository) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	return r.getProduct(ctx, squirrel.Eq{"id": productID})
}

func (r *salesRepository) getProduct(ctx context.Context, whereClause squirrel.Eq) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("id", "original_name", "normalized_name", "category", "brand", "extra_data").
		From(productsTable).
		Where(whereClause).
		OrderBy("id ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.Product{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&product.ID,
		&product.OriginalName,
		&product.NormalizedName,
		&product.Category,
		&product.Brand,
		&product.ExtraData,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return product, nil
}

func (r *salesRepository) InsertProduct(ctx context.Context, product *domain.Product) (int64, error) {
	query, args, err := squirrel.
		Insert(productsTable).
		Columns("original_name", "normalized_name", "category", "brand", "extra_data").
		Values(product.OriginalName, product.NormalizedName, product.Category, product.Brand, product.ExtraData).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir produto %q: %w", product.NormalizedName, err)
	}

	return id, nil
}
