package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func (r *salesRepository) FindClientByDocument(ctx context.Context, documentID string) (*domain.Client, error) {
	return r.getClient(ctx, squirrel.Eq{"document_id": documentID})
}

// FindClientWithoutDocument retorna o cliente mais antigo sem documento
func (r *salesRepository) FindClientWithoutDocument(ctx context.Context) (*domain.Client, error) {
	return r.getClient(ctx, squirrel.Eq{"document_id": nil})
}

func (r *salesRepository) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	return r.getClient(ctx, squirrel.Eq{"id": clientID})
}

func (r *salesRepository) getClient(ctx context.Context, whereClause squirrel.Eq) (*domain.Client, error) {
	query, args, err := squirrel.
		Select("id", "document_id", "name", "phone").
		From(clientsTable).
		Where(whereClause).
		OrderBy("id ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client := &domain.Client{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.DocumentID,
		&client.Name,
		&client.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return client, nil
}

func (r *salesRepository) InsertClient(ctx context.Context, client *domain.Client) (int64, error) {
	query, args, err := squirrel.
		Insert(clientsTable).
		Columns("document_id", "name", "phone").
		Values(client.DocumentID, client.Name, client.Phone).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir cliente: %w", err)
	}

	return id, nil
}
