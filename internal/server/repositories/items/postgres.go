package items

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	query := `
		INSERT INTO items (owner_id, title, description, image, large_image, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		item.OwnerID, item.Title, item.Description, item.Image, item.LargeImage, item.Price).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return item, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	query := `
		SELECT id, owner_id, title, description, image, large_image, price, created_at
		FROM items
		WHERE id = $1
	`
	item := &models.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.Image, &item.LargeImage, &item.Price, &item.CreatedAt)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return item, nil
}

// Delete removes the item; cart rows referencing it cascade, order items
// keep their copies.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return dbx.Classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
