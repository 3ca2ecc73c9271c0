package cartitems

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) Upsert(ctx context.Context, userID, itemID string) (*models.CartItem, error) {
	query := `
		INSERT INTO cart_items (user_id, item_id, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET quantity = cart_items.quantity + 1
		RETURNING id, user_id, item_id, quantity, created_at
	`
	ci := &models.CartItem{}
	err := r.db.QueryRowContext(ctx, query, userID, itemID).
		Scan(&ci.ID, &ci.UserID, &ci.ItemID, &ci.Quantity, &ci.CreatedAt)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return ci, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	query := `
		SELECT id, user_id, item_id, quantity, created_at
		FROM cart_items
		WHERE id = $1
	`
	ci := &models.CartItem{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&ci.ID, &ci.UserID, &ci.ItemID, &ci.Quantity, &ci.CreatedAt)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return ci, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
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

func (r *PostgresRepository) Snapshot(ctx context.Context, userID string) ([]models.CartLine, error) {
	query := `
		SELECT c.id, c.quantity,
		       i.id, i.owner_id, i.title, i.description, i.image, i.large_image, i.price, i.created_at
		FROM cart_items c
		JOIN items i ON i.id = c.item_id
		WHERE c.user_id = $1
		ORDER BY c.created_at, c.id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	var lines []models.CartLine
	for rows.Next() {
		var l models.CartLine
		if err := rows.Scan(&l.CartItemID, &l.Quantity,
			&l.Item.ID, &l.Item.OwnerID, &l.Item.Title, &l.Item.Description,
			&l.Item.Image, &l.Item.LargeImage, &l.Item.Price, &l.Item.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return lines, nil
}

func (r *PostgresRepository) ConsumeSnapshot(ctx context.Context, lines []models.CartLine) error {
	for _, l := range lines {
		var (
			userID, itemID string
			quantity       int64
		)
		err := r.db.QueryRowContext(ctx,
			`DELETE FROM cart_items WHERE id = $1 RETURNING user_id, item_id, quantity`, l.CartItemID).
			Scan(&userID, &itemID, &quantity)
		if errors.Is(err, sql.ErrNoRows) {
			// removed by the user while checkout was running
			continue
		}
		if err != nil {
			return dbx.Classify(err)
		}

		rest := quantity - l.Quantity
		if rest <= 0 {
			continue
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO cart_items (user_id, item_id, quantity)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, item_id)
			DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		`, userID, itemID, rest)
		if err != nil {
			return dbx.Classify(err)
		}
	}
	return nil
}
