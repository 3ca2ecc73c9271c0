package orders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	query := `
		INSERT INTO orders (user_id, total, currency, charge_id, idempotency_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		order.UserID, order.Total, order.Currency, order.ChargeID, order.IdempotencyKey).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, dbx.Classify(err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, source_item_id, title, description, image, large_image, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	for i := range order.Items {
		oi := &order.Items[i]
		err := r.db.QueryRowContext(ctx, itemQuery,
			order.ID, nullable(oi.SourceItemID), oi.Title, oi.Description, oi.Image, oi.LargeImage, oi.Price, oi.Quantity).
			Scan(&oi.ID)
		if err != nil {
			return nil, dbx.Classify(err)
		}
	}
	return order, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := `
		SELECT id, user_id, total, currency, charge_id, idempotency_key, created_at
		FROM orders
		WHERE id = $1
	`
	o := &models.Order{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&o.ID, &o.UserID, &o.Total, &o.Currency, &o.ChargeID, &o.IdempotencyKey, &o.CreatedAt)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	if o.Items, err = r.loadItems(ctx, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	query := `
		SELECT id, user_id, total, currency, charge_id, idempotency_key, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dbx.Classify(err)
	}

	var result []*models.Order
	for rows.Next() {
		o := &models.Order{}
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.Currency, &o.ChargeID, &o.IdempotencyKey, &o.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("db error: %w", err)
	}
	rows.Close()

	for _, o := range result {
		if o.Items, err = r.loadItems(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	query := `
		SELECT id, source_item_id, title, description, image, large_image, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var (
			oi     models.OrderItem
			source sql.NullString
		)
		if err := rows.Scan(&oi.ID, &source, &oi.Title, &oi.Description, &oi.Image, &oi.LargeImage, &oi.Price, &oi.Quantity); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		oi.SourceItemID = source.String
		items = append(items, oi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
