// Package orders provides the repository for immutable orders and their
// denormalized order items.
package orders

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type Repository interface {
	// Create inserts the order and all of its items. Callers run it inside
	// a transaction together with the cart cleanup.
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Order, error)
}
