// Package cartitems provides the cart repository: one row per (user, item)
// with an atomic increment-or-create and snapshot consumption for checkout.
package cartitems

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type Repository interface {
	// Upsert creates the (user, item) row with quantity 1 or increments the
	// existing one, in a single statement.
	Upsert(ctx context.Context, userID, itemID string) (*models.CartItem, error)
	GetByID(ctx context.Context, id string) (*models.CartItem, error)
	Delete(ctx context.Context, id string) error
	// Snapshot returns the user's cart joined with item data.
	Snapshot(ctx context.Context, userID string) ([]models.CartLine, error)
	// ConsumeSnapshot removes exactly the quantities captured in lines.
	// Quantity added after the snapshot was taken stays in the cart, moved
	// to a new row so the leftover cart never repeats a consumed snapshot.
	ConsumeSnapshot(ctx context.Context, lines []models.CartLine) error
}
