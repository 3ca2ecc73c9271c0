// Package charges provides the durable checkout reservation store. A row is
// claimed before the payment gateway is called and moves through
// pending -> completed | failed | inconsistent.
package charges

import (
	"context"
	"time"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type Repository interface {
	// Reserve inserts a pending row. It returns false, without error, when
	// a row with the same key already exists.
	Reserve(ctx context.Context, charge *models.PendingCharge) (bool, error)
	Get(ctx context.Context, key string) (*models.PendingCharge, error)
	// Retry moves a failed row back to pending. It returns false when the
	// row is in any other state.
	Retry(ctx context.Context, key string, amount int64) (bool, error)
	MarkFailed(ctx context.Context, key, reason string) error
	// MarkCompleted and MarkInconsistent only transition rows that are still
	// pending; otherwise they return common.ErrConflict.
	MarkCompleted(ctx context.Context, key, chargeID string, amountCharged int64, orderID string) error
	MarkInconsistent(ctx context.Context, key, chargeID string, amountCharged int64, reason string) error
	ListStale(ctx context.Context, olderThan time.Time) ([]*models.PendingCharge, error)
}
