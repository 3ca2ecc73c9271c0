// Package reconcile records checkout incidents where money may have moved
// without a durable order, so an operator can settle them later.
package reconcile

import (
	"context"
	"time"

	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Incident describes one charge that needs manual reconciliation.
type Incident struct {
	IdempotencyKey string    `json:"idempotency_key"`
	UserID         string    `json:"user_id"`
	ChargeID       string    `json:"charge_id,omitempty"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	Reason         string    `json:"reason"`
	DetectedAt     time.Time `json:"detected_at"`
}

type Recorder interface {
	Record(ctx context.Context, inc Incident) error
}

// LogRecorder writes incidents to the error log. It is used when no object
// storage bucket is configured.
type LogRecorder struct {
	logger logging.Logger
}

func NewLogRecorder(logger logging.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(ctx context.Context, inc Incident) error {
	r.logger.Error(ctx, "reconciliation incident",
		"idempotency_key", inc.IdempotencyKey,
		"user_id", inc.UserID,
		"charge_id", inc.ChargeID,
		"amount", inc.Amount,
		"currency", inc.Currency,
		"reason", inc.Reason,
	)
	return nil
}
