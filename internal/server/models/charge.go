package models

import "time"

// ChargeStatus is the state of a checkout reservation.
type ChargeStatus string

const (
	// ChargeStatusPending: reserved, gateway call in flight or not yet persisted.
	ChargeStatusPending ChargeStatus = "pending"
	// ChargeStatusFailed: the gateway refused; the same snapshot may retry.
	ChargeStatusFailed ChargeStatus = "failed"
	// ChargeStatusCompleted: order persisted and cart consumed.
	ChargeStatusCompleted ChargeStatus = "completed"
	// ChargeStatusInconsistent: money may have moved without a durable order.
	ChargeStatusInconsistent ChargeStatus = "inconsistent"
)

// PendingCharge is the durable reservation that makes checkout idempotent.
// IdempotencyKey is derived from the user and the cart snapshot.
type PendingCharge struct {
	IdempotencyKey string
	UserID         string
	Amount         int64
	Currency       string
	Status         ChargeStatus
	ChargeID       string
	AmountCharged  int64
	OrderID        string
	LastError      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
