// Package payment abstracts the external payment gateway used at checkout.
package payment

import (
	"context"
	"errors"
)

// ErrDeclined is returned when the gateway answered but did not approve the charge.
var ErrDeclined = errors.New("payment declined")

// ErrUnsupportedCurrency is returned for a currency the adapter cannot charge in.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ChargeRequest describes one charge. Amount is in minor currency units;
// IdempotencyKey is forwarded so the provider can tie the charge to the
// reservation that triggered it.
type ChargeRequest struct {
	Amount         int64
	Currency       string
	Token          string
	IdempotencyKey string
	Description    string
	PayerEmail     string
}

// Charge is an approved charge as reported by the gateway.
type Charge struct {
	ID     string
	Amount int64
}

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Charge, error)
}
