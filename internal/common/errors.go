// Package common defines the sentinel error taxonomy and small helpers shared
// by the storefront server, its transport and the CLI client. Callers should
// match errors with errors.Is; services wrap these values with context.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrConflict   = errors.New("conflict")

	// Service-level errors.
	ErrorInternal      = errors.New("internal error")
	ErrValidation      = errors.New("validation error")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")

	// Credential errors.
	ErrInvalidCredential     = errors.New("invalid credential")
	ErrInvalidOrExpiredToken = errors.New("reset token is invalid or expired")

	// Checkout errors.
	ErrPaymentFailed           = errors.New("payment failed")
	ErrPostChargeInconsistency = errors.New("post-charge inconsistency")
	ErrEmptyCart               = fmt.Errorf("%w: cart is empty", ErrValidation)
)

// Validationf builds an ErrValidation-wrapped error with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
