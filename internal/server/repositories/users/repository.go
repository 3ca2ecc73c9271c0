// Package users provides the repository for user accounts, their permission
// sets and password reset tokens.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdatePermissions(ctx context.Context, id string, perms models.Permissions) (*models.User, error)
	// SetResetToken stores a token hash and expiry for the account with the
	// given email. Returns common.ErrorNotFound if there is no such account.
	SetResetToken(ctx context.Context, email, tokenHash string, expiry time.Time) error
	// ConsumeResetToken swaps the password hash and clears the token in one
	// statement, provided the token matches and has not expired at now.
	ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string, now time.Time) (*models.User, error)
}
