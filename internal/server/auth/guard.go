package auth

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// RequireAuthenticated returns the caller's user id or common.ErrUnauthenticated.
func RequireAuthenticated(ctx context.Context) (string, error) {
	id, ok := UserIDFrom(ctx)
	if !ok {
		return "", common.ErrUnauthenticated
	}
	return id, nil
}

// CurrentUser returns the caller's user record. A verified credential whose
// user row is gone yields common.ErrInvalidCredential.
func CurrentUser(ctx context.Context) (*models.User, error) {
	if _, err := RequireAuthenticated(ctx); err != nil {
		return nil, err
	}
	u, ok := UserFrom(ctx)
	if !ok {
		return nil, common.ErrInvalidCredential
	}
	return u, nil
}

// RequireAnyPermission passes when user holds at least one of required.
func RequireAnyPermission(user *models.User, required ...models.Permission) error {
	if user == nil || !user.Permissions.HasAny(required...) {
		return fmt.Errorf("%w: requires one of %v", common.ErrForbidden, required)
	}
	return nil
}

// RequireOwnerOrPermission passes when user owns the resource or holds at
// least one of required.
func RequireOwnerOrPermission(user *models.User, ownerID string, required ...models.Permission) error {
	if user != nil && user.ID == ownerID {
		return nil
	}
	return RequireAnyPermission(user, required...)
}
