package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	userKey
)

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func UserFrom(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok && u != nil
}

// UserLoader is the part of the users repository the resolver needs.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Resolver turns a raw credential into request identity.
type Resolver struct {
	codec *TokenCodec
	users UserLoader
}

func NewResolver(codec *TokenCodec, users UserLoader) *Resolver {
	return &Resolver{codec: codec, users: users}
}

// Resolve attaches identity to ctx.
//
// An empty credential leaves ctx anonymous. An invalid credential fails with
// common.ErrInvalidCredential. A valid credential whose user no longer exists
// sets only the user id; guards treat that as an error.
func (r *Resolver) Resolve(ctx context.Context, credential string) (context.Context, error) {
	if credential == "" {
		return ctx, nil
	}

	userID, err := r.codec.Verify(credential)
	if err != nil {
		return ctx, err
	}
	ctx = WithUserID(ctx, userID)

	u, err := r.users.GetByID(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return ctx, nil
	}
	if err != nil {
		return ctx, fmt.Errorf("%w: load user: %v", common.ErrorInternal, err)
	}

	return WithUser(ctx, &models.User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
	}), nil
}
