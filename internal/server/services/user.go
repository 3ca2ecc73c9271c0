// Package services contains server-side business logic: account and session
// handling, password reset, catalog items, carts, checkout and orders.
// Services read caller identity from the request context populated by
// auth.Resolver and return errors from the common taxonomy.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/cryptox"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

const minPasswordLen = 8

// Session is a signed credential together with the user it was issued for.
type Session struct {
	Token string
	User  *models.User
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenCodec
	hashParams  cryptox.Params
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.TokenCodec, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		hashParams:  cryptox.DefaultParams,
		logger:      logger.With("module", "users"),
	}
}

// Signup creates an account with the default USER permission and signs the
// caller in. A taken email yields common.ErrConflict.
func (s *UserService) Signup(ctx context.Context, email, name, password string) (*Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.Validationf("name is required")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: cryptox.HashPassword(password, s.hashParams),
		Permissions:  models.Permissions{models.PermissionUser},
	})
	if errors.Is(err, common.ErrConflict) {
		return nil, fmt.Errorf("%w: email already registered", common.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: create user: %v", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "user signed up", "user_id", u.ID)
	return s.session(u)
}

// Signin checks credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Signin(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		// keep timing close to the found-user path
		_, _ = cryptox.VerifyPassword(password, dummyHash())
		return nil, common.ErrInvalidCredential
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load user: %v", common.ErrorInternal, err)
	}

	ok, err := cryptox.VerifyPassword(password, u.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "stored password hash is malformed", "user_id", u.ID, "error", err)
		return nil, common.ErrInvalidCredential
	}
	if !ok {
		return nil, common.ErrInvalidCredential
	}
	return s.session(u)
}

// Signout acknowledges the request. Sessions are stateless; the client
// discards its credential.
func (s *UserService) Signout(ctx context.Context) error {
	if id, ok := auth.UserIDFrom(ctx); ok {
		s.logger.Debug(ctx, "user signed out", "user_id", id)
	}
	return nil
}

// Me returns the caller, or nil for anonymous requests.
func (s *UserService) Me(ctx context.Context) (*models.User, error) {
	if _, ok := auth.UserIDFrom(ctx); !ok {
		return nil, nil
	}
	return auth.CurrentUser(ctx)
}

// UpdatePermissions replaces the permission set of userID. Requires ADMIN
// or PERMISSIONUPDATE.
func (s *UserService) UpdatePermissions(ctx context.Context, userID string, perms []models.Permission) (*models.User, error) {
	caller, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireAnyPermission(caller, models.PermissionAdmin, models.PermissionPermissionUpdate); err != nil {
		return nil, err
	}

	set := models.NormalizePermissions(perms)
	if len(set) == 0 {
		return nil, common.Validationf("permission set must not be empty")
	}
	for _, p := range set {
		if !p.Valid() {
			return nil, common.Validationf("unknown permission %q", p)
		}
	}

	u, err := s.repomanager.Users(s.db).UpdatePermissions(ctx, userID, set)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: update permissions: %v", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "permissions updated", "user_id", u.ID, "by", caller.ID, "permissions", set.String())
	return public(u), nil
}

// ListUsers requires ADMIN or PERMISSIONUPDATE.
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	caller, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireAnyPermission(caller, models.PermissionAdmin, models.PermissionPermissionUpdate); err != nil {
		return nil, err
	}

	list, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", common.ErrorInternal, err)
	}
	for i, u := range list {
		list[i] = public(u)
	}
	return list, nil
}

func (s *UserService) session(u *models.User) (*Session, error) {
	return issueSession(s.tokens, u)
}

func issueSession(tokens *auth.TokenCodec, u *models.User) (*Session, error) {
	tok, err := tokens.Sign(u.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return &Session{Token: tok, User: public(u)}, nil
}

// public strips secrets from a user record.
func public(u *models.User) *models.User {
	return &models.User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
	}
}

var dummyHash = sync.OnceValue(func() string {
	return cryptox.HashPassword("storefront-dummy-password", cryptox.DefaultParams)
})

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", common.Validationf("invalid email address")
	}
	return email, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return common.Validationf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}
