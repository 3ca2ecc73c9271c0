package grpc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/services"
)

// tokenResolver accepts "tok:<user id>" credentials for users it knows.
type tokenResolver struct {
	users map[string]*models.User
	err   error
}

func (r *tokenResolver) Resolve(ctx context.Context, credential string) (context.Context, error) {
	if r.err != nil {
		return ctx, r.err
	}
	if credential == "" {
		return ctx, nil
	}
	var id string
	if _, err := fmt.Sscanf(credential, "tok:%s", &id); err != nil {
		return ctx, common.ErrInvalidCredential
	}
	ctx = auth.WithUserID(ctx, id)
	if u, ok := r.users[id]; ok {
		ctx = auth.WithUser(ctx, u)
	}
	return ctx, nil
}

type stubUsers struct {
	session *services.Session
	err     error
}

func (s *stubUsers) Signup(ctx context.Context, email, name, password string) (*services.Session, error) {
	return s.session, s.err
}

func (s *stubUsers) Signin(ctx context.Context, email, password string) (*services.Session, error) {
	return s.session, s.err
}

func (s *stubUsers) Signout(ctx context.Context) error { return nil }

func (s *stubUsers) Me(ctx context.Context) (*models.User, error) {
	if _, ok := auth.UserIDFrom(ctx); !ok {
		return nil, nil
	}
	return auth.CurrentUser(ctx)
}

func (s *stubUsers) UpdatePermissions(ctx context.Context, userID string, perms []models.Permission) (*models.User, error) {
	caller, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireAnyPermission(caller, models.PermissionAdmin, models.PermissionPermissionUpdate); err != nil {
		return nil, err
	}
	return &models.User{ID: userID, Permissions: models.NormalizePermissions(perms)}, nil
}

func (s *stubUsers) ListUsers(ctx context.Context) ([]*models.User, error) {
	return nil, s.err
}

type stubResets struct {
	requested []string
}

func (s *stubResets) RequestReset(ctx context.Context, email string) error {
	s.requested = append(s.requested, email)
	return nil
}

func (s *stubResets) ResetPassword(ctx context.Context, token, password, confirm string) (*services.Session, error) {
	return nil, common.ErrInvalidOrExpiredToken
}

type stubItems struct{}

func (stubItems) CreateItem(ctx context.Context, item models.Item) (*models.Item, error) {
	return nil, common.ErrUnauthenticated
}

func (stubItems) DeleteItem(ctx context.Context, id string) (*models.Item, error) {
	return nil, common.ErrorNotFound
}

// memCart is a single-user in-memory cart keyed by item id.
type memCart struct {
	mu    sync.Mutex
	items map[string]models.Item
	qty   map[string]int64
}

func (c *memCart) AddToCart(ctx context.Context, itemID string) (*models.CartItem, error) {
	userID, err := auth.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[itemID]; !ok {
		return nil, common.ErrorNotFound
	}
	c.qty[itemID]++
	return &models.CartItem{ID: "ci-" + itemID, UserID: userID, ItemID: itemID, Quantity: c.qty[itemID]}, nil
}

func (c *memCart) RemoveFromCart(ctx context.Context, cartItemID string) (*models.CartItem, error) {
	return nil, common.ErrForbidden
}

func (c *memCart) lines() []models.CartLine {
	var lines []models.CartLine
	for id, q := range c.qty {
		lines = append(lines, models.CartLine{CartItemID: "ci-" + id, Quantity: q, Item: c.items[id]})
	}
	return lines
}

func (c *memCart) GetCart(ctx context.Context) (*services.Cart, error) {
	if _, err := auth.RequireAuthenticated(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := c.lines()
	return &services.Cart{Lines: lines, Subtotal: models.CartTotal(lines)}, nil
}

type stubCheckout struct {
	cart *memCart
	err  error
}

func (s *stubCheckout) CreateOrder(ctx context.Context, paymentToken string) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	s.cart.mu.Lock()
	defer s.cart.mu.Unlock()
	lines := s.cart.lines()
	if len(lines) == 0 {
		return nil, common.ErrEmptyCart
	}
	o := &models.Order{ID: "o-1", UserID: u.ID, Total: models.CartTotal(lines), Currency: "USD", ChargeID: "ch-1", CreatedAt: orderTime}
	for _, l := range lines {
		o.Items = append(o.Items, models.OrderItemFromLine(l))
	}
	s.cart.qty = map[string]int64{}
	return o, nil
}

var orderTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type stubOrders struct{}

func (stubOrders) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return nil, fmt.Errorf("%w: connection reset by peer", common.ErrorInternal)
}

func (stubOrders) ListOrders(ctx context.Context) ([]*models.Order, error) {
	if _, err := auth.RequireAuthenticated(ctx); err != nil {
		return nil, err
	}
	return []*models.Order{{ID: "o-1"}}, nil
}
