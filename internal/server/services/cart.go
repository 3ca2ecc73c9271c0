package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

// Cart is the caller's current cart with a computed subtotal.
type Cart struct {
	Lines    []models.CartLine
	Subtotal int64
}

type CartService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCartService(db *sql.DB, m repomanager.RepositoryManager) *CartService {
	return &CartService{db: db, repomanager: m}
}

// AddToCart adds one unit of itemID to the caller's cart. A credential whose
// user row is gone yields common.ErrInvalidCredential.
func (s *CartService) AddToCart(ctx context.Context, itemID string) (*models.CartItem, error) {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	ci, err := s.repomanager.CartItems(s.db).Upsert(ctx, user.ID, itemID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: item %s", common.ErrorNotFound, itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: add to cart: %v", common.ErrorInternal, err)
	}
	return ci, nil
}

// RemoveFromCart deletes a cart line. Only the line's owner may remove it.
func (s *CartService) RemoveFromCart(ctx context.Context, cartItemID string) (*models.CartItem, error) {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.CartItems(s.db)
	ci, err := repo.GetByID(ctx, cartItemID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load cart item: %v", common.ErrorInternal, err)
	}
	if ci.UserID != user.ID {
		return nil, fmt.Errorf("%w: cart item belongs to another user", common.ErrForbidden)
	}

	if err := repo.Delete(ctx, cartItemID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: remove from cart: %v", common.ErrorInternal, err)
	}
	return ci, nil
}

func (s *CartService) GetCart(ctx context.Context) (*Cart, error) {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	lines, err := s.repomanager.CartItems(s.db).Snapshot(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load cart: %v", common.ErrorInternal, err)
	}
	return &Cart{Lines: lines, Subtotal: models.CartTotal(lines)}, nil
}
