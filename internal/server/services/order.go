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

type OrderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOrderService(db *sql.DB, m repomanager.RepositoryManager) *OrderService {
	return &OrderService{db: db, repomanager: m}
}

// GetOrder returns an order visible to its owner or an ADMIN.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	caller, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	o, err := s.repomanager.Orders(s.db).GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load order: %v", common.ErrorInternal, err)
	}

	if err := auth.RequireOwnerOrPermission(caller, o.UserID, models.PermissionAdmin); err != nil {
		return nil, err
	}
	return o, nil
}

// ListOrders returns the caller's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	userID, err := auth.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.repomanager.Orders(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %v", common.ErrorInternal, err)
	}
	return list, nil
}
