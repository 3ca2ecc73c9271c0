package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewItemService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ItemService {
	return &ItemService{db: db, repomanager: m, logger: logger.With("module", "items")}
}

// CreateItem adds an item owned by the caller.
func (s *ItemService) CreateItem(ctx context.Context, item models.Item) (*models.Item, error) {
	userID, err := auth.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return nil, common.Validationf("title is required")
	}
	if item.Price < 0 {
		return nil, common.Validationf("price must not be negative")
	}

	item.ID = ""
	item.OwnerID = userID
	created, err := s.repomanager.Items(s.db).Create(ctx, &item)
	if errors.Is(err, common.ErrorNotFound) {
		// owner row vanished after the credential was issued
		return nil, common.ErrInvalidCredential
	}
	if err != nil {
		return nil, fmt.Errorf("%w: create item: %v", common.ErrorInternal, err)
	}
	return created, nil
}

// DeleteItem removes an item. Allowed for its owner, ADMIN or ITEMDELETE.
func (s *ItemService) DeleteItem(ctx context.Context, id string) (*models.Item, error) {
	caller, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Items(s.db)
	item, err := repo.GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load item: %v", common.ErrorInternal, err)
	}

	if err := auth.RequireOwnerOrPermission(caller, item.OwnerID, models.PermissionAdmin, models.PermissionItemDelete); err != nil {
		return nil, err
	}

	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: delete item: %v", common.ErrorInternal, err)
	}
	s.logger.Info(ctx, "item deleted", "item_id", id, "by", caller.ID)
	return item, nil
}
