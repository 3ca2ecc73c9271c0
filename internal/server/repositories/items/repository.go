// Package items provides the catalog item repository.
package items

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	Delete(ctx context.Context, id string) error
}
