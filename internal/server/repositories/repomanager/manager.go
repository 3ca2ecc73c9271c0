package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/cartitems"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/charges"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/items"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/orders"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// path serves both plain and transactional access.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Items(db dbx.DBTX) items.Repository
	CartItems(db dbx.DBTX) cartitems.Repository
	Orders(db dbx.DBTX) orders.Repository
	Charges(db dbx.DBTX) charges.Repository
}
