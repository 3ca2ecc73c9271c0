package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/cryptox"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/payment"
	"github.com/dmitrijs2005/storefront/internal/server/reconcile"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/cartitems"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/charges"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/items"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/orders"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

var (
	errBoom    = errors.New("boom")
	testParams = cryptox.Params{Memory: 1024, Time: 1, Threads: 1, SaltLen: 8, KeyLen: 16}
)

// --- users ---

type fakeUsers struct {
	mu     sync.Mutex
	byID   map[string]*models.User
	nextID int
	err    error
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byID: map[string]*models.User{}} }

func (f *fakeUsers) add(u *models.User) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *u
	f.byID[cp.ID] = &cp
	return &cp
}

func (f *fakeUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, x := range f.byID {
		if x.Email == u.Email {
			return nil, fmt.Errorf("%w: users_email_key", common.ErrConflict)
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("u-%d", f.nextID)
	u.CreatedAt = time.Now()
	cp := *u
	f.byID[u.ID] = &cp
	return u, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) List(ctx context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.User
	for _, u := range f.byID {
		cp := *u
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *models.User) int {
		if a.ID < b.ID {
			return -1
		}
		return 1
	})
	return out, nil
}

func (f *fakeUsers) UpdatePermissions(ctx context.Context, id string, perms models.Permissions) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.Permissions = perms
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) SetResetToken(ctx context.Context, email, tokenHash string, expiry time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			u.ResetTokenHash = &tokenHash
			u.ResetTokenExpiry = &expiry
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeUsers) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string, now time.Time) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == tokenHash && !u.ResetTokenExpiry.Before(now) {
			u.PasswordHash = passwordHash
			u.ResetTokenHash = nil
			u.ResetTokenExpiry = nil
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

// --- items ---

type fakeItems struct {
	mu     sync.Mutex
	byID   map[string]*models.Item
	nextID int
	err    error
}

func newFakeItems() *fakeItems { return &fakeItems{byID: map[string]*models.Item{}} }

func (f *fakeItems) add(it models.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[it.ID] = &it
}

func (f *fakeItems) Create(ctx context.Context, it *models.Item) (*models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	it.ID = fmt.Sprintf("it-%d", f.nextID)
	cp := *it
	f.byID[it.ID] = &cp
	return it, nil
}

func (f *fakeItems) GetByID(ctx context.Context, id string) (*models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *it
	return &cp, nil
}

func (f *fakeItems) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

// --- cart ---

type fakeCart struct {
	mu     sync.Mutex
	items  *fakeItems
	rows   []*models.CartItem
	nextID int
	err    error
	// afterSnapshot runs after each Snapshot returns its lines.
	afterSnapshot func()
}

func newFakeCart(items *fakeItems) *fakeCart { return &fakeCart{items: items} }

func (f *fakeCart) Upsert(ctx context.Context, userID, itemID string) (*models.CartItem, error) {
	if _, err := f.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rows {
		if r.UserID == userID && r.ItemID == itemID {
			r.Quantity++
			cp := *r
			return &cp, nil
		}
	}
	f.nextID++
	r := &models.CartItem{ID: fmt.Sprintf("ci-%d", f.nextID), UserID: userID, ItemID: itemID, Quantity: 1, CreatedAt: time.Now()}
	f.rows = append(f.rows, r)
	cp := *r
	return &cp, nil
}

func (f *fakeCart) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeCart) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = slices.Delete(f.rows, i, i+1)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeCart) Snapshot(ctx context.Context, userID string) ([]models.CartLine, error) {
	f.mu.Lock()
	rows := make([]models.CartItem, 0, len(f.rows))
	for _, r := range f.rows {
		if r.UserID == userID {
			rows = append(rows, *r)
		}
	}
	err := f.err
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	lines := make([]models.CartLine, 0, len(rows))
	for _, r := range rows {
		it, err := f.items.GetByID(ctx, r.ItemID)
		if err != nil {
			continue
		}
		lines = append(lines, models.CartLine{CartItemID: r.ID, Quantity: r.Quantity, Item: *it})
	}
	if f.afterSnapshot != nil {
		f.afterSnapshot()
	}
	return lines, nil
}

func (f *fakeCart) ConsumeSnapshot(ctx context.Context, lines []models.CartLine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range lines {
		for i, r := range f.rows {
			if r.ID != l.CartItemID {
				continue
			}
			f.rows = slices.Delete(f.rows, i, i+1)
			if rest := r.Quantity - l.Quantity; rest > 0 {
				f.nextID++
				f.rows = append(f.rows, &models.CartItem{
					ID: fmt.Sprintf("ci-%d", f.nextID), UserID: r.UserID, ItemID: r.ItemID, Quantity: rest,
				})
			}
			break
		}
	}
	return nil
}

func (f *fakeCart) quantities(userID string) map[string]int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]int64{}
	for _, r := range f.rows {
		if r.UserID == userID {
			out[r.ItemID] += r.Quantity
		}
	}
	return out
}

// --- orders ---

type fakeOrders struct {
	mu        sync.Mutex
	byID      map[string]*models.Order
	nextID    int
	createErr error
}

func newFakeOrders() *fakeOrders { return &fakeOrders{byID: map[string]*models.Order{}} }

func (f *fakeOrders) Create(ctx context.Context, o *models.Order) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	o.ID = fmt.Sprintf("o-%d", f.nextID)
	cp := *o
	f.byID[o.ID] = &cp
	return o, nil
}

func (f *fakeOrders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Order
	for _, o := range f.byID {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrders) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

// --- charges ---

type fakeCharges struct {
	mu          sync.Mutex
	byKey       map[string]*models.PendingCharge
	completeErr error
	staleErr    error
}

func newFakeCharges() *fakeCharges { return &fakeCharges{byKey: map[string]*models.PendingCharge{}} }

var errInFlight = fmt.Errorf("%w: pending_charges_one_in_flight_idx", common.ErrConflict)

// pendingFor reports whether userID already holds a pending reservation.
// Callers hold f.mu.
func (f *fakeCharges) pendingFor(userID string) bool {
	for _, c := range f.byKey {
		if c.UserID == userID && c.Status == models.ChargeStatusPending {
			return true
		}
	}
	return false
}

func (f *fakeCharges) Reserve(ctx context.Context, c *models.PendingCharge) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byKey[c.IdempotencyKey]; ok {
		return false, nil
	}
	if f.pendingFor(c.UserID) {
		return false, errInFlight
	}
	cp := *c
	cp.Status = models.ChargeStatusPending
	cp.UpdatedAt = time.Now()
	f.byKey[c.IdempotencyKey] = &cp
	return true, nil
}

func (f *fakeCharges) Get(ctx context.Context, key string) (*models.PendingCharge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byKey[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCharges) Retry(ctx context.Context, key string, amount int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byKey[key]
	if !ok || c.Status != models.ChargeStatusFailed {
		return false, nil
	}
	if f.pendingFor(c.UserID) {
		return false, errInFlight
	}
	c.Status = models.ChargeStatusPending
	c.Amount = amount
	return true, nil
}

func (f *fakeCharges) transition(key string, to models.ChargeStatus, apply func(c *models.PendingCharge)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byKey[key]
	if !ok || c.Status != models.ChargeStatusPending {
		return common.ErrConflict
	}
	c.Status = to
	apply(c)
	return nil
}

func (f *fakeCharges) MarkFailed(ctx context.Context, key, reason string) error {
	return f.transition(key, models.ChargeStatusFailed, func(c *models.PendingCharge) { c.LastError = reason })
}

func (f *fakeCharges) MarkCompleted(ctx context.Context, key, chargeID string, amount int64, orderID string) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	return f.transition(key, models.ChargeStatusCompleted, func(c *models.PendingCharge) {
		c.ChargeID, c.AmountCharged, c.OrderID = chargeID, amount, orderID
	})
}

func (f *fakeCharges) MarkInconsistent(ctx context.Context, key, chargeID string, amount int64, reason string) error {
	return f.transition(key, models.ChargeStatusInconsistent, func(c *models.PendingCharge) {
		c.ChargeID, c.AmountCharged, c.LastError = chargeID, amount, reason
	})
}

func (f *fakeCharges) ListStale(ctx context.Context, olderThan time.Time) ([]*models.PendingCharge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.staleErr != nil {
		return nil, f.staleErr
	}
	var out []*models.PendingCharge
	for _, c := range f.byKey {
		if c.Status == models.ChargeStatusPending && c.UpdatedAt.Before(olderThan) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCharges) status(key string) models.ChargeStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.byKey[key]; ok {
		return c.Status
	}
	return ""
}

// --- repository manager ---

type fakeRepoManager struct {
	users   *fakeUsers
	items   *fakeItems
	cart    *fakeCart
	orders  *fakeOrders
	charges *fakeCharges
}

func newFakeRepoManager() *fakeRepoManager {
	it := newFakeItems()
	return &fakeRepoManager{
		users:   newFakeUsers(),
		items:   it,
		cart:    newFakeCart(it),
		orders:  newFakeOrders(),
		charges: newFakeCharges(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Items(dbx.DBTX) items.Repository              { return m.items }
func (m *fakeRepoManager) CartItems(dbx.DBTX) cartitems.Repository      { return m.cart }
func (m *fakeRepoManager) Orders(dbx.DBTX) orders.Repository            { return m.orders }
func (m *fakeRepoManager) Charges(dbx.DBTX) charges.Repository          { return m.charges }

// --- gateway, recorder, mailer ---

type fakeGateway struct {
	mu      sync.Mutex
	calls   []payment.ChargeRequest
	err     error
	charged func(amount int64) int64
	entered chan struct{}
	release chan struct{}
}

func (g *fakeGateway) Charge(ctx context.Context, req payment.ChargeRequest) (*payment.Charge, error) {
	g.mu.Lock()
	g.calls = append(g.calls, req)
	n := len(g.calls)
	g.mu.Unlock()

	if g.entered != nil {
		g.entered <- struct{}{}
	}
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	amount := req.Amount
	if g.charged != nil {
		amount = g.charged(amount)
	}
	return &payment.Charge{ID: fmt.Sprintf("ch-%d", n), Amount: amount}, nil
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

type fakeRecorder struct {
	mu        sync.Mutex
	incidents []reconcile.Incident
	err       error
}

func (r *fakeRecorder) Record(ctx context.Context, inc reconcile.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incidents = append(r.incidents, inc)
	return r.err
}

type sentMail struct{ to, subject, html string }

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, html string) error {
	m.sent = append(m.sent, sentMail{to, subject, html})
	return m.err
}

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// asUser returns a context carrying the identity auth.Resolver would attach.
func asUser(u *models.User) context.Context {
	return auth.WithUser(auth.WithUserID(context.Background(), u.ID), u)
}
