package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/payment"
	"github.com/dmitrijs2005/storefront/internal/server/reconcile"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var checkoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:storefront:checkout"))

// persistTimeout bounds the post-charge transaction, which runs detached
// from the caller's context.
const persistTimeout = 30 * time.Second

// IdempotencyKey derives a stable key from the user and the exact cart
// snapshot. Line order does not matter.
func IdempotencyKey(userID string, lines []models.CartLine) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = fmt.Sprintf("%s:%s:%d:%d", l.CartItemID, l.Item.ID, l.Quantity, l.Item.Price)
	}
	slices.Sort(parts)
	return uuid.NewSHA1(checkoutNamespace, []byte(userID+"|"+strings.Join(parts, ";"))).String()
}

// CheckoutService turns the caller's cart into a paid, immutable order.
type CheckoutService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	gateway        payment.Gateway
	recorder       reconcile.Recorder
	currency       string
	paymentTimeout time.Duration
	logger         logging.Logger
	now            func() time.Time
}

func NewCheckoutService(db *sql.DB, m repomanager.RepositoryManager, gateway payment.Gateway, recorder reconcile.Recorder,
	currency string, paymentTimeout time.Duration, logger logging.Logger) *CheckoutService {
	return &CheckoutService{
		db:             db,
		repomanager:    m,
		gateway:        gateway,
		recorder:       recorder,
		currency:       currency,
		paymentTimeout: paymentTimeout,
		logger:         logger.With("module", "checkout"),
		now:            time.Now,
	}
}

// CreateOrder charges the caller's current cart and records the order.
//
// The snapshot is reserved under its idempotency key before the gateway is
// called, so a concurrent or repeated checkout of the same cart either gets
// common.ErrConflict or the order already recorded for it. A user holds at
// most one pending reservation, so a checkout of a different snapshot while
// another is in flight gets common.ErrConflict as well. A gateway failure
// leaves the cart untouched and yields common.ErrPaymentFailed. If the
// charge went through but the order could not be stored, the charge is
// flagged for reconciliation and common.ErrPostChargeInconsistency is
// returned.
func (s *CheckoutService) CreateOrder(ctx context.Context, paymentToken string) (*models.Order, error) {
	user, err := auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(paymentToken) == "" {
		return nil, common.Validationf("payment token is required")
	}

	lines, err := s.repomanager.CartItems(s.db).Snapshot(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load cart: %v", common.ErrorInternal, err)
	}
	if len(lines) == 0 {
		return nil, common.ErrEmptyCart
	}

	total := models.CartTotal(lines)
	if total <= 0 {
		return nil, common.Validationf("cart total must be positive")
	}
	key := IdempotencyKey(user.ID, lines)
	log := s.logger.With("idempotency_key", key, "user_id", user.ID)

	existing, err := s.reserve(ctx, key, user.ID, total)
	if err != nil || existing != nil {
		return existing, err
	}

	// No other checkout of this user can start while the reservation is held.
	// A cart that no longer matches the snapshot was changed after it was
	// read, possibly by an earlier checkout consuming it.
	current, err := s.repomanager.CartItems(s.db).Snapshot(ctx, user.ID)
	if err != nil {
		s.release(ctx, log, key, "reload cart: "+err.Error())
		return nil, fmt.Errorf("%w: reload cart: %v", common.ErrorInternal, err)
	}
	if IdempotencyKey(user.ID, current) != key {
		s.release(ctx, log, key, "cart changed before charging")
		return nil, fmt.Errorf("%w: cart changed during checkout, try again", common.ErrConflict)
	}

	chargeCtx, cancel := context.WithTimeout(ctx, s.paymentTimeout)
	charge, err := s.gateway.Charge(chargeCtx, payment.ChargeRequest{
		Amount:         total,
		Currency:       s.currency,
		Token:          paymentToken,
		IdempotencyKey: key,
		Description:    fmt.Sprintf("Storefront order (%d lines)", len(lines)),
		PayerEmail:     user.Email,
	})
	cancel()
	if err != nil {
		s.release(ctx, log, key, err.Error())
		log.Info(ctx, "payment failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrPaymentFailed, err)
	}
	if charge.Amount != total {
		log.Warn(ctx, "gateway charged a different amount", "expected", total, "charged", charge.Amount)
	}

	order := &models.Order{
		UserID:         user.ID,
		Total:          charge.Amount,
		Currency:       s.currency,
		ChargeID:       charge.ID,
		IdempotencyKey: key,
		Items:          make([]models.OrderItem, 0, len(lines)),
	}
	for _, l := range lines {
		order.Items = append(order.Items, models.OrderItemFromLine(l))
	}

	// Money has moved; finish persisting even if the caller goes away.
	persistCtx, cancelPersist := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancelPersist()
	err = dbx.WithTx(persistCtx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Orders(tx).Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := s.repomanager.CartItems(tx).ConsumeSnapshot(ctx, lines); err != nil {
			return fmt.Errorf("consume cart: %w", err)
		}
		if err := s.repomanager.Charges(tx).MarkCompleted(ctx, key, charge.ID, charge.Amount, order.ID); err != nil {
			return fmt.Errorf("complete charge: %w", err)
		}
		return nil
	})
	if err != nil {
		s.flagInconsistent(persistCtx, log, reconcile.Incident{
			IdempotencyKey: key,
			UserID:         user.ID,
			ChargeID:       charge.ID,
			Amount:         charge.Amount,
			Currency:       s.currency,
			Reason:         err.Error(),
			DetectedAt:     s.now(),
		})
		return nil, fmt.Errorf("%w: charge %s was captured but the order was not stored", common.ErrPostChargeInconsistency, charge.ID)
	}

	log.Info(ctx, "order created", "order_id", order.ID, "charge_id", charge.ID, "total", order.Total)
	return order, nil
}

// reserve claims key for this checkout. It returns the recorded order when
// the same snapshot already completed, and common.ErrConflict when it is in
// flight or awaiting reconciliation.
func (s *CheckoutService) reserve(ctx context.Context, key, userID string, total int64) (*models.Order, error) {
	repo := s.repomanager.Charges(s.db)

	claimed, err := repo.Reserve(ctx, &models.PendingCharge{
		IdempotencyKey: key,
		UserID:         userID,
		Amount:         total,
		Currency:       s.currency,
	})
	if errors.Is(err, common.ErrConflict) {
		return nil, fmt.Errorf("%w: another checkout is in progress", common.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reserve checkout: %v", common.ErrorInternal, err)
	}
	if claimed {
		return nil, nil
	}

	existing, err := repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: load reservation: %v", common.ErrorInternal, err)
	}

	switch existing.Status {
	case models.ChargeStatusCompleted:
		o, err := s.repomanager.Orders(s.db).GetByID(ctx, existing.OrderID)
		if err != nil {
			return nil, fmt.Errorf("%w: load completed order: %v", common.ErrorInternal, err)
		}
		return o, nil
	case models.ChargeStatusFailed:
		ok, err := repo.Retry(ctx, key, total)
		if errors.Is(err, common.ErrConflict) {
			return nil, fmt.Errorf("%w: another checkout is in progress", common.ErrConflict)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: retry reservation: %v", common.ErrorInternal, err)
		}
		if ok {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("%w: checkout for this cart is already %s", common.ErrConflict, existing.Status)
}

// release marks a reservation failed before any money moved, so the same
// snapshot can be checked out again.
func (s *CheckoutService) release(ctx context.Context, log logging.Logger, key, reason string) {
	if err := s.repomanager.Charges(s.db).MarkFailed(context.WithoutCancel(ctx), key, reason); err != nil {
		log.Warn(ctx, "could not release checkout reservation", "error", err)
	}
}

// flagInconsistent records a charge that has no durable order. Failures here
// are logged only; the caller already reports the inconsistency.
func (s *CheckoutService) flagInconsistent(ctx context.Context, log logging.Logger, inc reconcile.Incident) {
	log.Error(ctx, "post-charge inconsistency",
		"charge_id", inc.ChargeID, "amount", inc.Amount, "reason", inc.Reason)

	err := s.repomanager.Charges(s.db).MarkInconsistent(ctx, inc.IdempotencyKey, inc.ChargeID, inc.Amount, inc.Reason)
	if err != nil && !errors.Is(err, common.ErrConflict) {
		log.Error(ctx, "could not mark charge inconsistent", "error", err)
	}
	if err := s.recorder.Record(ctx, inc); err != nil {
		log.Error(ctx, "could not record reconciliation incident", "error", err)
	}
}
