package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/reconcile"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

// ChargeSweeper finds checkout reservations left pending past staleAfter,
// which means the process died somewhere between reserving and persisting
// the order. They are marked inconsistent and reported for reconciliation.
type ChargeSweeper struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	recorder    reconcile.Recorder
	staleAfter  time.Duration
	interval    time.Duration
	logger      logging.Logger
	now         func() time.Time
}

func NewChargeSweeper(db *sql.DB, m repomanager.RepositoryManager, recorder reconcile.Recorder,
	staleAfter, interval time.Duration, logger logging.Logger) *ChargeSweeper {
	return &ChargeSweeper{
		db:          db,
		repomanager: m,
		recorder:    recorder,
		staleAfter:  staleAfter,
		interval:    interval,
		logger:      logger.With("module", "sweeper"),
		now:         time.Now,
	}
}

// Run sweeps every interval until ctx is cancelled.
func (s *ChargeSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.logger.Error(ctx, "sweep failed", "error", err)
			}
		}
	}
}

// Sweep performs one pass and returns the number of reservations flagged.
func (s *ChargeSweeper) Sweep(ctx context.Context) (int, error) {
	repo := s.repomanager.Charges(s.db)
	now := s.now()

	stale, err := repo.ListStale(ctx, now.Add(-s.staleAfter))
	if err != nil {
		return 0, err
	}

	flagged := 0
	for _, c := range stale {
		const reason = "reservation left pending; gateway outcome unknown"
		err := repo.MarkInconsistent(ctx, c.IdempotencyKey, c.ChargeID, c.AmountCharged, reason)
		if errors.Is(err, common.ErrConflict) {
			continue
		}
		if err != nil {
			return flagged, err
		}
		flagged++

		inc := reconcile.Incident{
			IdempotencyKey: c.IdempotencyKey,
			UserID:         c.UserID,
			Amount:         c.Amount,
			Currency:       c.Currency,
			Reason:         reason,
			DetectedAt:     now,
		}
		if err := s.recorder.Record(ctx, inc); err != nil {
			s.logger.Error(ctx, "could not record reconciliation incident", "idempotency_key", c.IdempotencyKey, "error", err)
		}
	}
	if flagged > 0 {
		s.logger.Warn(ctx, "stale checkout reservations flagged", "count", flagged)
	}
	return flagged, nil
}
