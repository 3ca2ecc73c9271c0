package charges

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

const chargeColumns = `idempotency_key, user_id, amount, currency, status, charge_id, amount_charged, order_id, last_error, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharge(row rowScanner) (*models.PendingCharge, error) {
	var (
		c       models.PendingCharge
		status  string
		orderID sql.NullString
	)
	err := row.Scan(&c.IdempotencyKey, &c.UserID, &c.Amount, &c.Currency, &status,
		&c.ChargeID, &c.AmountCharged, &orderID, &c.LastError, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Status = models.ChargeStatus(status)
	c.OrderID = orderID.String
	return &c, nil
}

func (r *PostgresRepository) Reserve(ctx context.Context, charge *models.PendingCharge) (bool, error) {
	query := `
		INSERT INTO pending_charges (idempotency_key, user_id, amount, currency, status)
		VALUES ($1, $2, $3, $4, 'pending')
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, charge.IdempotencyKey, charge.UserID, charge.Amount, charge.Currency).
		Scan(&charge.CreatedAt, &charge.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dbx.Classify(err)
	}
	charge.Status = models.ChargeStatusPending
	return true, nil
}

func (r *PostgresRepository) Get(ctx context.Context, key string) (*models.PendingCharge, error) {
	query := `SELECT ` + chargeColumns + ` FROM pending_charges WHERE idempotency_key = $1`
	c, err := scanCharge(r.db.QueryRowContext(ctx, query, key))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return c, nil
}

func (r *PostgresRepository) Retry(ctx context.Context, key string, amount int64) (bool, error) {
	query := `
		UPDATE pending_charges
		SET status = 'pending', amount = $2, last_error = '', updated_at = now()
		WHERE idempotency_key = $1 AND status = 'failed'
	`
	n, err := r.exec(ctx, query, key, amount)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, key, reason string) error {
	query := `
		UPDATE pending_charges
		SET status = 'failed', last_error = $2, updated_at = now()
		WHERE idempotency_key = $1 AND status = 'pending'
	`
	return r.transition(ctx, query, key, reason)
}

func (r *PostgresRepository) MarkCompleted(ctx context.Context, key, chargeID string, amountCharged int64, orderID string) error {
	query := `
		UPDATE pending_charges
		SET status = 'completed', charge_id = $2, amount_charged = $3, order_id = $4, updated_at = now()
		WHERE idempotency_key = $1 AND status = 'pending'
	`
	return r.transition(ctx, query, key, chargeID, amountCharged, orderID)
}

func (r *PostgresRepository) MarkInconsistent(ctx context.Context, key, chargeID string, amountCharged int64, reason string) error {
	query := `
		UPDATE pending_charges
		SET status = 'inconsistent', charge_id = $2, amount_charged = $3, last_error = $4, updated_at = now()
		WHERE idempotency_key = $1 AND status = 'pending'
	`
	return r.transition(ctx, query, key, chargeID, amountCharged, reason)
}

func (r *PostgresRepository) ListStale(ctx context.Context, olderThan time.Time) ([]*models.PendingCharge, error) {
	query := `
		SELECT ` + chargeColumns + `
		FROM pending_charges
		WHERE status = 'pending' AND updated_at < $1
		ORDER BY updated_at
	`
	rows, err := r.db.QueryContext(ctx, query, olderThan)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	var result []*models.PendingCharge
	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) transition(ctx context.Context, query string, args ...any) error {
	n, err := r.exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: charge %v is not pending", common.ErrConflict, args[0])
	}
	return nil
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dbx.Classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
