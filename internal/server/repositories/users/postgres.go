package users

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

const userColumns = `id, email, name, password_hash, array_to_string(permissions, ','), reset_token, reset_token_expiry, created_at`

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u      models.User
		perms  string
		token  sql.NullString
		expiry sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &perms, &token, &expiry, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Permissions = models.ParsePermissions(perms)
	if token.Valid {
		u.ResetTokenHash = &token.String
	}
	if expiry.Valid {
		u.ResetTokenExpiry = &expiry.Time
	}
	return &u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash, permissions)
		VALUES ($1, $2, $3, string_to_array($4, ','))
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.Permissions.String()).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return u, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) UpdatePermissions(ctx context.Context, id string, perms models.Permissions) (*models.User, error) {
	query := `
		UPDATE users SET permissions = string_to_array($1, ',')
		WHERE id = $2
		RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRowContext(ctx, query, perms.String(), id))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return u, nil
}

func (r *PostgresRepository) SetResetToken(ctx context.Context, email, tokenHash string, expiry time.Time) error {
	query := `
		UPDATE users SET reset_token = $1, reset_token_expiry = $2
		WHERE email = $3
	`
	res, err := r.db.ExecContext(ctx, query, tokenHash, expiry, email)
	if err != nil {
		return dbx.Classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string, now time.Time) (*models.User, error) {
	query := `
		UPDATE users SET password_hash = $1, reset_token = NULL, reset_token_expiry = NULL
		WHERE reset_token = $2 AND reset_token_expiry >= $3
		RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRowContext(ctx, query, passwordHash, tokenHash, now))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return u, nil
}
