package items

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+items\s*\(owner_id,\s*title,\s*description,\s*image,\s*large_image,\s*price\).*RETURNING\s+id,\s*created_at`).
		WithArgs("u-1", "Hat", "Wool", "a.jpg", "A.jpg", int64(1500)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("it-1", now))

	got, err := repo.Create(context.Background(), &models.Item{
		OwnerID: "u-1", Title: "Hat", Description: "Wool", Image: "a.jpg", LargeImage: "A.jpg", Price: 1500,
	})
	require.NoError(t, err)
	assert.Equal(t, "it-1", got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UnknownOwner(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+items`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "items_owner_id_fkey"})

	_, err := repo.Create(context.Background(), &models.Item{OwnerID: "ghost"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	cols := []string{"id", "owner_id", "title", "description", "image", "large_image", "price", "created_at"}
	mock.ExpectQuery(`(?s)SELECT\s+id,\s*owner_id.*FROM\s+items\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("it-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("it-1", "u-1", "Hat", "Wool", "", "", int64(1500), time.Now()))
	mock.ExpectQuery(`FROM\s+items`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), "it-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), got.Price)
	assert.Equal(t, "u-1", got.OwnerID)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+items\s+WHERE\s+id\s*=\s*\$1`).WithArgs("it-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE\s+FROM\s+items`).WithArgs("it-2").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE\s+FROM\s+items`).WithArgs("it-3").WillReturnError(errors.New("db down"))

	require.NoError(t, repo.Delete(context.Background(), "it-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "it-2"), common.ErrorNotFound)
	assert.EqualError(t, repo.Delete(context.Background(), "it-3"), "db error: db down")
}
