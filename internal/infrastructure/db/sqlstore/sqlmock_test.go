package sqlstore

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return New(sqlDB, DialectPostgres), mock
}

func TestToggle_IsSingleAtomicStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE recipes SET visible = NOT visible, updated_at = $1 WHERE id = $2 RETURNING visible`)).
		WithArgs(sqlmock.AnyArg(), "r1").
		WillReturnRows(sqlmock.NewRows([]string{"visible"}).AddRow(false))

	visible, err := repo.ToggleVisibility(context.Background(), "r1")
	if err != nil {
		t.Fatalf("ToggleVisibility: %v", err)
	}
	if visible {
		t.Fatalf("expected committed value false")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggle_NoRowsIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`UPDATE recipes SET visible = NOT visible`).
		WithArgs(sqlmock.AnyArg(), "missing").
		WillReturnRows(sqlmock.NewRows([]string{"visible"}))

	if _, err := repo.ToggleVisibility(context.Background(), "missing"); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestStorageFailuresAreWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`SELECT .* FROM recipes WHERE mood = \$1`).WithArgs("happy").WillReturnError(boom)

	_, err := repo.ListVisible(context.Background(), domain.MoodHappy)
	if !errors.Is(err, domain.ErrStorage) || !errors.Is(err, boom) {
		t.Fatalf("expected error wrapping ErrStorage and the cause, got %v", err)
	}
}

func TestIdentityCreate_PostgresUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO identities (id, login_key, secret_hash, role, created_at) VALUES ($1, $2, $3, $4, $5)`)).
		WithArgs(sqlmock.AnyArg(), "dup@test.com", "h", "standard", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &domain.Identity{LoginKey: "dup@test.com", SecretHash: "h", Role: domain.RoleStandard})
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
