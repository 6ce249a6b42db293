package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/seino914/user-auth-service/internal/auth/domain"
	repo "github.com/seino914/user-auth-service/internal/auth/repository/postgres"
	errs "github.com/seino914/user-auth-service/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountColumns = []string{
	"id", "email", "name", "company", "password_hash",
	"failed_login_attempts", "locked_until", "created_at", "updated_at",
}

func strPtr(s string) *string { return &s }

// TestGetByEmail covers the GetByEmail repository method.
func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccountRepository(mock)
	ctx := context.Background()
	email := "test@example.com"

	t.Run("success", func(t *testing.T) {
		lockedUntil := time.Now().Add(10 * time.Minute)
		mock.ExpectQuery("SELECT id, email").
			WithArgs(email).
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow("account-123", email, "Test User", "Example Inc", strPtr("hash"),
					3, &lockedUntil, time.Now(), time.Now()))

		account, err := r.GetByEmail(ctx, email)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "account-123", account.ID)
		assert.Equal(t, 3, account.FailedLoginAttempts)
		require.NotNil(t, account.LockedUntil)
		assert.Equal(t, lockedUntil.Unix(), account.LockedUntil.Unix())
	})

	t.Run("nullable fields come back nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(email).
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow("account-123", email, "Test User", "", (*string)(nil),
					0, (*time.Time)(nil), time.Now(), time.Now()))

		account, err := r.GetByEmail(ctx, email)
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Nil(t, account.PasswordHash)
		assert.Nil(t, account.LockedUntil)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(email).
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByEmail(ctx, email)
		require.NoError(t, err) // Should return nil account, nil error
		assert.Nil(t, account)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(email).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, email)
		assert.Error(t, err)
	})
}

// TestGetByID covers the GetByID repository method.
func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccountRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("account-123").
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow("account-123", "test@example.com", "Test User", "", strPtr("hash"),
					0, (*time.Time)(nil), time.Now(), time.Now()))

		account, err := r.GetByID(ctx, "account-123")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "test@example.com", account.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, account)
	})
}

// TestCreate covers the Create repository method.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccountRepository(mock)
	ctx := context.Background()

	account := &domain.Account{
		ID:           "account-123",
		Email:        "new@example.com",
		Name:         "New User",
		Company:      "Example Inc",
		PasswordHash: strPtr("new-hash"),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.Name, account.Company, account.PasswordHash,
				account.FailedLoginAttempts, account.LockedUntil, account.CreatedAt, account.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, account)
		assert.NoError(t, err)
	})

	t.Run("unique violation maps to duplicate email", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.Name, account.Company, account.PasswordHash,
				account.FailedLoginAttempts, account.LockedUntil, account.CreatedAt, account.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

		err := r.Create(ctx, account)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.Name, account.Company, account.PasswordHash,
				account.FailedLoginAttempts, account.LockedUntil, account.CreatedAt, account.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, account)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrDuplicateEmail)
	})
}

// TestUpdateLoginState covers the conditional counter update.
func TestUpdateLoginState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccountRepository(mock)
	ctx := context.Background()

	until := time.Now().Add(15 * time.Minute)
	expected := domain.LoginState{FailedAttempts: 4}
	next := domain.LoginState{FailedAttempts: 5, LockedUntil: &until}

	t.Run("row matched", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts").
			WithArgs("account-123", next.FailedAttempts, next.LockedUntil,
				expected.FailedAttempts, expected.LockedUntil).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := r.UpdateLoginState(ctx, "account-123", expected, next)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("row did not match expected state", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts").
			WithArgs("account-123", next.FailedAttempts, next.LockedUntil,
				expected.FailedAttempts, expected.LockedUntil).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := r.UpdateLoginState(ctx, "account-123", expected, next)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts").
			WithArgs("account-123", next.FailedAttempts, next.LockedUntil,
				expected.FailedAttempts, expected.LockedUntil).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.UpdateLoginState(ctx, "account-123", expected, next)
		assert.Error(t, err)
	})
}
