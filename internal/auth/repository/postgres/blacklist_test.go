package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	repo "github.com/seino914/user-auth-service/internal/auth/repository/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRevoke covers the blacklist upsert.
func TestRevoke(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewBlacklistRepository(mock)
	ctx := context.Background()
	expiresAt := time.Now().Add(24 * time.Hour)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO blacklisted_tokens").
			WithArgs("some-token", expiresAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Revoke(ctx, "some-token", expiresAt)
		assert.NoError(t, err)
	})

	t.Run("revoking twice upserts instead of erroring", func(t *testing.T) {
		later := expiresAt.Add(time.Hour)

		mock.ExpectExec("INSERT INTO blacklisted_tokens").
			WithArgs("some-token", expiresAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO blacklisted_tokens").
			WithArgs("some-token", later).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, r.Revoke(ctx, "some-token", expiresAt))
		require.NoError(t, r.Revoke(ctx, "some-token", later))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO blacklisted_tokens").
			WithArgs("some-token", expiresAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Revoke(ctx, "some-token", expiresAt)
		assert.Error(t, err)
	})
}

// TestIsRevoked covers the blacklist lookup.
func TestIsRevoked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewBlacklistRepository(mock)
	ctx := context.Background()

	t.Run("revoked", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("some-token").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		revoked, err := r.IsRevoked(ctx, "some-token")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("not revoked", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("other-token").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		revoked, err := r.IsRevoked(ctx, "other-token")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("database error surfaces for the caller to fail closed", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("some-token").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.IsRevoked(ctx, "some-token")
		assert.Error(t, err)
	})
}

// TestPurgeExpired covers the expiry-based cleanup.
func TestPurgeExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewBlacklistRepository(mock)
	ctx := context.Background()

	t.Run("reports the number of deleted records", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM blacklisted_tokens").
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		count, err := r.PurgeExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM blacklisted_tokens").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.PurgeExpired(ctx)
		assert.Error(t, err)
	})
}
