package domain

//go:generate mockgen -destination=../../mocks/mock_account_repository.go -package=mocks github.com/seino914/user-auth-service/internal/auth/domain AccountRepository
//go:generate mockgen -destination=../../mocks/mock_token_blacklist.go -package=mocks github.com/seino914/user-auth-service/internal/auth/domain TokenBlacklist

import (
	"context"
	"time"
)

type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	// Create inserts the account and reports a unique-constraint
	// violation on email as errs.ErrDuplicateEmail.
	Create(ctx context.Context, account *Account) error
	// UpdateLoginState performs a conditional write: the counters are
	// replaced with next only if the stored row still matches expected.
	// It reports whether the swap took effect.
	UpdateLoginState(ctx context.Context, id string, expected, next LoginState) (bool, error)
}

type TokenBlacklist interface {
	// Revoke is idempotent; revoking an already-revoked token updates
	// its recorded expiry.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	// PurgeExpired deletes records whose expiry has passed and returns
	// how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
