package postgres

import (
	"context"
	"fmt"
	"time"
)

// BlacklistRepository is the durable revocation store: one row per
// revoked token, keyed by the bearer string itself.
type BlacklistRepository struct {
	db DB
}

func NewBlacklistRepository(db DB) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

func (r *BlacklistRepository) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	// Upsert so revoking twice refreshes the recorded expiry instead of
	// erroring.
	_, err := r.db.Exec(ctx, `
		INSERT INTO blacklisted_tokens (token, expires_at, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (token)
		DO UPDATE SET expires_at = EXCLUDED.expires_at
	`, token, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

// IsRevoked reports whether the token has a blacklist record, expired
// or not: a record past its expiry still denies until purged.
func (r *BlacklistRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	var revoked bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM blacklisted_tokens WHERE token = $1)`, token,
	).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	return revoked, nil
}

func (r *BlacklistRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM blacklisted_tokens WHERE expires_at < now()`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}
