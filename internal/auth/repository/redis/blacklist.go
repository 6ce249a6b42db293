package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/seino914/user-auth-service/pkg/constant"
)

const blacklistKeyPrefix = "bl"

// Blacklist is a TokenBlacklist backend on Redis. Each revoked token
// becomes a key whose TTL runs out at the token's expiry, so Redis
// itself does the purging.
type Blacklist struct {
	client *redis.Client
	prefix string

	// now is overridable for TTL arithmetic in tests.
	now func() time.Time
}

func NewBlacklist(client *redis.Client) *Blacklist {
	return &Blacklist{
		client: client,
		prefix: blacklistKeyPrefix,
		now:    time.Now,
	}
}

func (b *Blacklist) key(token string) string {
	return b.prefix + ":" + token
}

func (b *Blacklist) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	// Clamp so a token already past its expiry is still retained long
	// enough to read as revoked.
	ttl := expiresAt.Sub(b.now())
	if ttl < constant.MinRevocationTTL {
		ttl = constant.MinRevocationTTL
	}

	if err := b.client.Set(ctx, b.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

func (b *Blacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, b.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	return n > 0, nil
}

// PurgeExpired is a no-op: key TTLs already expire with the tokens.
func (b *Blacklist) PurgeExpired(_ context.Context) (int64, error) {
	return 0, nil
}
