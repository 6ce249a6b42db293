package constant

import "time"

const (
	// MaxLoginAttempts is the number of consecutive failed logins after
	// which an account is locked.
	MaxLoginAttempts = 5

	// LockDuration is how long a locked account rejects login attempts.
	LockDuration = 15 * time.Minute

	// TokenValidity is the lifetime of an issued session token.
	TokenValidity = 24 * time.Hour

	// BcryptCost tunes password hashing so a single comparison takes
	// tens of milliseconds on commodity hardware.
	BcryptCost = 10

	// LoginStateMaxRetries bounds the compare-and-swap retry loop used
	// when persisting lockout counters.
	LoginStateMaxRetries = 3

	// MinRevocationTTL is the minimum retention for a revoked token in
	// TTL-based blacklist backends, so a just-expired token still reads
	// as revoked instead of vanishing immediately.
	MinRevocationTTL = time.Minute

	MinPasswordLength = 8
)
