package domain

import "time"

// Account is the identity record owned by the authentication core.
// PasswordHash is nil for accounts that authenticate externally and
// therefore have no local credential.
type Account struct {
	ID                  string
	Email               string
	Name                string
	Company             string
	PasswordHash        *string
	FailedLoginAttempts int
	LockedUntil         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// LoginState is the pair of fields the lockout state machine operates
// on. It is carried separately from Account so conditional updates can
// name the expected and the next state explicitly.
type LoginState struct {
	FailedAttempts int
	LockedUntil    *time.Time
}

// State returns the account's current login state.
func (a *Account) State() LoginState {
	return LoginState{FailedAttempts: a.FailedLoginAttempts, LockedUntil: a.LockedUntil}
}

// RevokedToken is a blacklist entry: the bearer string of a revoked
// session token together with the token's original expiry, after which
// the record is eligible for purge.
type RevokedToken struct {
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
