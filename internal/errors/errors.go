package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is locked")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password does not meet strength requirements")
	ErrInvalidToken       = errors.New("invalid token")

	// ErrDuplicateEmail is the repository-level signal for a unique
	// constraint violation on the email column.
	ErrDuplicateEmail = errors.New("duplicate email")

	ErrStoreUnavailable = errors.New("store unavailable")
)

// InvalidCredentialsError is returned for any bad email/password
// combination, including a nonexistent account. RemainingAttempts is -1
// when the service has nothing to disclose (unknown email, passwordless
// account), otherwise the attempts left before lockout.
type InvalidCredentialsError struct {
	RemainingAttempts int
}

func (e *InvalidCredentialsError) Error() string {
	return ErrInvalidCredentials.Error()
}

func (e *InvalidCredentialsError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

type AccountLockedError struct {
	RemainingMinutes int
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account is locked, retry in %d minute(s)", e.RemainingMinutes)
}

func (e *AccountLockedError) Is(target error) bool {
	return target == ErrAccountLocked
}

// WeakPasswordError carries every strength rule the password violated.
type WeakPasswordError struct {
	Violations []string
}

func (e *WeakPasswordError) Error() string {
	return ErrWeakPassword.Error()
}

func (e *WeakPasswordError) Is(target error) bool {
	return target == ErrWeakPassword
}

// Token rejection reasons surfaced by the token-validity gate.
const (
	TokenReasonExpired      = "expired"
	TokenReasonBadSignature = "bad signature"
	TokenReasonRevoked      = "revoked"
	TokenReasonMalformed    = "malformed"
)

type InvalidTokenError struct {
	Reason string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %s", e.Reason)
}

func (e *InvalidTokenError) Is(target error) bool {
	return target == ErrInvalidToken
}
