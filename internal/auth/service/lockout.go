package service

import (
	"time"

	"github.com/seino914/user-auth-service/internal/auth/domain"
	"github.com/seino914/user-auth-service/pkg/constant"
)

// LockoutPolicy is the per-account brute-force state machine. The state
// is derived from (FailedAttempts, LockedUntil), never stored
// separately: an account is Locked while LockedUntil is in the future
// and Open otherwise.
type LockoutPolicy struct {
	MaxAttempts  int
	LockDuration time.Duration
}

func NewLockoutPolicy(maxAttempts int, lockDuration time.Duration) LockoutPolicy {
	return LockoutPolicy{MaxAttempts: maxAttempts, LockDuration: lockDuration}
}

func DefaultLockoutPolicy() LockoutPolicy {
	return NewLockoutPolicy(constant.MaxLoginAttempts, constant.LockDuration)
}

// IsLocked reports whether the state is Locked at now, and if so the
// remaining lock time in minutes (ceiling).
func (p LockoutPolicy) IsLocked(state domain.LoginState, now time.Time) (bool, int) {
	if state.LockedUntil == nil || !state.LockedUntil.After(now) {
		return false, 0
	}
	remaining := state.LockedUntil.Sub(now)
	minutes := int((remaining + time.Minute - 1) / time.Minute)
	return true, minutes
}

// LockExpired reports whether the state carries a lock whose window has
// elapsed, i.e. the account should be lazily reset before the credential
// is evaluated.
func (p LockoutPolicy) LockExpired(state domain.LoginState, now time.Time) bool {
	return state.LockedUntil != nil && !state.LockedUntil.After(now)
}

// Fail applies the failure transition to an Open state: the counter is
// incremented and, at the threshold, the account locks for the full
// window with the counter parked at the threshold. locked reports
// whether this failure tripped the lock; remaining is the attempts left
// before it does.
func (p LockoutPolicy) Fail(state domain.LoginState, now time.Time) (next domain.LoginState, locked bool, remaining int) {
	attempts := state.FailedAttempts + 1
	if attempts >= p.MaxAttempts {
		until := now.Add(p.LockDuration)
		return domain.LoginState{FailedAttempts: attempts, LockedUntil: &until}, true, 0
	}
	return domain.LoginState{FailedAttempts: attempts}, false, p.MaxAttempts - attempts
}

// Reset is the success transition: zero failures, no lock.
func (p LockoutPolicy) Reset() domain.LoginState {
	return domain.LoginState{}
}
