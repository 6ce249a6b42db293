package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/seino914/user-auth-service/internal/auth/domain"
	"github.com/seino914/user-auth-service/internal/auth/dto"
	errs "github.com/seino914/user-auth-service/internal/errors"
	"github.com/seino914/user-auth-service/pkg/constant"
	"github.com/sirupsen/logrus"
)

// AuthService composes the password policy, the token service, the
// lockout policy and the revocation store into the login, registration
// and logout flows.
type AuthService struct {
	repo      domain.AccountRepository
	blacklist domain.TokenBlacklist
	tokens    TokenIssuer
	passwords PasswordHasher
	lockout   LockoutPolicy
	log       *logrus.Logger

	// Now is the clock for lockout arithmetic; tests override it.
	Now func() time.Time
}

func NewAuthService(
	repo domain.AccountRepository,
	blacklist domain.TokenBlacklist,
	tokens TokenIssuer,
	passwords PasswordHasher,
	lockout LockoutPolicy,
	log *logrus.Logger,
) *AuthService {
	return &AuthService{
		repo:      repo,
		blacklist: blacklist,
		tokens:    tokens,
		passwords: passwords,
		lockout:   lockout,
		log:       log,
		Now:       time.Now,
	}
}

// Login verifies the credentials and issues a session token.
//
// The caller cannot distinguish "email not found" from "password wrong":
// both come back as InvalidCredentialsError, and the no-account branch
// still burns one bcrypt comparison so the two cost the same.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	account, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("login: account lookup: %w", err)
	}

	if account != nil {
		now := s.Now()
		if locked, minutes := s.lockout.IsLocked(account.State(), now); locked {
			s.log.WithField("email", account.Email).Info("login rejected: account locked")
			return nil, &errs.AccountLockedError{RemainingMinutes: minutes}
		}
		if s.lockout.LockExpired(account.State(), now) {
			// Lock window elapsed: lazily reset to Open before the
			// credential is evaluated.
			if err := s.resetLoginState(ctx, account); err != nil {
				return nil, fmt.Errorf("login: clear expired lock: %w", err)
			}
		}
	}

	if account == nil || account.PasswordHash == nil {
		s.passwords.DummyCompare(input.Password)
		s.log.WithField("email", input.Email).Info("login rejected: unknown account or no local credential")
		return nil, &errs.InvalidCredentialsError{RemainingAttempts: -1}
	}

	if !s.passwords.Compare(input.Password, *account.PasswordHash) {
		return nil, s.recordFailedAttempt(ctx, account)
	}

	if err := s.resetLoginState(ctx, account); err != nil {
		return nil, fmt.Errorf("login: reset counters: %w", err)
	}

	token, err := s.tokens.Sign(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.log.WithField("email", account.Email).Info("user logged in")

	return &dto.LoginOutput{
		AccessToken: token,
		User:        dto.NewUserOutput(account),
	}, nil
}

// Register creates an account after the duplicate and strength checks.
// A unique-constraint violation from the store is re-reported as
// email-already-in-use: the existence check and the insert can race,
// and the constraint is authoritative.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserOutput, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("register: account lookup: %w", err)
	}
	if existing != nil {
		s.log.WithField("email", input.Email).Info("registration rejected: email already in use")
		return nil, errs.ErrEmailAlreadyInUse
	}

	strength := s.passwords.CheckStrength(input.Password)
	if !strength.IsValid {
		s.log.WithField("email", input.Email).Info("registration rejected: weak password")
		return nil, &errs.WeakPasswordError{Violations: strength.Errors}
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := s.Now()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		Company:      input.Company,
		PasswordHash: &hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, errs.ErrDuplicateEmail) {
			s.log.WithField("email", input.Email).Info("registration rejected: email already in use")
			return nil, errs.ErrEmailAlreadyInUse
		}
		return nil, fmt.Errorf("register: create account: %w", err)
	}

	s.log.WithField("email", account.Email).Info("user registered")

	out := dto.NewUserOutput(account)
	return &out, nil
}

// Logout revokes the token. It is best-effort and never fails visibly:
// the expiry of an unparseable token falls back to a conservative
// default, and a failed blacklist write is logged but swallowed, since
// the user's intent to end the session is honored either way.
func (s *AuthService) Logout(ctx context.Context, token string) {
	expiresAt := s.tokens.GetExpiration(token)

	if err := s.blacklist.Revoke(ctx, token, expiresAt); err != nil {
		s.log.WithError(err).Error("failed to blacklist token on logout")
		return
	}

	s.log.Info("user logged out")
}

// Authenticate is the token-validity gate for request authorization.
// The blacklist is consulted first so a revoked token is rejected even
// while its signature and expiry are still good; a blacklist error
// denies the token (fail closed).
func (s *AuthService) Authenticate(ctx context.Context, token string) (*TokenClaims, error) {
	revoked, err := s.blacklist.IsRevoked(ctx, token)
	if err != nil {
		s.log.WithError(err).Error("revocation check failed, denying token")
		return nil, &errs.InvalidTokenError{Reason: errs.TokenReasonRevoked}
	}
	if revoked {
		return nil, &errs.InvalidTokenError{Reason: errs.TokenReasonRevoked}
	}

	return s.tokens.Verify(token)
}

// GetAccount returns the public projection of an account, or nil when
// it does not exist.
func (s *AuthService) GetAccount(ctx context.Context, id string) (*dto.UserOutput, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if account == nil {
		return nil, nil
	}
	out := dto.NewUserOutput(account)
	return &out, nil
}

// PurgeExpiredTokens removes blacklist records whose expiry has passed.
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	count, err := s.blacklist.PurgeExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge expired tokens: %w", err)
	}
	if count > 0 {
		s.log.WithField("count", count).Info("purged expired tokens from blacklist")
	}
	return count, nil
}

// recordFailedAttempt applies the lockout failure transition and
// persists it with a conditional write, retrying on conflict so
// concurrent attempts against one account cannot overwrite each other's
// counters. The returned error is the business outcome for the caller.
func (s *AuthService) recordFailedAttempt(ctx context.Context, account *domain.Account) error {
	now := s.Now()

	for attempt := 0; ; attempt++ {
		next, locked, remaining := s.lockout.Fail(account.State(), now)

		ok, err := s.repo.UpdateLoginState(ctx, account.ID, account.State(), next)
		if err != nil {
			return fmt.Errorf("login: record failed attempt: %w", err)
		}
		if ok {
			if locked {
				s.log.WithField("email", account.Email).Warn("account locked: too many failed login attempts")
				_, minutes := s.lockout.IsLocked(next, now)
				return &errs.AccountLockedError{RemainingMinutes: minutes}
			}
			s.log.WithFields(logrus.Fields{
				"email":     account.Email,
				"remaining": remaining,
			}).Info("login rejected: wrong password")
			return &errs.InvalidCredentialsError{RemainingAttempts: remaining}
		}

		if attempt+1 >= constant.LoginStateMaxRetries {
			return fmt.Errorf("login: record failed attempt: too many conflicting updates")
		}

		fresh, err := s.repo.GetByID(ctx, account.ID)
		if err != nil {
			return fmt.Errorf("login: record failed attempt: %w", err)
		}
		if fresh == nil {
			return &errs.InvalidCredentialsError{RemainingAttempts: -1}
		}
		// A concurrent attempt may have tripped the lock already.
		if lockedNow, minutes := s.lockout.IsLocked(fresh.State(), now); lockedNow {
			return &errs.AccountLockedError{RemainingMinutes: minutes}
		}
		account = fresh
	}
}

// resetLoginState persists the success transition (zero failures, no
// lock) with the same bounded conditional-write loop. A state that is
// already clean is left untouched.
func (s *AuthService) resetLoginState(ctx context.Context, account *domain.Account) error {
	for attempt := 0; ; attempt++ {
		if account.State() == (domain.LoginState{}) {
			return nil
		}

		ok, err := s.repo.UpdateLoginState(ctx, account.ID, account.State(), s.lockout.Reset())
		if err != nil {
			return err
		}
		if ok {
			account.FailedLoginAttempts = 0
			account.LockedUntil = nil
			return nil
		}

		if attempt+1 >= constant.LoginStateMaxRetries {
			return errors.New("too many conflicting updates")
		}

		fresh, err := s.repo.GetByID(ctx, account.ID)
		if err != nil {
			return err
		}
		if fresh == nil {
			return errors.New("account disappeared during update")
		}
		*account = *fresh
	}
}
