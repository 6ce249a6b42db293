package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/seino914/user-auth-service/internal/auth/domain"
	errs "github.com/seino914/user-auth-service/internal/errors"
)

const uniqueViolationCode = "23505"

// DB is the slice of pgxpool.Pool the repositories need; pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type AccountRepository struct {
	db DB
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, email, name, company, password_hash, failed_login_attempts, locked_until, created_at, updated_at`

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1 LIMIT 1;`

	account, err := r.scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 LIMIT 1;`

	account, err := r.scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID, &account.Email, &account.Name, &account.Company,
		&account.PasswordHash, &account.FailedLoginAttempts, &account.LockedUntil,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (id, email, name, company, password_hash, failed_login_attempts, locked_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, account.ID, account.Email, account.Name, account.Company, account.PasswordHash,
		account.FailedLoginAttempts, account.LockedUntil, account.CreatedAt, account.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return errs.ErrDuplicateEmail
	}

	return err
}

// UpdateLoginState writes the lockout counters only if the stored row
// still carries the expected values, making the read-modify-write an
// atomic compare-and-swap. It reports whether the row matched.
func (r *AccountRepository) UpdateLoginState(ctx context.Context, id string, expected, next domain.LoginState) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET failed_login_attempts = $2, locked_until = $3, updated_at = now()
		WHERE id = $1
		  AND failed_login_attempts = $4
		  AND locked_until IS NOT DISTINCT FROM $5
	`, id, next.FailedAttempts, next.LockedUntil, expected.FailedAttempts, expected.LockedUntil)
	if err != nil {
		return false, fmt.Errorf("failed to update login state: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
