package service

//go:generate mockgen -destination=../../mocks/mock_password_hasher.go -package=mocks github.com/seino914/user-auth-service/internal/auth/service PasswordHasher

import (
	"unicode"
	"unicode/utf8"

	"github.com/seino914/user-auth-service/pkg/constant"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a fixed, pre-computed bcrypt hash (cost 10) that no
// supplied password can match. Login compares against it whenever there
// is no stored hash to compare with, so the unknown-email and
// wrong-password branches cost the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type StrengthResult struct {
	IsValid bool
	Errors  []string
}

type PasswordHasher interface {
	CheckStrength(password string) StrengthResult
	Hash(password string) (string, error)
	Compare(password, hash string) bool
	DummyCompare(password string)
}

type PasswordService struct {
	cost int
}

func NewPasswordService() *PasswordService {
	return &PasswordService{cost: constant.BcryptCost}
}

// CheckStrength collects every violated rule instead of stopping at the
// first. A symbol requirement is deliberately advisory only.
func (s *PasswordService) CheckStrength(password string) StrengthResult {
	var violations []string

	// Length is measured in characters, not bytes, so multibyte input
	// is not silently under-counted.
	if utf8.RuneCountInString(password) < constant.MinPasswordLength {
		violations = append(violations, "password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		violations = append(violations, "password must contain an uppercase letter")
	}
	if !hasLower {
		violations = append(violations, "password must contain a lowercase letter")
	}
	if !hasDigit {
		violations = append(violations, "password must contain a digit")
	}

	return StrengthResult{IsValid: len(violations) == 0, Errors: violations}
}

func (s *PasswordService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether password matches hash. bcrypt's own
// comparison is constant-time over the digest.
func (s *PasswordService) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyCompare burns one full bcrypt comparison and discards the
// result. See dummyHash.
func (s *PasswordService) DummyCompare(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
