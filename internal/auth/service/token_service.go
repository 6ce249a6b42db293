package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/seino914/user-auth-service/internal/auth/service TokenIssuer

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errs "github.com/seino914/user-auth-service/internal/errors"
	"github.com/seino914/user-auth-service/pkg/constant"
)

type TokenIssuer interface {
	Sign(userID, email string) (string, error)
	Verify(tokenString string) (*TokenClaims, error)
	GetExpiration(tokenString string) time.Time
}

type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// UserID returns the token subject.
func (c *TokenClaims) UserID() string {
	return c.Subject
}

type TokenService struct {
	Secret        string
	TokenValidity time.Duration

	// Now is the clock used for issuance and verification; tests
	// override it to drive expiry.
	Now func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		Secret:        secret,
		TokenValidity: constant.TokenValidity,
		Now:           time.Now,
	}
}

// Sign issues an HS256 session token for the given subject. The payload
// is signed, not encrypted, so it carries nothing sensitive.
func (ts *TokenService) Sign(userID, email string) (string, error) {
	now := ts.Now()

	claims := TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.TokenValidity)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the token, mapping failures to a typed
// rejection reason.
func (ts *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	}, jwt.WithTimeFunc(ts.Now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, &errs.InvalidTokenError{Reason: errs.TokenReasonExpired}
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, &errs.InvalidTokenError{Reason: errs.TokenReasonBadSignature}
		default:
			return nil, &errs.InvalidTokenError{Reason: errs.TokenReasonMalformed}
		}
	}

	if !token.Valid {
		return nil, &errs.InvalidTokenError{Reason: errs.TokenReasonMalformed}
	}

	return claims, nil
}

// GetExpiration extracts the token's expiry without requiring a valid
// signature, so revocation bookkeeping works even for tampered or
// expired tokens. Unparseable tokens fall back to now plus the full
// validity window, which retains them long enough to stay revoked.
func (ts *TokenService) GetExpiration(tokenString string) time.Time {
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil || claims.ExpiresAt == nil {
		return ts.Now().Add(ts.TokenValidity)
	}
	return claims.ExpiresAt.Time
}
