package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_CheckStrength(t *testing.T) {
	s := NewPasswordService()

	tests := []struct {
		name       string
		password   string
		valid      bool
		violations int
	}{
		{
			name:       "strong password",
			password:   "Password123",
			valid:      true,
			violations: 0,
		},
		{
			name:       "strong password without symbol is still valid",
			password:   "Aa1bcdef",
			valid:      true,
			violations: 0,
		},
		{
			name:       "fails every rule",
			password:   "abc",
			valid:      false,
			violations: 3, // short, no uppercase, no digit
		},
		{
			name:       "empty password fails everything",
			password:   "",
			valid:      false,
			violations: 4,
		},
		{
			name:       "too short",
			password:   "Pass1",
			valid:      false,
			violations: 1,
		},
		{
			name:       "multibyte characters count as one",
			password:   "Aa1ありが", // 6 characters, 12 bytes
			valid:      false,
			violations: 1,
		},
		{
			name:       "eight multibyte-heavy characters pass the length rule",
			password:   "Aa1ありがとう",
			valid:      true,
			violations: 0,
		},
		{
			name:       "no uppercase",
			password:   "password123",
			valid:      false,
			violations: 1,
		},
		{
			name:       "no lowercase",
			password:   "PASSWORD123",
			valid:      false,
			violations: 1,
		},
		{
			name:       "no digit",
			password:   "Passwordabc",
			valid:      false,
			violations: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.CheckStrength(tt.password)
			assert.Equal(t, tt.valid, result.IsValid)
			assert.Len(t, result.Errors, tt.violations)
		})
	}
}

// "abc" is lowercase-only, so it must collect the length, uppercase and
// digit violations together rather than stopping at the first.
func TestPasswordService_CheckStrength_CollectsAllViolations(t *testing.T) {
	s := NewPasswordService()

	result := s.CheckStrength("abc")
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "password must be at least 8 characters long")
	assert.Contains(t, result.Errors, "password must contain an uppercase letter")
	assert.Contains(t, result.Errors, "password must contain a digit")
}

func TestPasswordService_HashAndCompare(t *testing.T) {
	s := NewPasswordService()

	hash, err := s.Hash("Password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123", hash)

	assert.True(t, s.Compare("Password123", hash))
	assert.False(t, s.Compare("Password124", hash))
	assert.False(t, s.Compare("", hash))
}

func TestPasswordService_Hash_Salted(t *testing.T) {
	s := NewPasswordService()

	first, err := s.Hash("Password123")
	require.NoError(t, err)
	second, err := s.Hash("Password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordService_DummyCompare(t *testing.T) {
	s := NewPasswordService()

	// Must never match and never panic, whatever the input.
	s.DummyCompare("")
	s.DummyCompare("Password123")
	s.DummyCompare("secret")
}
