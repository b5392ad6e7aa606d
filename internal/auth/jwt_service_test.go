package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJWTService_GenerateAndParse(t *testing.T) {
	svc := NewJWTService("test-secret", "HS256")

	token, err := svc.GenerateToken("user@test.com", 30*time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@test.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestJWTService_Expired(t *testing.T) {
	issuedAt := time.Date(2023, 7, 14, 12, 0, 0, 0, time.UTC)
	svc := NewJWTServiceWithClock("test-secret", "HS256", fixedClock(issuedAt))

	token, err := svc.GenerateToken("user@test.com", 30*time.Minute)
	assert.NoError(t, err)

	// One minute past the 30 minute window.
	svc.now = fixedClock(issuedAt.Add(31 * time.Minute))
	claims, err := svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)

	// Still inside the window parses fine.
	svc.now = fixedClock(issuedAt.Add(29 * time.Minute))
	claims, err = svc.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@test.com", claims.Subject)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := NewJWTService("test-secret", "HS256")

	valid, err := svc.GenerateToken("user@test.com", 30*time.Minute)
	assert.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	other := NewJWTService("other-secret", "HS256")
	wrongKey, err := other.GenerateToken("user@test.com", 30*time.Minute)
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "token-invalido"},
		{"empty", ""},
		{"tampered payload", tampered},
		{"wrong signing key", wrongKey},
		{"truncated", parts[0] + "." + parts[1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ParseToken(tt.token)
			// Every failure mode collapses to the same error.
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_UnknownAlgorithmFallsBack(t *testing.T) {
	svc := NewJWTService("test-secret", "RS256")

	token, err := svc.GenerateToken("user@test.com", time.Minute)
	assert.NoError(t, err)

	claims, err := svc.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@test.com", claims.Subject)
}
