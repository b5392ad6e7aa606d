package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for every token the codec rejects: malformed,
// tampered, signed with the wrong method or key, or expired. The cases are
// deliberately not distinguishable by the caller.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the registered JWT claims; the subject is the user's email.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService signs and verifies bearer tokens with a process-wide secret.
type JWTService struct {
	secret []byte
	method jwt.SigningMethod
	now    func() time.Time
}

// NewJWTService creates a codec for the given secret and HMAC algorithm
// identifier (e.g. "HS256"). Unknown identifiers fall back to HS256.
func NewJWTService(secret, algorithm string) *JWTService {
	return NewJWTServiceWithClock(secret, algorithm, time.Now)
}

// NewJWTServiceWithClock creates a codec with an injected clock, used by
// tests to exercise expiry without sleeping.
func NewJWTServiceWithClock(secret, algorithm string, now func() time.Time) *JWTService {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &JWTService{
		secret: []byte(secret),
		method: method,
		now:    now,
	}
}

// GenerateToken signs a token whose subject is the given identity, valid
// from now (UTC) for the given lifetime.
func (s *JWTService) GenerateToken(subject string, lifetime time.Duration) (string, error) {
	now := s.now().UTC()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies signature and expiry and returns the claims. All
// failures collapse to ErrInvalidToken.
func (s *JWTService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
