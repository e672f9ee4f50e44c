package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every structural failure: bad signature, malformed
// payload, missing subject, or expiry in the past.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies stateless access tokens. Claims are the
// minimal {sub, exp} pair; there is no server-side revocation, so a token
// stays valid until its expiry.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenManager builds a TokenManager for the given symmetric secret,
// algorithm name (HS256, HS384 or HS512) and default TTL.
func NewTokenManager(secret, algorithm string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt: empty signing secret")
	}
	var method jwt.SigningMethod
	switch algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("jwt: unsupported algorithm %q", algorithm)
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenManager{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// Issue signs a token for the subject using the configured default TTL.
func (m *TokenManager) Issue(subject string) (string, time.Time, error) {
	return m.IssueWithTTL(subject, m.ttl)
}

// IssueWithTTL signs a token for the subject with an explicit TTL.
func (m *TokenManager) IssueWithTTL(subject string, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	t := jwt.NewWithClaims(m.method, claims)
	s, err := t.SignedString(m.secret)
	return s, exp, err
}

// Verify checks signature and expiry and returns the subject. It does not
// consult any store; callers re-check the subject against live user state.
func (m *TokenManager) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
