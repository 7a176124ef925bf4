// Package token issues and verifies the HS256 bearer tokens used by the
// API. Tokens are stateless: verification checks signature and expiry only,
// there is no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures are distinguishable here for logging and metrics;
// callers collapse all of them to a single unauthenticated outcome.
var (
	ErrMalformed    = errors.New("malformed token")
	ErrBadSignature = errors.New("invalid token signature")
	ErrExpired      = errors.New("token expired")
)

// Claims is the payload carried by every issued token. Subject holds the
// stable user id; Username is embedded for convenience only and must not be
// used for authorization decisions.
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies tokens with a process-wide secret and TTL.
// The clock is injectable so expiry behaviour is testable without sleeping.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

const defaultTTL = 24 * time.Hour

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Issue signs a token asserting userID (and optionally username), expiring
// after the configured TTL.
func (i *Issuer) Issue(userID, username string) (string, error) {
	now := i.now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and validates a raw token string, returning its claims.
// Failures map to ErrExpired, ErrBadSignature, or ErrMalformed.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrMalformed
		}
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}
