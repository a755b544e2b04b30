package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the iss claim value of every token this backend mints
const Issuer = "multi-service-backend"

const DefaultTokenTTL = 8 * time.Hour

// TokenService mints and verifies the signed admin session tokens (HS256).
// Stateless and safe for concurrent use: the secret and admin set are
// set once at startup and never mutated.
type TokenService struct {
	secret []byte
	admins Admins
	ttl    time.Duration

	// ability to inject the clock for unit testing
	NowFunc func() time.Time
}

func NewTokenService(secret string, admins Admins, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret:  []byte(secret),
		admins:  admins,
		ttl:     ttl,
		NowFunc: time.Now,
	}
}

func (ts *TokenService) TTL() time.Duration {
	return ts.ttl
}

// Issue mints a signed token for the given email. The email must belong
// to the admin set - callers check that before calling, but the service
// refuses to mint for strangers regardless.
func (ts *TokenService) Issue(email string) (string, error) {
	if !ts.admins.Contains(email) {
		return "", ErrNotAdmin
	}

	now := ts.NowFunc()
	claims := jwt.RegisteredClaims{
		Subject:   NormalizeEmail(email),
		Issuer:    Issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry, then makes sure the subject is an
// authorized admin. Returns the verified identity on success.
//
// Failure modes, in order:
//   - ErrNoToken: empty token string
//   - ErrInvalidToken: malformed, wrong signature or expired (single
//     catch-all, the caller gets no malformed-vs-expired distinction)
//   - ErrNotAdmin: valid token for somebody who is not the admin
func (ts *TokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrNoToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return ts.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	email := NormalizeEmail(claims.Subject)
	if !ts.admins.Contains(email) {
		return "", ErrNotAdmin
	}

	return email, nil
}
