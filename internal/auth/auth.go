package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNoToken - no token present on the request at all
	ErrNoToken = errors.New("missing authentication token")
	// ErrInvalidToken - token present but malformed, wrongly signed or expired
	ErrInvalidToken = errors.New("invalid or expired authentication token")
	// ErrNotAdmin - token fine, but the identity within is not an authorized admin
	ErrNotAdmin = errors.New("access denied: not an authorized admin")
)

// NormalizeEmail is the single comparison policy for admin identities.
// Applied at issuance and verification alike, so case differences in what
// google returns can never lock the admin out.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Admins is the set of identities allowed to use admin routes.
// Currently always a set of one, but kept as a set so adding admins
// stays a data change.
type Admins map[string]struct{}

func NewAdmins(emails ...string) Admins {
	admins := make(Admins, len(emails))
	for _, e := range emails {
		if e = NormalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return admins
}

func (a Admins) Contains(email string) bool {
	_, ok := a[NormalizeEmail(email)]
	return ok
}

func (a Admins) Empty() bool {
	return len(a) == 0
}

type ctxKey string

const verifiedAdminCtxKey ctxKey = "verified-admin"

// SetVerifiedAdmin stores the verified admin identity on the context,
// for audit logging further down the handler chain
func SetVerifiedAdmin(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, verifiedAdminCtxKey, email)
}

func VerifiedAdminFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(verifiedAdminCtxKey).(string)
	return email, ok
}
