package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/multiservices/backend/internal/auth"
	"github.com/multiservices/backend/internal/telemetry/metrics"
	"github.com/multiservices/backend/internal/telemetry/tracing"
	"github.com/multiservices/backend/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type adminVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddlewareHandler guards every admin route: requests reach the
// wrapped handlers only with a verified admin session cookie. Public
// routes are listed explicitly, everything else is closed by default.
type AuthMiddlewareHandler struct {
	verifier adminVerifier
	metrics  *metrics.Manager

	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(
	verifier adminVerifier,
	metricsManager *metrics.Manager,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		verifier: verifier,
		metrics:  metricsManager,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
		},
		allowedPathsPrefixes: []string{
			"/auth/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// requestIsPublic: the two catalog-facing operations anyone may call
func (h *AuthMiddlewareHandler) requestIsPublic(r *http.Request) bool {
	path := strings.TrimSuffix(r.URL.Path, "/")
	switch {
	case r.Method == http.MethodGet && path == "/services":
		return true
	case r.Method == http.MethodPost && path == "/bookings":
		return true
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) || h.requestIsPublic(r) {
				span.SetStatus(codes.Ok, "public")
				next.ServeHTTP(w, r)
				return
			}

			token, err := auth.ReadSessionCookie(r)
			if err != nil {
				reqIp, _ := pkg.ReadUserIP(r)
				log.Warnf("[missing token] unauthorized request from %s => %s", reqIp, r.URL.Path)
				h.metrics.CounterFailedAuth.WithLabelValues("missing-token").Inc()
				http.Error(w, "Missing authentication token", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-token")
				return
			}

			adminEmail, err := h.verifier.Verify(token)
			switch {
			case err == nil:
				// verified, proceed below
			case errors.Is(err, auth.ErrNotAdmin):
				reqIp, _ := pkg.ReadUserIP(r)
				log.Warnf("[access denied] valid token for non-admin from %s => %s", reqIp, r.URL.Path)
				h.metrics.CounterFailedAuth.WithLabelValues("not-admin").Inc()
				http.Error(w, "Access denied: not an authorized admin", http.StatusForbidden)
				span.SetStatus(codes.Error, "not-admin")
				return
			default:
				log.Warnf("[invalid token] unauthorized => %s: %s", r.URL.Path, err)
				h.metrics.CounterFailedAuth.WithLabelValues("invalid-token").Inc()
				http.Error(w, "Invalid or expired authentication token", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			log.Tracef("admin token verified for %s => %s", adminEmail, r.URL.Path)
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.SetVerifiedAdmin(ctx, adminEmail)))
		})
	}
}
