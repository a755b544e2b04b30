package auth

import (
	"net/http"

	"github.com/multiservices/backend/internal/telemetry/metrics"
	"github.com/multiservices/backend/internal/telemetry/tracing"
	"github.com/multiservices/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// Handler drives the admin login flow:
// login redirect -> google -> callback -> session cookie.
type Handler struct {
	provider     IdentityProvider
	tokenService *TokenService
	stateStore   *StateStore
	admins       Admins
	cookieSecure bool
	metrics      *metrics.Manager
}

func NewHandler(
	provider IdentityProvider,
	tokenService *TokenService,
	stateStore *StateStore,
	admins Admins,
	cookieSecure bool,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		provider:     provider,
		tokenService: tokenService,
		stateStore:   stateStore,
		admins:       admins,
		cookieSecure: cookieSecure,
		metrics:      metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/auth/login", handler.handleLogin).Methods("GET").Name("auth-login")
	router.HandleFunc("/auth/callback", handler.handleCallback).Methods("GET").Name("auth-callback")
	router.HandleFunc("/auth/logout", handler.handleLogout).Methods("GET").Name("auth-logout")
}

// handleLogin sends the browser to the google login page
func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	state, err := handler.stateStore.Create(ctx)
	if err != nil {
		log.Errorf("login: failed to create oauth state: %s", err)
		http.Error(w, "login currently unavailable", http.StatusInternalServerError)
		span.SetStatus(codes.Error, "create-state-failed")
		return
	}

	redirectURL := handler.provider.AuthCodeURL(state)
	log.Debugf("initiating google oauth login, redirecting to provider")
	span.SetStatus(codes.Ok, "redirected")
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// handleCallback finishes the google login: checks the state nonce,
// exchanges the code for a verified email, and - for the admin only -
// mints the session token and sets the cookie
func (handler *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.callback")
	defer span.End()

	state := r.URL.Query().Get("state")
	stateOk, err := handler.stateStore.Consume(ctx, state)
	if err != nil {
		log.Errorf("oauth callback: state check failed: %s", err)
		http.Error(w, "login currently unavailable", http.StatusInternalServerError)
		span.SetStatus(codes.Error, "state-check-failed")
		return
	}
	if !stateOk {
		log.Warnf("oauth callback: state mismatch")
		http.Error(w, "state mismatch", http.StatusForbidden)
		span.SetStatus(codes.Error, "state-mismatch")
		return
	}

	email, err := handler.provider.VerifiedEmail(ctx, r.URL.Query().Get("code"))
	if err != nil {
		log.Errorf("oauth callback failed: %s", err)
		http.Error(w, "OAuth authentication failed", http.StatusBadRequest)
		span.SetStatus(codes.Error, "oauth-failed")
		return
	}

	if email == "" {
		log.Warnf("oauth callback: no email in provider response")
		http.Error(w, "Email not found in token", http.StatusBadRequest)
		span.SetStatus(codes.Error, "no-email")
		return
	}

	if !handler.admins.Contains(email) {
		reqIp, _ := pkg.ReadUserIP(r)
		log.Warnf("unauthorized login attempt by [%s] from %s", email, reqIp)
		handler.metrics.CounterFailedAuth.WithLabelValues("not-admin").Inc()
		http.Error(w, "Access denied: only the admin can log in", http.StatusForbidden)
		span.SetStatus(codes.Error, "not-admin")
		return
	}

	token, err := handler.tokenService.Issue(email)
	if err != nil {
		log.Errorf("oauth callback: failed to issue token for %s: %s", email, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		span.SetStatus(codes.Error, "issue-token-failed")
		return
	}

	SetSessionCookie(w, token, handler.tokenService.TTL(), handler.cookieSecure)
	handler.metrics.CounterAdminLogins.Inc()

	log.Infof("admin login successful for %s, token issued", NormalizeEmail(email))
	span.SetStatus(codes.Ok, "logged-in")
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// handleLogout clears the session cookie. Never an error, even when
// there was no session to begin with.
func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	ClearSessionCookie(w, handler.cookieSecure)
	log.Infoln("admin logged out")
	span.SetStatus(codes.Ok, "logged-out")
	http.Redirect(w, r, "/", http.StatusFound)
}
