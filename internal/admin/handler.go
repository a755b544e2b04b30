package admin

import (
	"context"
	"net/http"

	"github.com/multiservices/backend/internal/auth"
	"github.com/multiservices/backend/internal/telemetry/tracing"
	"github.com/multiservices/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type counter interface {
	Count(ctx context.Context) (int, error)
}

type DashboardResponse struct {
	Message       string `json:"message"`
	Admin         string `json:"admin"`
	ServicesTotal int    `json:"servicesTotal"`
	BookingsTotal int    `json:"bookingsTotal"`
}

// Handler serves the admin dashboard landing. It sits behind the auth
// middleware, the verified admin identity comes from the request
// context.
type Handler struct {
	servicesCounter counter
	bookingsCounter counter
}

func NewHandler(servicesCounter, bookingsCounter counter) *Handler {
	return &Handler{
		servicesCounter: servicesCounter,
		bookingsCounter: bookingsCounter,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/admin", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("admin-dashboard")
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.admin.dashboard")
	defer span.End()

	adminEmail, ok := auth.VerifiedAdminFromContext(ctx)
	if !ok {
		// auth middleware not in front of this handler, wiring bug
		log.Errorf("admin dashboard reached without verified admin in context")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	servicesTotal, err := handler.servicesCounter.Count(ctx)
	if err != nil {
		log.Errorf("admin dashboard, count services: %s", err)
		http.Error(w, "failed to get dashboard data", http.StatusInternalServerError)
		return
	}
	bookingsTotal, err := handler.bookingsCounter.Count(ctx)
	if err != nil {
		log.Errorf("admin dashboard, count bookings: %s", err)
		http.Error(w, "failed to get dashboard data", http.StatusInternalServerError)
		return
	}

	log.Debugf("admin %s accessed dashboard", adminEmail)

	pkg.SendJsonResponse(w, http.StatusOK, DashboardResponse{
		Message:       "Welcome to the Multi-Service admin dashboard!",
		Admin:         adminEmail,
		ServicesTotal: servicesTotal,
		BookingsTotal: bookingsTotal,
	})
}
