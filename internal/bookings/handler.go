package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/multiservices/backend/internal/telemetry/metrics"
	"github.com/multiservices/backend/internal/telemetry/tracing"
	"github.com/multiservices/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=bookings_mocks_test.go -package=bookings_test

type bookingsRepo interface {
	Add(ctx context.Context, booking *Booking) (*Booking, error)
	Get(ctx context.Context, bookingId int) (*Booking, error)
	List(ctx context.Context) ([]Booking, error)
	Update(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type ListResponse struct {
	Bookings []Booking `json:"bookings"`
	Total    int       `json:"total"`
}

type UpdateBookingResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo    bookingsRepo
	metrics *metrics.Manager
}

func NewHandler(repo bookingsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/bookings", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-booking")
	router.HandleFunc("/bookings", handler.HandleList).Methods("GET", "OPTIONS").Name("list-bookings")
	router.HandleFunc("/bookings/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-booking")
	router.HandleFunc("/bookings/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-booking")
	router.HandleFunc("/bookings/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-booking")
}

// HandleAdd is the public booking submission, no auth middleware in
// front of it. Status and creation time are never taken from the
// client.
func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bookings.new")
	defer span.End()

	var booking Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		log.Tracef("new booking, unmarshal json params: %s", err)
		http.Error(w, "add booking failed", http.StatusBadRequest)
		return
	}

	if booking.Name == "" || booking.Email == "" {
		http.Error(w, "error, booking name or email empty", http.StatusBadRequest)
		return
	}
	if booking.ServiceId <= 0 {
		http.Error(w, "error, service id invalid", http.StatusBadRequest)
		return
	}
	if booking.AppointmentTime.IsZero() {
		http.Error(w, "error, appointment time empty", http.StatusBadRequest)
		return
	}

	booking.Id = 0
	booking.Status = StatusPending
	booking.CreatedAt = time.Now().UTC()

	addedBooking, err := handler.repo.Add(ctx, &booking)
	if err != nil {
		log.Errorf("failed to add new booking [%s] [service %d]: %s", booking.Email, booking.ServiceId, err)
		http.Error(w, "error, failed to add new booking", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterBookingsCreated.Inc()

	log.Debugf("new booking added: [%s] [service %d]: %d", addedBooking.Email, addedBooking.ServiceId, addedBooking.Id)
	pkg.SendJsonResponse(w, http.StatusCreated, addedBooking)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bookings.list")
	defer span.End()

	bookings, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list bookings error: %s", err)
		http.Error(w, "failed to get bookings", http.StatusInternalServerError)
		return
	}

	if len(bookings) == 0 {
		bookings = []Booking{}
	}

	pkg.SendJsonResponse(w, http.StatusOK, ListResponse{
		Bookings: bookings,
		Total:    len(bookings),
	})
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bookings.get")
	defer span.End()

	id, err := handler.bookingIdFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			http.Error(w, "booking not found", http.StatusNotFound)
			return
		}
		log.Errorf("get booking %d: %s", id, err)
		http.Error(w, "failed to get booking", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, booking)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bookings.update")
	defer span.End()

	id, err := handler.bookingIdFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var booking Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		log.Tracef("update booking, unmarshal json params: %s", err)
		http.Error(w, "update booking failed", http.StatusBadRequest)
		return
	}
	booking.Id = id

	if booking.Name == "" || booking.Email == "" {
		http.Error(w, "error, booking name or email empty", http.StatusBadRequest)
		return
	}
	if booking.Status == "" {
		booking.Status = StatusPending
	}

	if err := handler.repo.Update(ctx, &booking); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			http.Error(w, "booking not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update booking %d: %s", id, err)
		http.Error(w, "error, failed to update booking", http.StatusInternalServerError)
		return
	}

	pkg.SendJsonResponse(w, http.StatusOK, UpdateBookingResponse{UpdatedID: id})
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bookings.delete")
	defer span.End()

	id, err := handler.bookingIdFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			http.Error(w, "booking not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete booking %d: %s", id, err)
		http.Error(w, "error, booking not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) bookingIdFromRequest(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("error, id NaN")
	}
	return id, nil
}
