package bookings

import "time"

// booking status lifecycle, stored as plain text
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDone      = "done"
	StatusCancelled = "cancelled"
)

// Booking is a single appointment request submitted by a client for
// one of the catalog services.
type Booking struct {
	Id              int       `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	ServiceId       int       `json:"service_id"`
	Message         string    `json:"message,omitempty"`
	AppointmentTime time.Time `json:"appointment_time"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
