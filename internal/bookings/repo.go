package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/multiservices/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrBookingNotFound = errors.New("booking not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, booking *Booking) (*Booking, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bookingsRepo.add")
	defer span.End()

	if booking.Name == "" || booking.Email == "" {
		return nil, errors.New("booking name or email empty")
	}
	if booking.AppointmentTime.IsZero() {
		return nil, errors.New("booking appointment time empty")
	}

	if booking.Status == "" {
		booking.Status = StatusPending
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO booking
			(name, email, phone, service_id, message, appointment_time, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		booking.Name, booking.Email, booking.Phone, booking.ServiceId,
		booking.Message, booking.AppointmentTime, booking.Status, booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	booking.Id = id
	return booking, nil
}

func (r *Repo) Get(ctx context.Context, bookingId int) (*Booking, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bookingsRepo.get")
	defer span.End()

	rows, err := r.db.Query(
		ctx,
		`SELECT
			id, name, email, phone, service_id, message, appointment_time, status, created_at
		FROM booking WHERE id = $1;`,
		bookingId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrBookingNotFound
	}

	var booking Booking
	if err := rows.Scan(
		&booking.Id, &booking.Name, &booking.Email, &booking.Phone, &booking.ServiceId,
		&booking.Message, &booking.AppointmentTime, &booking.Status, &booking.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *Repo) List(ctx context.Context) (_ []Booking, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bookingsRepo.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, email, phone, service_id, message, appointment_time, status, created_at
			FROM booking
			ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var bookings []Booking
	for rows.Next() {
		var booking Booking
		if err := rows.Scan(
			&booking.Id, &booking.Name, &booking.Email, &booking.Phone, &booking.ServiceId,
			&booking.Message, &booking.AppointmentTime, &booking.Status, &booking.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// Update writes all client-editable fields, created_at stays as set at insert
func (r *Repo) Update(ctx context.Context, booking *Booking) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bookingsRepo.update")
	defer span.End()

	if booking.Name == "" || booking.Email == "" {
		return errors.New("booking name or email empty")
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE booking
			SET name = $1, email = $2, phone = $3, service_id = $4,
				message = $5, appointment_time = $6, status = $7
			WHERE id = $8;`,
		booking.Name, booking.Email, booking.Phone, booking.ServiceId,
		booking.Message, booking.AppointmentTime, booking.Status, booking.Id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bookingsRepo.delete")
	defer span.End()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM booking WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bookingsRepo.count")
	defer span.End()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM booking;`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
