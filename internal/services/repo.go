package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/multiservices/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrServiceNotFound = errors.New("service not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, service *Service) (*Service, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "servicesRepo.add")
	defer span.End()

	if service.Name == "" {
		return nil, errors.New("service name empty")
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO service (name, description, price, duration_min, active)
			VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		service.Name, service.Description, service.Price, service.DurationMin, service.Active,
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

	service.Id = id
	return service, nil
}

func (r *Repo) Get(ctx context.Context, serviceId int) (*Service, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "servicesRepo.get")
	defer span.End()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, price, duration_min, active FROM service WHERE id = $1;`,
		serviceId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrServiceNotFound
	}

	var service Service
	if err := rows.Scan(
		&service.Id, &service.Name, &service.Description,
		&service.Price, &service.DurationMin, &service.Active,
	); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *Repo) List(ctx context.Context) (_ []Service, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "servicesRepo.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, description, price, duration_min, active
			FROM service
			ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var services []Service
	for rows.Next() {
		var service Service
		if err := rows.Scan(
			&service.Id, &service.Name, &service.Description,
			&service.Price, &service.DurationMin, &service.Active,
		); err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	return services, nil
}

func (r *Repo) Update(ctx context.Context, service *Service) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "servicesRepo.update")
	defer span.End()

	if service.Name == "" {
		return errors.New("service name empty")
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE service
			SET name = $1, description = $2, price = $3, duration_min = $4, active = $5
			WHERE id = $6;`,
		service.Name, service.Description, service.Price,
		service.DurationMin, service.Active, service.Id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Delete removes a service; bookings referencing it go away with it
// through the FK cascade
func (r *Repo) Delete(ctx context.Context, id int) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "servicesRepo.delete")
	defer span.End()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM service WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "servicesRepo.count")
	defer span.End()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM service;`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
