package postgres

import (
	"context"
	"database/sql"
	"time"

	"designdesk/internal/domain"

	"github.com/lib/pq"
)

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(db *sql.DB) domain.AppointmentRepository {
	return &AppointmentRepository{
		DB: db,
	}
}

const appointmentColumns = `id, title, description, category, start_time, end_time, location, customer_id, assigned_staff_id, created_by_staff_id, status, created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }) (*domain.Appointment, error) {
	a := &domain.Appointment{}
	var customerID sql.NullString
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Category, &a.Start, &a.End,
		&a.Location, &customerID, &a.AssignedStaffID, &a.CreatedByStaffID, &a.Status,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.CustomerID = customerID.String
	return a, nil
}

func nullableID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	query := `
		INSERT INTO appointments (title, description, category, start_time, end_time, location, customer_id, assigned_staff_id, created_by_staff_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		a.Title, a.Description, a.Category, a.Start, a.End, a.Location,
		nullableID(a.CustomerID), a.AssignedStaffID, a.CreatedByStaffID, a.Status,
		a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	a, err := scanAppointment(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *domain.Appointment) error {
	query := `
		UPDATE appointments
		SET title = $2, description = $3, category = $4, start_time = $5, end_time = $6,
		    location = $7, customer_id = $8, assigned_staff_id = $9, status = $10, updated_at = $11
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		a.ID, a.Title, a.Description, a.Category, a.Start, a.End, a.Location,
		nullableID(a.CustomerID), a.AssignedStaffID, a.Status, a.UpdatedAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) SetStatus(ctx context.Context, id string, status domain.Status) error {
	query := `UPDATE appointments SET status = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) ListActiveByStaff(ctx context.Context, staffID string, from, to time.Time) ([]*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE assigned_staff_id = $1
		  AND status <> $2
		  AND start_time < $4 AND end_time > $3
		ORDER BY start_time
	`
	return r.list(ctx, query, staffID, domain.StatusCancelled, from, to)
}

func (r *AppointmentRepository) ListInRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE start_time < $2 AND end_time > $1
		ORDER BY start_time
	`
	return r.list(ctx, query, from, to)
}

func (r *AppointmentRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentRepository) ListActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `
		SELECT id
		FROM appointments
		WHERE end_time < $1
		  AND status IN ($2, $3, $4)
	`
	rows, err := r.DB.QueryContext(ctx, query, cutoff,
		domain.StatusScheduled, domain.StatusConfirmed, domain.StatusInProgress)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *AppointmentRepository) SetStatuses(ctx context.Context, ids []string, status domain.Status) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE appointments SET status = $2, updated_at = NOW() WHERE id = ANY($1)`
	_, err := r.DB.ExecContext(ctx, query, pq.Array(ids), status)
	return err
}
