package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bookora/bookora_backend/internal/model"
	"github.com/bookora/bookora_backend/internal/service/booking"
)

const appointmentColumns = `
	id, owner_id, customer_name, service_id, service_name,
	staff_id, staff_name, day, start_time, end_time,
	status, queue_position, created_at, updated_at`

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.CustomerName,
		&a.ServiceID,
		&a.ServiceName,
		&a.StaffID,
		&a.StaffName,
		&a.Day,
		&a.StartTime,
		&a.EndTime,
		&a.Status,
		&a.QueuePosition,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (q queries) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	return q.db.QueryRow(ctx, `
		INSERT INTO appointments
			(id, owner_id, customer_name, service_id, service_name,
			 staff_id, staff_name, day, start_time, end_time,
			 status, queue_position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`, a.ID, a.OwnerID, a.CustomerName, a.ServiceID, a.ServiceName,
		a.StaffID, a.StaffName, a.Day, a.StartTime, a.EndTime,
		a.Status, a.QueuePosition).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (q queries) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	return q.db.QueryRow(ctx, `
		UPDATE appointments
		SET customer_name = $3,
			staff_id = $4,
			staff_name = $5,
			start_time = $6,
			end_time = $7,
			status = $8,
			queue_position = $9,
			updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING updated_at
	`, a.ID, a.OwnerID, a.CustomerName, a.StaffID, a.StaffName,
		a.StartTime, a.EndTime, a.Status, a.QueuePosition).Scan(&a.UpdatedAt)
}

func (q queries) AppointmentByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Appointment, error) {
	return scanAppointment(q.db.QueryRow(ctx, `
		SELECT`+appointmentColumns+`
		FROM appointments
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID))
}

func (q queries) DeleteAppointment(ctx context.Context, ownerID, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM appointments WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	return err
}

func (q queries) ListAppointments(ctx context.Context, ownerID uuid.UUID, f booking.ListFilter) ([]model.Appointment, error) {
	sql := `
		SELECT` + appointmentColumns + `
		FROM appointments
		WHERE owner_id = $1`
	args := []any{ownerID}
	if f.Day != nil {
		args = append(args, booking.Midnight(*f.Day))
		sql += ` AND day = $2`
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		if f.Day != nil {
			sql += ` AND status = $3`
		} else {
			sql += ` AND status = $2`
		}
	}
	sql += ` ORDER BY day, start_time, created_at`

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (q queries) DayLoad(ctx context.Context, ownerID, staffID uuid.UUID, day time.Time) (int, error) {
	var count int
	err := q.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM appointments
		WHERE owner_id = $1 AND staff_id = $2 AND day = $3
		  AND status IN ('Waiting', 'Scheduled', 'Completed')
	`, ownerID, staffID, day).Scan(&count)
	return count, err
}

// Conflicting finds the first scheduled appointment of the staff member
// whose half-open window intersects [start, end).
func (q queries) Conflicting(ctx context.Context, ownerID, staffID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (*model.Appointment, error) {
	return scanAppointment(q.db.QueryRow(ctx, `
		SELECT`+appointmentColumns+`
		FROM appointments
		WHERE owner_id = $1 AND staff_id = $2
		  AND status = 'Scheduled'
		  AND start_time < $4 AND end_time > $3
		  AND ($5::uuid IS NULL OR id <> $5)
		ORDER BY start_time
		LIMIT 1
	`, ownerID, staffID, start, end, exclude))
}

func (q queries) CountWaiting(ctx context.Context, ownerID, serviceID uuid.UUID) (int, error) {
	var count int
	err := q.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM appointments
		WHERE owner_id = $1 AND service_id = $2 AND status = 'Waiting'
	`, ownerID, serviceID).Scan(&count)
	return count, err
}

func (q queries) NextWaiting(ctx context.Context, ownerID, serviceID uuid.UUID) (*model.Appointment, error) {
	return scanAppointment(q.db.QueryRow(ctx, `
		SELECT`+appointmentColumns+`
		FROM appointments
		WHERE owner_id = $1 AND service_id = $2 AND status = 'Waiting'
		ORDER BY queue_position
		LIMIT 1
	`, ownerID, serviceID))
}

func (q queries) CloseQueueGap(ctx context.Context, ownerID, serviceID uuid.UUID, vacated int) error {
	_, err := q.db.Exec(ctx, `
		UPDATE appointments
		SET queue_position = queue_position - 1,
			updated_at = now()
		WHERE owner_id = $1 AND service_id = $2
		  AND status = 'Waiting' AND queue_position > $3
	`, ownerID, serviceID, vacated)
	return err
}

func (q queries) ListWaiting(ctx context.Context, ownerID uuid.UUID) ([]model.Appointment, error) {
	rows, err := q.db.Query(ctx, `
		SELECT`+appointmentColumns+`
		FROM appointments
		WHERE owner_id = $1 AND status = 'Waiting'
		ORDER BY service_name, queue_position
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func collectAppointments(rows pgx.Rows) ([]model.Appointment, error) {
	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.OwnerID, &a.CustomerName, &a.ServiceID, &a.ServiceName,
			&a.StaffID, &a.StaffName, &a.Day, &a.StartTime, &a.EndTime,
			&a.Status, &a.QueuePosition, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
