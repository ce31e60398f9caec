package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bookora/bookora_backend/internal/model"
)

const staffColumns = `id, owner_id, name, service_type, daily_capacity, status, created_at`

func scanStaff(row pgx.Row) (*model.Staff, error) {
	var st model.Staff
	err := row.Scan(&st.ID, &st.OwnerID, &st.Name, &st.ServiceType, &st.DailyCapacity, &st.Status, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (q queries) CreateStaff(ctx context.Context, st *model.Staff) error {
	return q.db.QueryRow(ctx, `
		INSERT INTO staff (id, owner_id, name, service_type, daily_capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, st.ID, st.OwnerID, st.Name, st.ServiceType, st.DailyCapacity, st.Status).Scan(&st.CreatedAt)
}

func (q queries) UpdateStaff(ctx context.Context, st *model.Staff) error {
	tag, err := q.db.Exec(ctx, `
		UPDATE staff
		SET name = $3, service_type = $4, daily_capacity = $5, status = $6
		WHERE id = $1 AND owner_id = $2
	`, st.ID, st.OwnerID, st.Name, st.ServiceType, st.DailyCapacity, st.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (q queries) DeleteStaff(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := q.db.Exec(ctx, `
		DELETE FROM staff WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (q queries) StaffByID(ctx context.Context, ownerID, staffID uuid.UUID) (*model.Staff, error) {
	return scanStaff(q.db.QueryRow(ctx, `
		SELECT `+staffColumns+` FROM staff
		WHERE id = $1 AND owner_id = $2
	`, staffID, ownerID))
}

func (q queries) StaffByName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Staff, error) {
	return scanStaff(q.db.QueryRow(ctx, `
		SELECT `+staffColumns+` FROM staff
		WHERE owner_id = $1 AND name = $2
	`, ownerID, name))
}

// EligibleStaff returns the available staff for a service type in name
// order, which keeps first-fit assignment deterministic.
func (q queries) EligibleStaff(ctx context.Context, ownerID uuid.UUID, serviceType string) ([]model.Staff, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+staffColumns+` FROM staff
		WHERE owner_id = $1 AND service_type = $2 AND status = 'Available'
		ORDER BY name
	`, ownerID, serviceType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStaff(rows)
}

func (q queries) ListStaff(ctx context.Context, ownerID uuid.UUID) ([]model.Staff, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+staffColumns+` FROM staff
		WHERE owner_id = $1
		ORDER BY name
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStaff(rows)
}

func collectStaff(rows pgx.Rows) ([]model.Staff, error) {
	var out []model.Staff
	for rows.Next() {
		var st model.Staff
		if err := rows.Scan(&st.ID, &st.OwnerID, &st.Name, &st.ServiceType, &st.DailyCapacity, &st.Status, &st.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
