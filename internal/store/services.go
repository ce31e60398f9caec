package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bookora/bookora_backend/internal/model"
)

const serviceColumns = `id, owner_id, name, duration_minutes, created_at`

func scanService(row pgx.Row) (*model.Service, error) {
	var svc model.Service
	err := row.Scan(&svc.ID, &svc.OwnerID, &svc.Name, &svc.DurationMinutes, &svc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

func (q queries) CreateService(ctx context.Context, svc *model.Service) error {
	return q.db.QueryRow(ctx, `
		INSERT INTO services (id, owner_id, name, duration_minutes)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, svc.ID, svc.OwnerID, svc.Name, svc.DurationMinutes).Scan(&svc.CreatedAt)
}

func (q queries) UpdateService(ctx context.Context, svc *model.Service) error {
	tag, err := q.db.Exec(ctx, `
		UPDATE services
		SET name = $3, duration_minutes = $4
		WHERE id = $1 AND owner_id = $2
	`, svc.ID, svc.OwnerID, svc.Name, svc.DurationMinutes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (q queries) DeleteService(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := q.db.Exec(ctx, `
		DELETE FROM services WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (q queries) ServiceByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Service, error) {
	return scanService(q.db.QueryRow(ctx, `
		SELECT `+serviceColumns+` FROM services
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID))
}

func (q queries) ServiceByName(ctx context.Context, ownerID uuid.UUID, name string) (*model.Service, error) {
	return scanService(q.db.QueryRow(ctx, `
		SELECT `+serviceColumns+` FROM services
		WHERE owner_id = $1 AND name = $2
	`, ownerID, name))
}

func (q queries) ListServices(ctx context.Context, ownerID uuid.UUID) ([]model.Service, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+serviceColumns+` FROM services
		WHERE owner_id = $1
		ORDER BY name
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Service
	for rows.Next() {
		var svc model.Service
		if err := rows.Scan(&svc.ID, &svc.OwnerID, &svc.Name, &svc.DurationMinutes, &svc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, svc)
	}
	return out, rows.Err()
}
