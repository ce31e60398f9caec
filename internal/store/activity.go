package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/bookora/bookora_backend/internal/model"
)

func (q queries) CreateActivityLog(ctx context.Context, entry *model.ActivityLog) error {
	return q.db.QueryRow(ctx, `
		INSERT INTO activity_logs (id, owner_id, message)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, entry.ID, entry.OwnerID, entry.Message).Scan(&entry.CreatedAt)
}

// ListActivityLogs returns the owner's newest entries first, capped at
// limit.
func (q queries) ListActivityLogs(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := q.db.Query(ctx, `
		SELECT id, owner_id, message, created_at
		FROM activity_logs
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ActivityLog
	for rows.Next() {
		var entry model.ActivityLog
		if err := rows.Scan(&entry.ID, &entry.OwnerID, &entry.Message, &entry.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
