// Package activity is the owner-facing audit feed. State-changing
// decisions publish one line over NATS; a background worker persists them
// so the request path never waits on the log write.
package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/bookora/bookora_backend/internal/model"
)

// SubjectPrefix is the NATS subject rooting the activity stream. The
// owner id is appended as the final token.
const SubjectPrefix = "bookora.activity"

// Store is the persistence surface the activity feed needs.
type Store interface {
	CreateActivityLog(ctx context.Context, entry *model.ActivityLog) error
	ListActivityLogs(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.ActivityLog, error)
}

type Service interface {
	// Record publishes an activity line. Fire-and-forget: a publish
	// failure is logged and swallowed so callers never block or fail on
	// the audit trail.
	Record(ctx context.Context, ownerID uuid.UUID, message string)

	// List returns the owner's recent entries, newest first.
	List(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.ActivityLog, error)
}

type activityService struct {
	nc    *nats.Conn
	store Store
}

func New(nc *nats.Conn, store Store) Service {
	return &activityService{nc: nc, store: store}
}

func (s *activityService) Record(_ context.Context, ownerID uuid.UUID, message string) {
	subject := fmt.Sprintf("%s.%s", SubjectPrefix, ownerID)
	if err := s.nc.Publish(subject, []byte(message)); err != nil {
		slog.Warn("activity: publish failed", "owner_id", ownerID, "err", err)
	}
}

func (s *activityService) List(ctx context.Context, ownerID uuid.UUID, limit int) ([]model.ActivityLog, error) {
	return s.store.ListActivityLogs(ctx, ownerID, limit)
}
