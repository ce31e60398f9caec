package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/bookora/bookora_backend/internal/model"
	"github.com/bookora/bookora_backend/internal/service/activity"
	"github.com/bookora/bookora_backend/internal/store"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn
	Store *store.Store
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startActivityWorker(p.NC, p.Store)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// activity_worker
// ---------------------------------------------------------------------------

// startActivityWorker persists activity feed lines published by the
// services. The owner id is the final subject token; the payload is the
// human-readable message.
func startActivityWorker(nc *nats.Conn, st *store.Store) {
	_, err := nc.Subscribe(activity.SubjectPrefix+".*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		ownerIDStr := parts[len(parts)-1]
		ownerID, err := uuid.Parse(ownerIDStr)
		if err != nil {
			slog.Warn("activity_worker: bad owner id in subject", "subject", msg.Subject)
			return
		}

		message := strings.TrimSpace(string(msg.Data))
		if message == "" {
			return
		}

		entry := &model.ActivityLog{
			ID:      uuid.New(),
			OwnerID: ownerID,
			Message: message,
		}
		if err := st.CreateActivityLog(context.Background(), entry); err != nil {
			slog.Warn("activity_worker: persist failed", "owner_id", ownerIDStr, "err", err)
		}
	})
	if err != nil {
		slog.Error("activity_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("activity_worker: started")
}
