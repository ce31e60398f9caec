package store

import (
	"context"
	"fmt"
)

// schema holds the full DDL. Statements are idempotent so Migrate can run
// on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id             UUID PRIMARY KEY,
		owner_id       UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name           TEXT NOT NULL,
		service_type   TEXT NOT NULL,
		daily_capacity INT  NOT NULL,
		status         TEXT NOT NULL DEFAULT 'Available',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (owner_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id               UUID PRIMARY KEY,
		owner_id         UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name             TEXT NOT NULL,
		duration_minutes INT  NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (owner_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id             UUID PRIMARY KEY,
		owner_id       UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		customer_name  TEXT NOT NULL,
		service_id     UUID NOT NULL REFERENCES services(id),
		service_name   TEXT NOT NULL,
		staff_id       UUID REFERENCES staff(id) ON DELETE SET NULL,
		staff_name     TEXT,
		day            DATE NOT NULL,
		start_time     TIMESTAMPTZ NOT NULL,
		end_time       TIMESTAMPTZ NOT NULL,
		status         TEXT NOT NULL,
		queue_position INT  NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_staff_day
		ON appointments (owner_id, staff_id, day)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_queue
		ON appointments (owner_id, service_id, queue_position)
		WHERE status = 'Waiting'`,
	`CREATE TABLE IF NOT EXISTS activity_logs (
		id         UUID PRIMARY KEY,
		owner_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_logs_owner
		ON activity_logs (owner_id, created_at DESC)`,
}

// Migrate applies the schema.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
