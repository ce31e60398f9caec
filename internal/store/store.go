// Package store is the PostgreSQL persistence layer. One Store instance
// backs every service; queries run either on the pool directly or inside
// a transaction obtained through WithTx.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookora/bookora_backend/internal/service/booking"
)

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so
// every query method works on both the pooled and the transactional path.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type queries struct {
	db querier
}

// Store wraps the pgx pool.
type Store struct {
	queries
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{queries: queries{db: pool}, pool: pool}
}

func (s *Store) Pool() *pgxpool.Pool { return s.pool }

// tx is the transactional view handed to WithTx callbacks. Its lock
// methods take row locks that are released at commit or rollback.
type tx struct {
	queries
	pgx pgx.Tx
}

// WithTx runs fn inside a single transaction. Any error from fn rolls
// the transaction back and is returned unchanged so sentinel and typed
// errors survive the transaction boundary.
func (s *Store) WithTx(ctx context.Context, fn func(t booking.Tx) error) error {
	pgTx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer pgTx.Rollback(ctx)

	if err := fn(&tx{queries: queries{db: pgTx}, pgx: pgTx}); err != nil {
		return err
	}
	if err := pgTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// LockStaff serializes concurrent deciders on one staff member: the
// capacity and conflict reads that follow see a stable row until the
// transaction ends.
func (t *tx) LockStaff(ctx context.Context, ownerID, staffID uuid.UUID) error {
	_, err := t.db.Exec(ctx, `
		SELECT id FROM staff
		WHERE id = $1 AND owner_id = $2
		FOR UPDATE
	`, staffID, ownerID)
	return err
}

// LockService serializes queue numbering for one service. Every
// count-then-insert and every renumbering pass takes this lock first.
func (t *tx) LockService(ctx context.Context, ownerID, serviceID uuid.UUID) error {
	_, err := t.db.Exec(ctx, `
		SELECT id FROM services
		WHERE id = $1 AND owner_id = $2
		FOR UPDATE
	`, serviceID, ownerID)
	return err
}
