package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookora/bookora_backend/config"
)

// Config holds database connection and pool settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxConns           int
	MinConns           int
	ConnMaxLifetimeMin int
	ConnMaxIdleMin     int
}

// DSN returns a PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func (c Config) connMaxLifetime() time.Duration {
	if c.ConnMaxLifetimeMin <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.ConnMaxLifetimeMin) * time.Minute
}

func (c Config) connMaxIdle() time.Duration {
	if c.ConnMaxIdleMin <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.ConnMaxIdleMin) * time.Minute
}

// DefaultConfig returns sensible defaults for database configuration.
func DefaultConfig() Config {
	return Config{
		Host:               "localhost",
		Port:               5432,
		SSLMode:            "disable",
		MaxConns:           10,
		MinConns:           1,
		ConnMaxLifetimeMin: 30,
		ConnMaxIdleMin:     5,
	}
}

// FromCentralConfig converts central config.DatabaseConfig to package Config.
func FromCentralConfig(c config.DatabaseConfig) Config {
	cfg := DefaultConfig()
	cfg.Host = c.Host
	cfg.Port = c.Port
	cfg.User = c.User
	cfg.Password = c.Password
	cfg.DBName = c.DBName
	if c.SSLMode != "" {
		cfg.SSLMode = c.SSLMode
	}
	if c.Pool.MaxConns > 0 {
		cfg.MaxConns = c.Pool.MaxConns
	}
	if c.Pool.MinConns > 0 {
		cfg.MinConns = c.Pool.MinConns
	}
	if c.Pool.ConnMaxLifetimeMin > 0 {
		cfg.ConnMaxLifetimeMin = c.Pool.ConnMaxLifetimeMin
	}
	if c.Pool.ConnMaxIdleMin > 0 {
		cfg.ConnMaxIdleMin = c.Pool.ConnMaxIdleMin
	}
	return cfg
}

// Open builds a pgx connection pool from cfg and verifies connectivity
// with a ping before returning it.
func Open(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = cfg.connMaxLifetime()
	poolCfg.MaxConnIdleTime = cfg.connMaxIdle()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// ReadyCheck returns a health probe bound to the pool.
func ReadyCheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		if pool == nil {
			return fmt.Errorf("database not configured")
		}
		return pool.Ping(ctx)
	}
}
