package repository

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ConnString builds a PostgreSQL URL from the configuration.
func ConnString(cfg config.PostgresConfig) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     "/" + cfg.Dbname,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}

	return dsn.String()
}

// NewDatabase creates a new PostgreSQL connection pool sized by the provided configuration.
// The caller owns the pool and must close it.
func NewDatabase(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	var (
		ctxTimeout = 5 * time.Second
		idleTime   = 30 * time.Second
		hcPeriod   = 30 * time.Second
	)

	poolConfig, err := pgxpool.ParseConfig(ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnIdleTime = idleTime
	poolConfig.HealthCheckPeriod = hcPeriod

	connectCtx, cancel := context.WithTimeout(ctx, ctxTimeout)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection to PostgreSQL: %w", err)
	}

	if err = dbpool.Ping(connectCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL DB: %w", err)
	}

	return dbpool, nil
}

// Migrate applies every pending goose migration found in dir.
func Migrate(dbpool *pgxpool.Pool, dir string) error {
	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(dtb, dir); err != nil {
		return fmt.Errorf("failed to apply migrations from %s: %w", dir, err)
	}

	return nil
}
