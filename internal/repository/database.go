package repository

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewDatabase creates a new PostgreSQL connection pool using the provided host, port,
// username, password, and database name. The pool keeps a baseline of 5 connections
// and grows to at most 15 under load; every connection is pinged before it is handed
// out, so dead connections are discarded transparently.
//
// NewDatabase does not require the database to be reachable: first contact is the
// startup readiness loop's job, and the process must come up even during an outage.
func NewDatabase(host, port, username, password, dbName string) (*pgxpool.Pool, error) {
	var (
		baseConns   int32 = 5
		maxOverflow int32 = 10
		idleTime          = 30 * time.Second
		hcPeriod          = 30 * time.Second
		ctxTimeout        = 5 * time.Second
	)
	var err error

	dbHost := net.JoinHostPort(host, port)
	dbURL := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		username,
		password,
		dbHost,
		dbName,
	)

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MinConns = baseConns
	poolConfig.MaxConns = baseConns + maxOverflow
	poolConfig.MaxConnIdleTime = idleTime
	poolConfig.HealthCheckPeriod = hcPeriod
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		return conn.Ping(ctx) == nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), ctxTimeout)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool to PostgreSQL: %w", err)
	}

	return dbpool, nil
}
