package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"projectvault/logging"
)

// ErrNoRows is returned by single-row lookups when nothing matched.
// Both the Postgres and in-memory stores use it.
var ErrNoRows = pgx.ErrNoRows

// DB is the Postgres-backed catalog store.
type DB struct {
	Pool *pgxpool.Pool
}

// Connect opens a pool against databaseURL. A non-empty accessKey replaces
// whatever password the URL carries.
func Connect(ctx context.Context, databaseURL, accessKey string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if accessKey != "" {
		config.ConnConfig.Password = accessKey
	}

	config.MaxConns = 25
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().Str("host", config.ConnConfig.Host).Msg("Database connection established")
	return &DB{Pool: pool}, nil
}

// Ping checks that the database is reachable and the projects table exists.
func (db *DB) Ping(ctx context.Context) error {
	var n int
	if err := db.Pool.QueryRow(ctx, `SELECT count(*) FROM (SELECT 1 FROM projects LIMIT 1) t`).Scan(&n); err != nil {
		return fmt.Errorf("failed to reach projects table: %w", err)
	}
	return nil
}

func (db *DB) Close() {
	db.Pool.Close()
	logging.Info().Msg("Database connection closed")
}
