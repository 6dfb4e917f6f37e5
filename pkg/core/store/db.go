package store

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the Postgres pool backing the dataset store, configured from
// the DATABASE_URL environment variable. The caller owns the returned pool
// and closes it when the pipeline run ends; when DATABASE_URL is absent the
// error signals the file-cache fallback.
func Connect(ctx context.Context) (*pgxpool.Pool, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	return pgxpool.NewWithConfig(ctx, config)
}
