package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS reservations (
	id               UUID PRIMARY KEY,
	customer_name    TEXT NOT NULL,
	customer_contact TEXT NOT NULL,
	model_name       TEXT NOT NULL,
	collection_name  TEXT NOT NULL,
	status           TEXT NOT NULL,
	notify_error     TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Open connects to PostgreSQL and makes sure the reservations table exists
func Open(ctx context.Context, connStr string, log *zap.SugaredLogger) (*sql.DB, error) {
	if connStr == "" {
		return nil, fmt.Errorf("database connection string is empty")
	}

	conn, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Test the connection
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create reservations table: %w", err)
	}

	log.Infof("✓ Database connection established successfully")
	return conn, nil
}
