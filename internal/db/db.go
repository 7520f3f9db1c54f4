package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Connect opens the configured store backend and verifies the connection.
// Supported drivers: "pgx" (Postgres) and "sqlite".
func Connect(driver, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("store DSN is empty")
	}

	switch driver {
	case "pgx", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return database, nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS cleaning_inventories (
	id          SERIAL PRIMARY KEY,
	device      TEXT NOT NULL,
	products    JSONB NOT NULL DEFAULT '[]',
	reported_by TEXT NOT NULL DEFAULT '',
	date        TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_cleaning_inventories_device_created
	ON cleaning_inventories (device, created_at DESC);`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS cleaning_inventories (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	device      TEXT NOT NULL,
	products    TEXT NOT NULL DEFAULT '[]',
	reported_by TEXT NOT NULL DEFAULT '',
	date        TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cleaning_inventories_device_created
	ON cleaning_inventories (device, created_at DESC);`

// EnsureSchema creates the snapshot table when missing. Schema migrations
// are out of scope; the table shape is stable.
func EnsureSchema(database *sql.DB, driver string) error {
	schema := postgresSchema
	if driver == "sqlite" {
		schema = sqliteSchema
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
