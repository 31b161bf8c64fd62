package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"polymath-backend/internal/config"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLiteDB wraps the embedded SQLite database handle and its lifecycle.
type SQLiteDB struct {
	SQL    *sql.DB
	Config *config.DatabaseConfig
}

// Open opens the database file, applies pragmas and runs pending
// migrations. The parent directory is created if missing.
func Open(cfg *config.DatabaseConfig) (*SQLiteDB, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	cleanPath := filepath.Clean(cfg.Path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	// WAL for concurrent readers, foreign_keys for the notes cascade,
	// busy_timeout so concurrent writers queue instead of failing.
	dsn := fmt.Sprintf(
		"%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		cleanPath, cfg.BusyTimeout,
	)

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	db := &SQLiteDB{SQL: sqlDB, Config: cfg}
	if err := applyMigrations(sqlDB, migrationFS, "migrations"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

// Close releases the underlying SQLite connection.
func (db *SQLiteDB) Close() error {
	if db == nil || db.SQL == nil {
		return nil
	}
	return db.SQL.Close()
}

// HealthCheck verifies database connectivity.
// Called by the health endpoint.
func (db *SQLiteDB) HealthCheck(ctx context.Context) error {
	if db == nil || db.SQL == nil {
		return fmt.Errorf("database is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.SQL.PingContext(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
