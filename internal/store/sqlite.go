package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdxmph/planner-tui/internal/task"
)

// sqliteBackend keeps the snapshot as a single row in a key/value
// table, so the database mirrors the original single-entry layout
// while getting durable writes for free.
type sqliteBackend struct {
	conn *sql.DB
}

// openSQLite opens an existing task database.
func openSQLite(dbPath string) (Backend, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("database not found at %s\nRun 'planner-tui -init' to create it", dbPath)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	b := &sqliteBackend{conn: conn}

	// Run any pending migrations
	if err := b.runMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return b, nil
}

func (b *sqliteBackend) Name() string {
	return "sqlite"
}

func (b *sqliteBackend) Close() error {
	return b.conn.Close()
}

func (b *sqliteBackend) Load() ([]task.Task, error) {
	var value string
	err := b.conn.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, snapshotKey).Scan(&value)
	if err == sql.ErrNoRows {
		return []task.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return decodeSnapshot([]byte(value))
}

func (b *sqliteBackend) Save(tasks []task.Task) error {
	data, err := encodeSnapshot(tasks)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := b.conn.Exec(query, snapshotKey, string(data)); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Initialize creates a new task database with the snapshot schema.
func Initialize(dbPath string) error {
	// Check if database already exists
	if _, err := os.Stat(dbPath); err == nil {
		return fmt.Errorf("database already exists at %s", dbPath)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	schema := `
CREATE TABLE IF NOT EXISTS snapshots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

func init() {
	Register("sqlite", openSQLite)
}
