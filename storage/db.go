package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type DB struct {
	conn *sql.DB
}

// Open opens the database in dir and initializes the schema
func Open(dir string) (*DB, error) {
	dbPath := filepath.Join(dir, "keystate.db")

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the database schema
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS key_samples (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,

		-- Key identity
		key_name TEXT NOT NULL,
		native_code INTEGER NOT NULL,
		platform TEXT NOT NULL,

		-- Observed state
		pressed BOOLEAN NOT NULL,
		source TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_key_samples_timestamp ON key_samples(timestamp);
	CREATE INDEX IF NOT EXISTS idx_key_samples_key ON key_samples(key_name);
	`

	_, err := db.conn.Exec(schema)
	return err
}
