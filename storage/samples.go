package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// timeLayout matches SQLite's datetime() output so range filters compare as text
const timeLayout = "2006-01-02 15:04:05.000"

// Sample is one recorded key state query
type Sample struct {
	ID         int64
	Timestamp  time.Time
	KeyName    string
	NativeCode uint32
	Platform   string
	Pressed    bool
	Source     string // cli, http or ws
}

// SaveSample saves a sample to the database
func (db *DB) SaveSample(s *Sample) error {
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}

	query := `
		INSERT INTO key_samples (
			timestamp, key_name, native_code, platform, pressed, source
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := db.conn.Exec(query,
		s.Timestamp.UTC().Format(timeLayout), s.KeyName, int64(s.NativeCode), s.Platform, s.Pressed, s.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to save sample: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	s.ID = id
	return nil
}

// SaveSamples saves several samples in one transaction
func (db *DB) SaveSamples(samples []*Sample) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO key_samples (
			timestamp, key_name, native_code, platform, pressed, source
		) VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range samples {
		if s.Timestamp.IsZero() {
			s.Timestamp = time.Now()
		}
		result, err := stmt.Exec(
			s.Timestamp.UTC().Format(timeLayout), s.KeyName, int64(s.NativeCode), s.Platform, s.Pressed, s.Source,
		)
		if err != nil {
			return fmt.Errorf("failed to save sample: %w", err)
		}
		if s.ID, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get last insert ID: %w", err)
		}
	}

	return tx.Commit()
}

// GetSamples retrieves samples with pagination, newest first
func (db *DB) GetSamples(limit, offset int) ([]Sample, error) {
	query := `
		SELECT id, timestamp, key_name, native_code, platform, pressed, source
		FROM key_samples
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := db.conn.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	return scanSamples(rows)
}

// GetSamplesForKey retrieves the latest samples of one key, newest first
func (db *DB) GetSamplesForKey(keyName string, limit int) ([]Sample, error) {
	query := `
		SELECT id, timestamp, key_name, native_code, platform, pressed, source
		FROM key_samples
		WHERE key_name = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := db.conn.Query(query, keyName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	return scanSamples(rows)
}

// CountSamples returns the total number of stored samples
func (db *DB) CountSamples() (int, error) {
	var count int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM key_samples").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count samples: %w", err)
	}
	return count, nil
}

func scanSamples(rows *sql.Rows) ([]Sample, error) {
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var s Sample
		var ts string
		err := rows.Scan(&s.ID, &ts, &s.KeyName, &s.NativeCode, &s.Platform, &s.Pressed, &s.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		if s.Timestamp, err = time.ParseInLocation(timeLayout, ts, time.UTC); err != nil {
			return nil, fmt.Errorf("failed to parse sample timestamp: %w", err)
		}
		samples = append(samples, s)
	}

	return samples, rows.Err()
}
