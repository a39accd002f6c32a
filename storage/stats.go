package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// KeyStats represents statistics for a single key
type KeyStats struct {
	KeyName      string
	TotalSamples int
	PressedCount int
	LastPressed  *time.Time
}

// OverallStats represents overall statistics
type OverallStats struct {
	TotalSamples int
	PressedCount int
	DistinctKeys int
	FirstSample  *time.Time
	LastSample   *time.Time
}

// GetKeyStats retrieves statistics grouped by key for the last N days
func (db *DB) GetKeyStats(days int) ([]KeyStats, error) {
	query := `
		SELECT
			key_name,
			COUNT(*) as total_samples,
			SUM(CASE WHEN pressed = 1 THEN 1 ELSE 0 END) as pressed_count,
			MAX(CASE WHEN pressed = 1 THEN timestamp END) as last_pressed
		FROM key_samples
		WHERE timestamp >= datetime('now', '-' || ? || ' days')
		GROUP BY key_name
		ORDER BY pressed_count DESC, key_name ASC
	`

	rows, err := db.conn.Query(query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query key stats: %w", err)
	}
	defer rows.Close()

	var stats []KeyStats
	for rows.Next() {
		var s KeyStats
		var last sql.NullString
		if err := rows.Scan(&s.KeyName, &s.TotalSamples, &s.PressedCount, &last); err != nil {
			return nil, fmt.Errorf("failed to scan key stats: %w", err)
		}
		if s.LastPressed, err = parseNullTime(last); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// GetOverallStats retrieves overall statistics for the last N days
func (db *DB) GetOverallStats(days int) (*OverallStats, error) {
	query := `
		SELECT
			COUNT(*) as total_samples,
			COALESCE(SUM(CASE WHEN pressed = 1 THEN 1 ELSE 0 END), 0) as pressed_count,
			COUNT(DISTINCT key_name) as distinct_keys,
			MIN(timestamp) as first_sample,
			MAX(timestamp) as last_sample
		FROM key_samples
		WHERE timestamp >= datetime('now', '-' || ? || ' days')
	`

	var stats OverallStats
	var first, last sql.NullString
	err := db.conn.QueryRow(query, days).Scan(
		&stats.TotalSamples,
		&stats.PressedCount,
		&stats.DistinctKeys,
		&first,
		&last,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query overall stats: %w", err)
	}

	if stats.FirstSample, err = parseNullTime(first); err != nil {
		return nil, err
	}
	if stats.LastSample, err = parseNullTime(last); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DeleteSamplesBefore removes samples older than t and returns how many were removed
func (db *DB) DeleteSamplesBefore(t time.Time) (int64, error) {
	result, err := db.conn.Exec("DELETE FROM key_samples WHERE timestamp < ?", t.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to delete samples: %w", err)
	}
	return result.RowsAffected()
}

func parseNullTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid {
		return nil, nil
	}
	t, err := time.ParseInLocation(timeLayout, v.String, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp %q: %w", v.String, err)
	}
	return &t, nil
}
