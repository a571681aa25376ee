// Package repositories implements SQLite persistence for refresh history.
//
// The only persistent entity is the refresh record: one row per completed
// run noting which playlist was refreshed, whether it was created by that
// run, and the track URIs that were assigned. History is an operator
// convenience; a refresh run never fails because a record could not be
// written.
package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"capsule/internal/shared"
)

const refreshSchema = `
CREATE TABLE IF NOT EXISTS refreshes (
	id TEXT PRIMARY KEY,
	playlist_id TEXT NOT NULL,
	playlist_name TEXT NOT NULL,
	created_playlist INTEGER NOT NULL DEFAULT 0,
	track_uris TEXT NOT NULL,
	track_count INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_refreshes_created_at ON refreshes(created_at);
`

// RefreshRecord is one completed refresh run.
type RefreshRecord struct {
	ID              string
	PlaylistID      string
	PlaylistName    string
	CreatedPlaylist bool
	TrackURIs       []string
	CreatedAt       time.Time
}

// RefreshRepository persists refresh records in SQLite.
type RefreshRepository struct {
	db *sql.DB
}

// NewRefreshRepository creates a repository and ensures its schema exists.
func NewRefreshRepository(db *sql.DB) (*RefreshRepository, error) {
	if _, err := db.Exec(refreshSchema); err != nil {
		return nil, fmt.Errorf("failed to initialize refresh schema: %w", err)
	}
	return &RefreshRepository{db: db}, nil
}

// Create inserts a new refresh record with a generated ID and timestamp.
func (r *RefreshRepository) Create(record *RefreshRecord) error {
	if record.ID == "" {
		record.ID = shared.GenerateID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO refreshes (id, playlist_id, playlist_name, created_playlist, track_uris, track_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		record.ID,
		record.PlaylistID,
		record.PlaylistName,
		record.CreatedPlaylist,
		strings.Join(record.TrackURIs, "\n"),
		len(record.TrackURIs),
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert refresh record: %w", err)
	}

	return nil
}

// List returns the most recent refresh records, newest first.
func (r *RefreshRepository) List(limit int) ([]RefreshRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, playlist_id, playlist_name, created_playlist, track_uris, created_at
		FROM refreshes
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query refresh records: %w", err)
	}
	defer rows.Close()

	var records []RefreshRecord
	for rows.Next() {
		var record RefreshRecord
		var uris string
		if err := rows.Scan(&record.ID, &record.PlaylistID, &record.PlaylistName, &record.CreatedPlaylist, &uris, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan refresh record: %w", err)
		}
		if uris != "" {
			record.TrackURIs = strings.Split(uris, "\n")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate refresh records: %w", err)
	}

	return records, nil
}

// Latest returns the most recent refresh record, or nil when history is empty.
func (r *RefreshRepository) Latest() (*RefreshRecord, error) {
	records, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}
