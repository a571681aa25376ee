package repositories

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func newTestRepository(t *testing.T) *RefreshRepository {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := NewRefreshRepository(db)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return repo
}

func TestRefreshRepository(t *testing.T) {
	t.Run("create assigns id and timestamp", func(t *testing.T) {
		repo := newTestRepository(t)

		record := &RefreshRecord{
			PlaylistID:   "p1",
			PlaylistName: "My time capsule",
			TrackURIs:    []string{"spotify:track:a", "spotify:track:b"},
		}
		if err := repo.Create(record); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if record.ID == "" {
			t.Error("expected a generated ID")
		}
		if record.CreatedAt.IsZero() {
			t.Error("expected a generated timestamp")
		}
	})

	t.Run("round trips uris", func(t *testing.T) {
		repo := newTestRepository(t)

		uris := []string{"spotify:track:a", "spotify:track:b", "spotify:track:c"}
		if err := repo.Create(&RefreshRecord{
			PlaylistID:      "p1",
			PlaylistName:    "My time capsule",
			CreatedPlaylist: true,
			TrackURIs:       uris,
		}); err != nil {
			t.Fatalf("failed to create record: %v", err)
		}

		records, err := repo.List(10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}

		got := records[0]
		if !got.CreatedPlaylist {
			t.Error("expected CreatedPlaylist to round trip")
		}
		if len(got.TrackURIs) != 3 {
			t.Fatalf("expected 3 URIs, got %d", len(got.TrackURIs))
		}
		for i, uri := range uris {
			if got.TrackURIs[i] != uri {
				t.Errorf("uri %d: expected %q, got %q", i, uri, got.TrackURIs[i])
			}
		}
	})

	t.Run("list is newest first and limited", func(t *testing.T) {
		repo := newTestRepository(t)

		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			if err := repo.Create(&RefreshRecord{
				PlaylistID:   "p1",
				PlaylistName: "My time capsule",
				TrackURIs:    []string{"spotify:track:a"},
				CreatedAt:    base.Add(time.Duration(i) * time.Hour),
			}); err != nil {
				t.Fatalf("failed to create record %d: %v", i, err)
			}
		}

		records, err := repo.List(3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if !records[0].CreatedAt.After(records[1].CreatedAt) || !records[1].CreatedAt.After(records[2].CreatedAt) {
			t.Errorf("records not in newest-first order: %v, %v, %v",
				records[0].CreatedAt, records[1].CreatedAt, records[2].CreatedAt)
		}
	})

	t.Run("latest on empty history", func(t *testing.T) {
		repo := newTestRepository(t)

		record, err := repo.Latest()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record != nil {
			t.Errorf("expected nil record, got %+v", record)
		}
	})

	t.Run("latest returns the newest record", func(t *testing.T) {
		repo := newTestRepository(t)

		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		if err := repo.Create(&RefreshRecord{PlaylistID: "old", PlaylistName: "n", TrackURIs: []string{"a"}, CreatedAt: base}); err != nil {
			t.Fatalf("failed to create record: %v", err)
		}
		if err := repo.Create(&RefreshRecord{PlaylistID: "new", PlaylistName: "n", TrackURIs: []string{"a"}, CreatedAt: base.Add(time.Hour)}); err != nil {
			t.Fatalf("failed to create record: %v", err)
		}

		record, err := repo.Latest()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if record == nil || record.PlaylistID != "new" {
			t.Errorf("expected newest record, got %+v", record)
		}
	})

	t.Run("empty uris round trip to nil", func(t *testing.T) {
		repo := newTestRepository(t)

		if err := repo.Create(&RefreshRecord{PlaylistID: "p1", PlaylistName: "n"}); err != nil {
			t.Fatalf("failed to create record: %v", err)
		}

		record, err := repo.Latest()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(record.TrackURIs) != 0 {
			t.Errorf("expected no URIs, got %v", record.TrackURIs)
		}
	})
}
