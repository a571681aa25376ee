package dataset

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"capsule/internal/shared"
)

const sampleCSV = `uri,plays
spotify:track:aaa,12
spotify:track:bbb,7
spotify:track:ccc,0
`

func TestParse(t *testing.T) {
	t.Run("reads uri and plays columns", func(t *testing.T) {
		tracks, err := Parse(strings.NewReader(sampleCSV))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(tracks) != 3 {
			t.Fatalf("expected 3 tracks, got %d", len(tracks))
		}
		if tracks[0].URI != "spotify:track:aaa" || tracks[0].Plays != 12 {
			t.Errorf("unexpected first track: %+v", tracks[0])
		}
		if tracks[2].Plays != 0 {
			t.Errorf("expected 0 plays, got %d", tracks[2].Plays)
		}
	})

	t.Run("column order does not matter", func(t *testing.T) {
		csv := "plays,artist,uri\n3,someone,spotify:track:x\n"

		tracks, err := Parse(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(tracks) != 1 {
			t.Fatalf("expected 1 track, got %d", len(tracks))
		}
		if tracks[0].URI != "spotify:track:x" || tracks[0].Plays != 3 {
			t.Errorf("unexpected track: %+v", tracks[0])
		}
	})

	t.Run("trims whitespace in header and fields", func(t *testing.T) {
		csv := " uri , plays \n spotify:track:y , 8 \n"

		tracks, err := Parse(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tracks[0].URI != "spotify:track:y" || tracks[0].Plays != 8 {
			t.Errorf("unexpected track: %+v", tracks[0])
		}
	})

	t.Run("fails without required columns", func(t *testing.T) {
		csv := "track,count\nspotify:track:z,5\n"

		_, err := Parse(strings.NewReader(csv))
		if !errors.Is(err, shared.ErrInvalidDataset) {
			t.Errorf("expected ErrInvalidDataset, got %v", err)
		}
	})

	t.Run("fails on non-integer plays", func(t *testing.T) {
		csv := "uri,plays\nspotify:track:z,many\n"

		_, err := Parse(strings.NewReader(csv))
		if !errors.Is(err, shared.ErrInvalidDataset) {
			t.Errorf("expected ErrInvalidDataset, got %v", err)
		}
		if !strings.Contains(err.Error(), "row 2") {
			t.Errorf("error should name the row, got %v", err)
		}
	})

	t.Run("fails on empty input", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""))
		if !errors.Is(err, shared.ErrInvalidDataset) {
			t.Errorf("expected ErrInvalidDataset, got %v", err)
		}
	})

	t.Run("empty table after header is valid", func(t *testing.T) {
		tracks, err := Parse(strings.NewReader("uri,plays\n"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tracks) != 0 {
			t.Errorf("expected no tracks, got %d", len(tracks))
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads a local file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tracks.csv")
		if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
			t.Fatalf("failed to write dataset: %v", err)
		}

		tracks, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tracks) != 3 {
			t.Errorf("expected 3 tracks, got %d", len(tracks))
		}
	})

	t.Run("fails when the file is missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !strings.Contains(err.Error(), "failed to open dataset") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("fetches a remote URL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(sampleCSV))
		}))
		defer server.Close()

		tracks, err := Load(server.URL + "/tracks.csv")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tracks) != 3 {
			t.Errorf("expected 3 tracks, got %d", len(tracks))
		}
	})

	t.Run("fails on remote error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := Load(server.URL + "/tracks.csv")
		if !errors.Is(err, shared.ErrRemoteService) {
			t.Errorf("expected ErrRemoteService, got %v", err)
		}
	})
}
