package sampler

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"capsule/internal/dataset"
	"capsule/internal/shared"
)

// buildTracks returns a dataset with the given number of rows per stratum.
// URIs encode their stratum so tests can check draw membership.
func buildTracks(high, medium, low int) []dataset.Track {
	var tracks []dataset.Track
	for i := 0; i < high; i++ {
		tracks = append(tracks, dataset.Track{URI: fmt.Sprintf("spotify:track:high%d", i), Plays: 10 + i})
	}
	for i := 0; i < medium; i++ {
		tracks = append(tracks, dataset.Track{URI: fmt.Sprintf("spotify:track:med%d", i), Plays: 5 + i%5})
	}
	for i := 0; i < low; i++ {
		tracks = append(tracks, dataset.Track{URI: fmt.Sprintf("spotify:track:low%d", i), Plays: i % 5})
	}
	return tracks
}

func TestStratum(t *testing.T) {
	t.Run("Contains", func(t *testing.T) {
		cases := []struct {
			plays int
			want  Stratum
		}{
			{0, Low},
			{4, Low},
			{5, Medium},
			{9, Medium},
			{10, High},
			{250, High},
		}

		for _, tc := range cases {
			for _, s := range Strata {
				got := s.Contains(tc.plays)
				if want := s == tc.want; got != want {
					t.Errorf("stratum %s Contains(%d) = %v, want %v", s, tc.plays, got, want)
				}
			}
		}
	})

	t.Run("strata are disjoint and exhaustive", func(t *testing.T) {
		for plays := 0; plays < 30; plays++ {
			matches := 0
			for _, s := range Strata {
				if s.Contains(plays) {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("plays %d matched %d strata, want exactly 1", plays, matches)
			}
		}
	})
}

func TestPartition(t *testing.T) {
	tracks := buildTracks(12, 11, 15)
	buckets := Partition(tracks)

	if len(buckets[High]) != 12 {
		t.Errorf("expected 12 high tracks, got %d", len(buckets[High]))
	}
	if len(buckets[Medium]) != 11 {
		t.Errorf("expected 11 medium tracks, got %d", len(buckets[Medium]))
	}
	if len(buckets[Low]) != 15 {
		t.Errorf("expected 15 low tracks, got %d", len(buckets[Low]))
	}
}

func TestSample(t *testing.T) {
	t.Run("returns 30 URIs in stratum order", func(t *testing.T) {
		tracks := buildTracks(20, 20, 20)

		uris, err := Sample(tracks, 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(uris) != 30 {
			t.Fatalf("expected 30 URIs, got %d", len(uris))
		}

		for i, uri := range uris {
			var prefix string
			switch {
			case i < 10:
				prefix = "spotify:track:high"
			case i < 20:
				prefix = "spotify:track:med"
			default:
				prefix = "spotify:track:low"
			}
			if !strings.HasPrefix(uri, prefix) {
				t.Errorf("uri %d = %q, expected prefix %q", i, uri, prefix)
			}
		}
	})

	t.Run("draws without replacement", func(t *testing.T) {
		tracks := buildTracks(10, 10, 10)

		// With exactly 10 candidates per stratum every candidate must be
		// drawn exactly once, regardless of shuffle order.
		for run := 0; run < 20; run++ {
			uris, err := Sample(tracks, 10)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			seen := make(map[string]bool, len(uris))
			for _, uri := range uris {
				if seen[uri] {
					t.Fatalf("duplicate uri %q in sample", uri)
				}
				seen[uri] = true
			}
		}
	})

	t.Run("fails when high stratum is short", func(t *testing.T) {
		tracks := buildTracks(8, 10, 10)

		_, err := Sample(tracks, 10)
		if err == nil {
			t.Fatal("expected error for short stratum")
		}
		if !errors.Is(err, shared.ErrInsufficientData) {
			t.Errorf("expected ErrInsufficientData, got %v", err)
		}
		if !strings.Contains(err.Error(), "high") {
			t.Errorf("error should name the short stratum, got %v", err)
		}
		if !strings.Contains(err.Error(), "has 8 tracks, need 10") {
			t.Errorf("error should report counts, got %v", err)
		}
	})

	t.Run("fails when medium stratum is short", func(t *testing.T) {
		tracks := buildTracks(10, 3, 10)

		_, err := Sample(tracks, 10)
		if !errors.Is(err, shared.ErrInsufficientData) {
			t.Errorf("expected ErrInsufficientData, got %v", err)
		}
		if !strings.Contains(err.Error(), "medium") {
			t.Errorf("error should name the short stratum, got %v", err)
		}
	})

	t.Run("fails on empty dataset", func(t *testing.T) {
		_, err := Sample(nil, 10)
		if !errors.Is(err, shared.ErrInsufficientData) {
			t.Errorf("expected ErrInsufficientData, got %v", err)
		}
	})

	t.Run("zero perStratum uses the default", func(t *testing.T) {
		tracks := buildTracks(15, 15, 15)

		uris, err := Sample(tracks, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(uris) != 3*DefaultPerStratum {
			t.Errorf("expected %d URIs, got %d", 3*DefaultPerStratum, len(uris))
		}
	})

	t.Run("custom perStratum", func(t *testing.T) {
		tracks := buildTracks(5, 5, 5)

		uris, err := Sample(tracks, 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(uris) != 15 {
			t.Errorf("expected 15 URIs, got %d", len(uris))
		}
	})
}

func TestSampleTracks(t *testing.T) {
	t.Run("selected tracks come from their stratum", func(t *testing.T) {
		tracks := buildTracks(25, 25, 25)

		selected, err := SampleTracks(tracks, 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(selected) != 30 {
			t.Fatalf("expected 30 tracks, got %d", len(selected))
		}

		for i, track := range selected {
			var want Stratum
			switch {
			case i < 10:
				want = High
			case i < 20:
				want = Medium
			default:
				want = Low
			}
			if !want.Contains(track.Plays) {
				t.Errorf("track %d (plays %d) not in stratum %s", i, track.Plays, want)
			}
		}
	})
}
