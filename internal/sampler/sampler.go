// Package sampler draws the stratified random track selection for a refresh.
//
// Tracks are partitioned into three disjoint play-count strata and an equal
// number of tracks is drawn from each, uniformly at random and without
// replacement. No random seed is exposed; every run yields a fresh sample.
package sampler

import (
	"fmt"
	"math/rand/v2"

	"capsule/internal/dataset"
	"capsule/internal/shared"
)

// Play-count boundaries between strata.
const (
	HighMinPlays   = 10
	MediumMinPlays = 5
)

// DefaultPerStratum is the number of tracks drawn from each stratum.
const DefaultPerStratum = 10

// Stratum is a disjoint play-count range bucket used for sampling.
type Stratum int

const (
	High   Stratum = iota // plays >= 10
	Medium                // 5 <= plays < 10
	Low                   // plays < 5
)

// Strata lists the buckets in concatenation order.
var Strata = []Stratum{High, Medium, Low}

func (s Stratum) String() string {
	switch s {
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	}
	return "unknown"
}

// Contains reports whether a play count falls in the stratum.
func (s Stratum) Contains(plays int) bool {
	switch s {
	case High:
		return plays >= HighMinPlays
	case Medium:
		return plays >= MediumMinPlays && plays < HighMinPlays
	case Low:
		return plays < MediumMinPlays
	}
	return false
}

// Partition splits tracks into the three strata.
func Partition(tracks []dataset.Track) map[Stratum][]dataset.Track {
	buckets := make(map[Stratum][]dataset.Track, len(Strata))
	for _, t := range tracks {
		for _, s := range Strata {
			if s.Contains(t.Plays) {
				buckets[s] = append(buckets[s], t)
				break
			}
		}
	}
	return buckets
}

// Sample draws perStratum track URIs from each stratum without replacement
// and returns their concatenation in stratum order high, medium, low.
//
// A stratum holding fewer than perStratum candidates fails the whole draw
// with an error wrapping [shared.ErrInsufficientData]; the caller must not
// have mutated anything remote yet.
func Sample(tracks []dataset.Track, perStratum int) ([]string, error) {
	selected, err := SampleTracks(tracks, perStratum)
	if err != nil {
		return nil, err
	}

	uris := make([]string, len(selected))
	for i, t := range selected {
		uris[i] = t.URI
	}
	return uris, nil
}

// SampleTracks is Sample but returns the full records, preserving play
// counts for preview rendering.
func SampleTracks(tracks []dataset.Track, perStratum int) ([]dataset.Track, error) {
	if perStratum <= 0 {
		perStratum = DefaultPerStratum
	}

	buckets := Partition(tracks)

	selected := make([]dataset.Track, 0, perStratum*len(Strata))
	for _, s := range Strata {
		candidates := buckets[s]
		if len(candidates) < perStratum {
			return nil, fmt.Errorf("%w: stratum %s has %d tracks, need %d", shared.ErrInsufficientData, s, len(candidates), perStratum)
		}

		drawn := make([]dataset.Track, len(candidates))
		copy(drawn, candidates)
		rand.Shuffle(len(drawn), func(i, j int) {
			drawn[i], drawn[j] = drawn[j], drawn[i]
		})

		selected = append(selected, drawn[:perStratum]...)
	}

	return selected, nil
}
