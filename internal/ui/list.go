package ui

import (
	"fmt"

	"capsule/internal/dataset"
	"capsule/internal/sampler"
	"github.com/charmbracelet/bubbles/list"
)

var _ list.Item = trackItem{}

// trackItem wraps [dataset.Track] to implement [list.Item].
type trackItem struct {
	track dataset.Track
}

func (i trackItem) FilterValue() string { return i.track.URI }
func (i trackItem) Title() string       { return i.track.URI }
func (i trackItem) Description() string {
	stratum := sampler.Low
	for _, s := range sampler.Strata {
		if s.Contains(i.track.Plays) {
			stratum = s
			break
		}
	}
	return fmt.Sprintf("%d plays • %s rotation", i.track.Plays, stratum)
}

func trackItems(tracks []dataset.Track) []list.Item {
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}
	return items
}
