// package tasks implements the time-capsule refresh operation.
//
// The core abstraction is CapsuleEngine, which orchestrates one run:
// select a stratified sample from the dataset, find or create the target
// playlist, and replace its contents. Steps run sequentially; any failure
// aborts the run with no compensating rollback.
package tasks

import (
	"context"
	"fmt"

	"capsule/internal/dataset"
	"capsule/internal/sampler"
	"capsule/internal/services"
)

// RefreshOpts configures a single refresh run.
type RefreshOpts struct {
	PlaylistName string // lookup key, exact case-sensitive match
	Description  string // used only when the playlist is created
	Public       bool   // used only when the playlist is created
	DatasetPath  string // local path or HTTP(S) URL
	PerStratum   int    // tracks drawn per stratum, 0 means the default
}

// RefreshResult reports what one refresh run did.
type RefreshResult struct {
	Playlist services.Playlist // the target playlist, found or created
	Created  bool              // true when the playlist was created this run
	URIs     []string          // the track URIs now in the playlist
	URL      string            // public playlist URL
}

// CapsuleEngine performs refresh runs against a playlist service.
type CapsuleEngine struct {
	spotify services.Service
}

// NewCapsuleEngine creates an engine backed by the given service.
func NewCapsuleEngine(spotify services.Service) *CapsuleEngine {
	return &CapsuleEngine{spotify: spotify}
}

// SelectTracks reads the dataset and draws the stratified sample.
// Performs no remote calls.
func (e *CapsuleEngine) SelectTracks(path string, perStratum int) ([]string, error) {
	tracks, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}

	return sampler.Sample(tracks, perStratum)
}

// EnsurePlaylist finds the named playlist or creates it when absent.
// Returns the playlist and whether it was created by this call.
func (e *CapsuleEngine) EnsurePlaylist(ctx context.Context, name, description string, public bool) (*services.Playlist, bool, error) {
	playlist, err := e.spotify.FindPlaylist(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if playlist != nil {
		return playlist, false, nil
	}

	created, err := e.spotify.CreatePlaylist(ctx, name, description, public)
	if err != nil {
		return nil, false, err
	}

	return created, true, nil
}

// ReplaceTracks overwrites the playlist contents. An empty uris sequence is
// a local no-op: the remote call is skipped entirely.
func (e *CapsuleEngine) ReplaceTracks(ctx context.Context, playlistID string, uris []string) error {
	if len(uris) == 0 {
		return nil
	}
	return e.spotify.ReplaceTracks(ctx, playlistID, uris)
}

// Refresh performs one full run: select, find-or-create, replace.
//
// Selection happens before any remote mutation so that an insufficient
// dataset leaves the playlist collection untouched, including not creating
// a missing playlist.
func (e *CapsuleEngine) Refresh(ctx context.Context, opts RefreshOpts) (*RefreshResult, error) {
	if opts.PlaylistName == "" {
		return nil, fmt.Errorf("playlist name is required")
	}

	uris, err := e.SelectTracks(opts.DatasetPath, opts.PerStratum)
	if err != nil {
		return nil, err
	}

	playlist, created, err := e.EnsurePlaylist(ctx, opts.PlaylistName, opts.Description, opts.Public)
	if err != nil {
		return nil, err
	}

	if err := e.ReplaceTracks(ctx, playlist.ID, uris); err != nil {
		return nil, err
	}

	result := &RefreshResult{
		Playlist: *playlist,
		Created:  created,
		URIs:     uris,
		URL:      services.PlaylistURL(playlist.ID),
	}
	result.Playlist.TrackCount = len(uris)

	return result, nil
}
