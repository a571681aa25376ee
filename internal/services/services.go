// package services defines interface Service for interacting with the Spotify Web API
package services

import (
	"context"
)

// Service defines the remote playlist operations the capsule engine depends on.
// The production implementation is [SpotifyService]; tests substitute mocks.
type Service interface {
	// Authenticate attaches a bearer credential to the service.
	// Expects an "access_token" entry in credentials.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// CurrentUser retrieves the authenticated user's identity.
	CurrentUser(ctx context.Context) (*User, error)

	// GetPlaylists retrieves all playlists for the authenticated user,
	// traversing every page of the collection.
	GetPlaylists(ctx context.Context) ([]Playlist, error)

	// FindPlaylist returns the first playlist whose name matches exactly
	// (case-sensitive), or nil if none matches.
	FindPlaylist(ctx context.Context, name string) (*Playlist, error)

	// CreatePlaylist creates a playlist owned by the authenticated user and
	// returns it with its assigned id.
	CreatePlaylist(ctx context.Context, name, description string, public bool) (*Playlist, error)

	// ReplaceTracks overwrites the playlist's entire track list with the
	// given ordered URIs, discarding any previous contents.
	ReplaceTracks(ctx context.Context, playlistID string, uris []string) error

	// AddTracks appends the given URIs to the playlist.
	AddTracks(ctx context.Context, playlistID string, uris []string) error

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}

// User represents the authenticated user's identity
type User struct {
	ID          string
	DisplayName string
}

// Playlist represents a playlist owned by the authenticated user
type Playlist struct {
	ID          string
	Name        string
	Description string
	TrackCount  int
	Public      bool
}

// PlaylistURL returns the public open.spotify.com URL for a playlist id.
func PlaylistURL(id string) string {
	return "https://open.spotify.com/playlist/" + id
}
