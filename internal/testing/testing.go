// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"

	"capsule/internal/services"
)

// MockService is a configurable test double for [services.Service].
//
// Behavior is driven by the function fields; unset fields fall back to
// benign defaults. Calls are recorded so tests can assert which remote
// operations a flow performed.
type MockService struct {
	AuthenticateFunc   func(ctx context.Context, credentials map[string]string) error
	CurrentUserFunc    func(ctx context.Context) (*services.User, error)
	GetPlaylistsFunc   func(ctx context.Context) ([]services.Playlist, error)
	FindPlaylistFunc   func(ctx context.Context, name string) (*services.Playlist, error)
	CreatePlaylistFunc func(ctx context.Context, name, description string, public bool) (*services.Playlist, error)
	ReplaceTracksFunc  func(ctx context.Context, playlistID string, uris []string) error
	AddTracksFunc      func(ctx context.Context, playlistID string, uris []string) error

	Calls []string
}

func (m *MockService) record(call string) {
	m.Calls = append(m.Calls, call)
}

func (m *MockService) Authenticate(ctx context.Context, credentials map[string]string) error {
	m.record("Authenticate")
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, credentials)
	}
	return nil
}

func (m *MockService) CurrentUser(ctx context.Context) (*services.User, error) {
	m.record("CurrentUser")
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx)
	}
	return &services.User{ID: "mock_user"}, nil
}

func (m *MockService) GetPlaylists(ctx context.Context) ([]services.Playlist, error) {
	m.record("GetPlaylists")
	if m.GetPlaylistsFunc != nil {
		return m.GetPlaylistsFunc(ctx)
	}
	return []services.Playlist{}, nil
}

func (m *MockService) FindPlaylist(ctx context.Context, name string) (*services.Playlist, error) {
	m.record("FindPlaylist")
	if m.FindPlaylistFunc != nil {
		return m.FindPlaylistFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockService) CreatePlaylist(ctx context.Context, name, description string, public bool) (*services.Playlist, error) {
	m.record("CreatePlaylist")
	if m.CreatePlaylistFunc != nil {
		return m.CreatePlaylistFunc(ctx, name, description, public)
	}
	return &services.Playlist{ID: "mock_playlist", Name: name, Description: description, Public: public}, nil
}

func (m *MockService) ReplaceTracks(ctx context.Context, playlistID string, uris []string) error {
	m.record("ReplaceTracks")
	if m.ReplaceTracksFunc != nil {
		return m.ReplaceTracksFunc(ctx, playlistID, uris)
	}
	return nil
}

func (m *MockService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	m.record("AddTracks")
	if m.AddTracksFunc != nil {
		return m.AddTracksFunc(ctx, playlistID, uris)
	}
	return nil
}

func (m *MockService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func NewLimitedWriter(target io.Writer, maxWrites int) *LimitedWriter {
	return &LimitedWriter{maxWrites: maxWrites, target: target}
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}
