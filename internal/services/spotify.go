// Spotify API implementation of [Service]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"capsule/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	// Maximum page size accepted by /me/playlists
	playlistPageSize = 50

	// Requests per second against the API; Spotify throttles bursty clients
	requestsPerSecond = 5
)

// SpotifyUser represents a Spotify user profile.
type SpotifyUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Country     string `json:"country"`
	Product     string `json:"product"` // premium, free, etc.
}

// Owner represents the owner of a playlist.
type Owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type playlistTracks struct {
	Total int `json:"total"`
}

// SpotifyPlaylist represents a full Spotify playlist object.
type SpotifyPlaylist struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Owner       Owner          `json:"owner"`
	Public      bool           `json:"public"`
	Tracks      playlistTracks `json:"tracks"`
	URI         string         `json:"uri"`
}

// SpotifySimplePlaylist represents a simplified playlist object (used in lists).
type SpotifySimplePlaylist struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Owner       Owner          `json:"owner"`
	Public      bool           `json:"public"`
	Tracks      playlistTracks `json:"tracks"`
	URI         string         `json:"uri"`
}

// SpotifyPaginatedPlaylists represents a paginated response of playlists.
type SpotifyPaginatedPlaylists struct {
	Items    []SpotifySimplePlaylist `json:"items"`
	Total    int                     `json:"total"`
	Limit    int                     `json:"limit"`
	Offset   int                     `json:"offset"`
	Next     *string                 `json:"next"`
	Previous *string                 `json:"previous"`
}

// SpotifyService implements the Service interface for Spotify API interactions.
// Uses [oauth2] for authentication and a [rate.Limiter] to stay under the API's request throttle.
type SpotifyService struct {
	config     *oauth2.Config
	token      *oauth2.Token
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// NewSpotifyService creates a new Spotify service with the given OAuth2 credentials.
//
// client_id and client_secret may be empty when the caller only ever
// authenticates with a pre-issued access token; GetAuthURL and OAuthConfig
// are only meaningful when both are set.
func NewSpotifyService(credentials map[string]string) *SpotifyService {
	redirectURI := credentials["redirect_uri"]
	if redirectURI == "" {
		redirectURI = "http://localhost:8080/callback"
	}

	config := &oauth2.Config{
		ClientID:     credentials["client_id"],
		ClientSecret: credentials["client_secret"],
		RedirectURL:  redirectURI,
		Scopes: []string{
			"playlist-read-private",
			"playlist-modify-public",
			"playlist-modify-private",
		},
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: spotifyTokenURL,
		},
	}

	return &SpotifyService{
		config:     config,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		baseURL:    spotifyBaseURL,
	}
}

// Authenticate attaches a bearer credential to the service. Expects an "access_token" in credentials.
func (s *SpotifyService) Authenticate(ctx context.Context, credentials map[string]string) error {
	accessToken, ok := credentials["access_token"]
	if !ok || accessToken == "" {
		return fmt.Errorf("%w: missing access_token in credentials", shared.ErrNotAuthenticated)
	}

	s.token = &oauth2.Token{AccessToken: accessToken}
	s.httpClient = s.config.Client(ctx, s.token)
	return nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// GetAuthURL returns the OAuth2 authorization URL for user login.
func (s *SpotifyService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// OAuthConfig exposes the underlying OAuth2 config for the callback flow.
func (s *SpotifyService) OAuthConfig() *oauth2.Config {
	return s.config
}

// doRequest performs an authenticated HTTP request to the Spotify API.
func (s *SpotifyService) doRequest(ctx context.Context, method, endpoint string, body interface{}, result interface{}) error {
	if s.token == nil {
		return fmt.Errorf("%w: call Authenticate first", shared.ErrNotAuthenticated)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter interrupted: %w", err)
	}

	apiURL := s.baseURL + endpoint

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrRemoteService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s returned status %d", shared.ErrRemoteService, method, endpoint, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// UserProfile retrieves the current authenticated user's full profile.
func (s *SpotifyService) UserProfile(ctx context.Context) (*SpotifyUser, error) {
	var user SpotifyUser
	if err := s.doRequest(ctx, http.MethodGet, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserPlaylists retrieves one page of the current user's playlists.
func (s *SpotifyService) UserPlaylists(ctx context.Context, limit, offset int) (*SpotifyPaginatedPlaylists, error) {
	if limit <= 0 || limit > playlistPageSize {
		limit = playlistPageSize
	}

	endpoint := fmt.Sprintf("/me/playlists?limit=%d&offset=%d", limit, offset)

	var response SpotifyPaginatedPlaylists
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// PlaylistPager is a lazy sequential producer over the user's playlist
// collection. Each call to Next fetches the following page; a nil page
// signals exhaustion. A new pager restarts the traversal from scratch.
type PlaylistPager struct {
	svc    *SpotifyService
	offset int
	done   bool
}

// PlaylistPager creates a pager positioned at the start of the collection.
func (s *SpotifyService) PlaylistPager() *PlaylistPager {
	return &PlaylistPager{svc: s}
}

// Next returns the next page of playlists, or nil once no further page is signaled.
func (p *PlaylistPager) Next(ctx context.Context) ([]SpotifySimplePlaylist, error) {
	if p.done {
		return nil, nil
	}

	response, err := p.svc.UserPlaylists(ctx, playlistPageSize, p.offset)
	if err != nil {
		return nil, err
	}

	if response.Next == nil {
		p.done = true
	}
	p.offset += playlistPageSize

	return response.Items, nil
}

// Service interface implementation

// CurrentUser retrieves the authenticated user's identity.
func (s *SpotifyService) CurrentUser(ctx context.Context) (*User, error) {
	profile, err := s.UserProfile(ctx)
	if err != nil {
		return nil, err
	}
	return &User{ID: profile.ID, DisplayName: profile.DisplayName}, nil
}

// GetPlaylists retrieves all playlists for the authenticated user.
func (s *SpotifyService) GetPlaylists(ctx context.Context) ([]Playlist, error) {
	var allPlaylists []Playlist

	pager := s.PlaylistPager()
	for {
		page, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		if page == nil {
			break
		}

		for _, sp := range page {
			allPlaylists = append(allPlaylists, Playlist{
				ID:          sp.ID,
				Name:        sp.Name,
				Description: sp.Description,
				TrackCount:  sp.Tracks.Total,
				Public:      sp.Public,
			})
		}
	}

	return allPlaylists, nil
}

// FindPlaylist returns the first playlist whose name matches exactly, or nil if none matches.
//
// The traversal stops at the first match; when duplicate names exist the
// remote enumeration order decides which one wins.
func (s *SpotifyService) FindPlaylist(ctx context.Context, name string) (*Playlist, error) {
	pager := s.PlaylistPager()
	for {
		page, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return nil, nil
		}

		for _, sp := range page {
			if sp.Name == name {
				return &Playlist{
					ID:          sp.ID,
					Name:        sp.Name,
					Description: sp.Description,
					TrackCount:  sp.Tracks.Total,
					Public:      sp.Public,
				}, nil
			}
		}
	}
}

// CreatePlaylist creates a playlist owned by the authenticated user.
func (s *SpotifyService) CreatePlaylist(ctx context.Context, name, description string, public bool) (*Playlist, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"name":        name,
		"description": description,
		"public":      public,
	}

	var created SpotifyPlaylist
	endpoint := fmt.Sprintf("/users/%s/playlists", user.ID)
	if err := s.doRequest(ctx, http.MethodPost, endpoint, body, &created); err != nil {
		return nil, err
	}

	return &Playlist{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
		TrackCount:  created.Tracks.Total,
		Public:      created.Public,
	}, nil
}

// ReplaceTracks overwrites the playlist's entire track list with the given URIs.
func (s *SpotifyService) ReplaceTracks(ctx context.Context, playlistID string, uris []string) error {
	body := map[string]any{"uris": uris}
	endpoint := fmt.Sprintf("/playlists/%s/tracks", playlistID)
	return s.doRequest(ctx, http.MethodPut, endpoint, body, nil)
}

// AddTracks appends the given URIs to the playlist.
func (s *SpotifyService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	body := map[string]any{"uris": uris}
	endpoint := fmt.Sprintf("/playlists/%s/tracks", playlistID)
	return s.doRequest(ctx, http.MethodPost, endpoint, body, nil)
}
