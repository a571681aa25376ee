// Package auth resolves a Spotify bearer credential from an ordered list of strategies.
//
// Three strategies are tried in priority order, first usable one wins:
//
//  1. a pre-issued access token (short-lived tokens from CI secrets)
//  2. a client id / client secret / refresh token triple, refreshed
//     against the token endpoint
//  3. a local token file holding the same triple plus a redirect target
//
// A strategy that is not configured reports unavailable and the resolver
// moves on; a strategy that is configured but fails to refresh aborts
// resolution, since silently falling through would mask a broken setup.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"capsule/internal/shared"
	"golang.org/x/oauth2"
)

// Spotify account-service endpoints. Vars so tests can point the refresh
// flow at a local server.
var (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
)

// Scopes are the OAuth scopes a refreshed token must carry to mutate playlists.
var Scopes = []string{"playlist-modify-public", "playlist-modify-private"}

// Config carries every input the resolver may use. It is passed in
// explicitly at startup; the package keeps no process-wide state.
type Config struct {
	AccessToken  string // strategy 1
	ClientID     string // strategy 2
	ClientSecret string // strategy 2
	RefreshToken string // strategy 2
	RedirectURI  string // strategy 2, required explicitly
	TokenFile    string // strategy 3
}

// Strategy produces a valid bearer credential or reports unavailable.
type Strategy interface {
	// Resolve returns a token, or an error wrapping
	// [shared.ErrCredentialUnavailable] when the strategy has nothing to
	// offer and the next one should be tried.
	Resolve(ctx context.Context) (*oauth2.Token, error)

	// Name identifies the strategy in logs and errors.
	Name() string
}

// Resolver tries its strategies in order until one yields a token.
type Resolver struct {
	strategies []Strategy
}

// NewResolver builds the standard three-strategy resolver for the given config.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{strategies: []Strategy{
		staticToken{token: cfg.AccessToken},
		envRefresh{cfg: cfg},
		tokenFile{path: cfg.TokenFile},
	}}
}

// Resolve returns the first token produced by a strategy. When every
// strategy reports unavailable the result wraps [shared.ErrCredentialUnavailable].
func (r *Resolver) Resolve(ctx context.Context) (*oauth2.Token, error) {
	for _, s := range r.strategies {
		token, err := s.Resolve(ctx)
		if err == nil {
			return token, nil
		}
		if errors.Is(err, shared.ErrCredentialUnavailable) {
			continue
		}
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}

	return nil, fmt.Errorf("%w: set SPOTIFY_ACCESS_TOKEN, the SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET/SPOTIFY_REFRESH_TOKEN/SPOTIFY_REDIRECT_URI group, or provide a token file", shared.ErrCredentialUnavailable)
}

// staticToken uses a pre-issued access token as-is.
type staticToken struct {
	token string
}

func (s staticToken) Name() string { return "static token" }

func (s staticToken) Resolve(ctx context.Context) (*oauth2.Token, error) {
	if s.token == "" {
		return nil, shared.ErrCredentialUnavailable
	}
	return &oauth2.Token{AccessToken: s.token}, nil
}

// envRefresh refreshes an access token from a client/secret/refresh-token
// triple. The redirect target must be provided explicitly; there is no
// guessed default.
type envRefresh struct {
	cfg Config
}

func (e envRefresh) Name() string { return "refresh via environment" }

func (e envRefresh) Resolve(ctx context.Context) (*oauth2.Token, error) {
	c := e.cfg
	if c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "" || c.RedirectURI == "" {
		return nil, shared.ErrCredentialUnavailable
	}
	return refreshToken(ctx, c.ClientID, c.ClientSecret, c.RedirectURI, c.RefreshToken)
}

// tokenFileData mirrors the JSON layout of the stored token file.
type tokenFileData struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURI  string `json:"redirect_uri"`
	RefreshToken string `json:"refresh_token"`
}

// tokenFile refreshes an access token from credentials stored in a local JSON file.
type tokenFile struct {
	path string
}

func (t tokenFile) Name() string { return "refresh via token file" }

func (t tokenFile) Resolve(ctx context.Context) (*oauth2.Token, error) {
	if t.path == "" {
		return nil, shared.ErrCredentialUnavailable
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, shared.ErrCredentialUnavailable
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var stored tokenFileData
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: malformed token file %s: %v", shared.ErrInvalidConfig, t.path, err)
	}

	if stored.ClientID == "" || stored.ClientSecret == "" || stored.RefreshToken == "" {
		return nil, fmt.Errorf("%w: token file %s is missing client_id, client_secret, or refresh_token", shared.ErrInvalidConfig, t.path)
	}

	return refreshToken(ctx, stored.ClientID, stored.ClientSecret, stored.RedirectURI, stored.RefreshToken)
}

// WriteTokenFile stores refresh credentials in the layout the token-file
// strategy reads back. Used by the interactive authorization flow.
func WriteTokenFile(path, clientID, clientSecret, redirectURI, refreshToken string) error {
	data, err := json.MarshalIndent(tokenFileData{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  redirectURI,
		RefreshToken: refreshToken,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token file: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// OAuthConfig builds the oauth2 config shared by the refresh strategies and
// the interactive authorization flow.
func OAuthConfig(clientID, clientSecret, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: spotifyTokenURL,
		},
	}
}

func refreshToken(ctx context.Context, clientID, clientSecret, redirectURI, refresh string) (*oauth2.Token, error) {
	conf := OAuthConfig(clientID, clientSecret, redirectURI)
	source := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refresh})

	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrCredentialRefresh, err)
	}

	return token, nil
}
