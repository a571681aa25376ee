package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Playlist    PlaylistConfig    `toml:"playlist"`
	Dataset     DatasetConfig     `toml:"dataset"`
	Capsule     CapsuleConfig     `toml:"capsule"`
	Database    DatabaseConfig    `toml:"database"`
}

// CredentialsConfig contains Spotify credentials and the token file location.
//
// Fields map onto the three credential strategies: a pre-issued access
// token, a refreshable client/secret/refresh-token triple, and a token file.
type CredentialsConfig struct {
	AccessToken  string `toml:"access_token"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
	RefreshToken string `toml:"refresh_token"`
	TokenFile    string `toml:"token_file"`
}

// PlaylistConfig describes the target time-capsule playlist.
type PlaylistConfig struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Public      bool   `toml:"public"`
}

// DatasetConfig locates the play-count dataset. Path may be a local file or an HTTP(S) URL.
type DatasetConfig struct {
	Path string `toml:"path"`
}

// CapsuleConfig holds selection settings.
type CapsuleConfig struct {
	TracksPerStratum int `toml:"tracks_per_stratum"`
}

// DatabaseConfig contains refresh-history database settings. An empty path disables history.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv overlays SPOTIFY_* environment variables onto credential fields.
// Environment values win over file values so that CI secrets take priority.
func (c *Config) applyEnv() {
	for env, field := range map[string]*string{
		"SPOTIFY_ACCESS_TOKEN":  &c.Credentials.AccessToken,
		"SPOTIFY_CLIENT_ID":     &c.Credentials.ClientID,
		"SPOTIFY_CLIENT_SECRET": &c.Credentials.ClientSecret,
		"SPOTIFY_REDIRECT_URI":  &c.Credentials.RedirectURI,
		"SPOTIFY_REFRESH_TOKEN": &c.Credentials.RefreshToken,
	} {
		if v := os.Getenv(env); v != "" {
			*field = v
		}
	}
}
