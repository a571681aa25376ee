package main

import (
	"context"
	"os"

	"capsule/internal/services"
	"capsule/internal/shared"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	// A local .env supplies SPOTIFY_* variables during development; absence is fine.
	godotenv.Load()

	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "err", err)
		}
	}

	spotify := services.NewSpotifyService(map[string]string{
		"client_id":     config.Credentials.ClientID,
		"client_secret": config.Credentials.ClientSecret,
		"redirect_uri":  config.Credentials.RedirectURI,
	})

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Spotify: spotify,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "capsule",
		Usage:    "Refresh a Spotify time-capsule playlist from play-count history",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
