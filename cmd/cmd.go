// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// refreshCommand runs the full time-capsule refresh
func refreshCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "refresh",
		Aliases: []string{"run"},
		Usage:   "Replace the time-capsule playlist with a fresh stratified sample",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "dataset",
				Aliases: []string{"d"},
				Usage:   "Path or URL of the play-count CSV (overrides config)",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Playlist name (overrides config)",
			},
		},
		Action: r.Refresh,
	}
}

// previewCommand samples without touching the remote service
func previewCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Draw a sample from the dataset without touching Spotify",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "dataset",
				Aliases: []string{"d"},
				Usage:   "Path or URL of the play-count CSV (overrides config)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, csv, markdown",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (defaults to stdout)",
			},
			&cli.BoolFlag{
				Name:  "tui",
				Usage: "Browse the sample interactively",
			},
		},
		Action: r.Preview,
	}
}

// authCommand runs the browser authorization flow
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authorize with Spotify and store a refresh token for later runs",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "listen",
				Usage: "Address for the local callback server",
				Value: ":8080",
			},
		},
		Action: r.Auth,
	}
}

// playlistsCommand lists the authenticated user's playlists
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlists",
		Usage: "List your Spotify playlists",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of playlists to print",
				Value: 50,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Playlists,
	}
}

// historyCommand lists past refreshes
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List past refreshes recorded in the local database",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of records to print",
				Value: 20,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.History,
	}
}

// setupCommand writes a starter config and initializes the history database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a starter config.toml and initialize the history database",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "skip-database",
				Usage: "Only write the config file",
			},
		},
		Action: r.Setup,
	}
}
