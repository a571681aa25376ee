package main

import (
	"context"

	"capsule/internal/shared"
	"github.com/urfave/cli/v3"
)

// Playlists lists the authenticated user's playlists.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if err := r.authenticate(ctx); err != nil {
		return err
	}

	r.logger.Info("listing playlists", "limit", limit)

	playlists, err := r.spotify.GetPlaylists(ctx)
	if err != nil {
		return err
	}

	if limit > 0 && limit < len(playlists) {
		playlists = playlists[:limit]
	}

	if useJSON {
		return r.writeJSON(playlists, pretty)
	}

	r.writePlain("Found %d playlists:\n\n", len(playlists))
	for i, playlist := range playlists {
		r.writePlain("%3d. %s (%d tracks, %s)\n", i+1, playlist.Name, playlist.TrackCount, shared.VisibilityString(playlist.Public))
	}

	return nil
}
