package main

import (
	"context"

	"capsule/internal/repositories"
	"capsule/internal/shared"
	"capsule/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Refresh performs one full time-capsule run: resolve credentials, draw the
// stratified sample, find or create the playlist, replace its contents.
func (r *Runner) Refresh(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	opts := tasks.RefreshOpts{
		PlaylistName: r.config.Playlist.Name,
		Description:  r.config.Playlist.Description,
		Public:       r.config.Playlist.Public,
		DatasetPath:  r.config.Dataset.Path,
		PerStratum:   r.config.Capsule.TracksPerStratum,
	}
	if v := cmd.String("dataset"); v != "" {
		opts.DatasetPath = v
	}
	if v := cmd.String("name"); v != "" {
		opts.PlaylistName = v
	}

	if err := r.authenticate(ctx); err != nil {
		return err
	}

	r.logger.Info("starting refresh", "playlist", opts.PlaylistName, "dataset", opts.DatasetPath)

	result, err := r.engine.Refresh(ctx, opts)
	if err != nil {
		return err
	}

	if result.Created {
		r.logger.Info("created playlist", "name", result.Playlist.Name, "id", result.Playlist.ID, "visibility", shared.VisibilityString(result.Playlist.Public))
	} else {
		r.logger.Info("found existing playlist", "name", result.Playlist.Name, "id", result.Playlist.ID)
	}
	r.logger.Info("replaced playlist contents", "tracks", len(result.URIs))

	r.recordRefresh(result)

	r.writePlain("✓ Playlist update complete. Listen to it here: %s\n", result.URL)
	return nil
}

// recordRefresh appends the run to the history database when one is
// configured. History failures are logged, never fatal.
func (r *Runner) recordRefresh(result *tasks.RefreshResult) {
	path := r.config.Database.Path
	if path == "" {
		return
	}

	db, err := shared.NewDatabase(path)
	if err != nil {
		r.logger.Warn("failed to open history database", "err", err)
		return
	}
	defer db.Close()
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	repo, err := repositories.NewRefreshRepository(db)
	if err != nil {
		r.logger.Warn("failed to initialize history schema", "err", err)
		return
	}

	record := repositories.RefreshRecord{
		PlaylistID:      result.Playlist.ID,
		PlaylistName:    result.Playlist.Name,
		CreatedPlaylist: result.Created,
		TrackURIs:       result.URIs,
	}
	if err := repo.Create(&record); err != nil {
		r.logger.Warn("failed to record refresh", "err", err)
	}
}
