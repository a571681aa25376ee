package main

import (
	"context"
	"fmt"

	"capsule/internal/repositories"
	"capsule/internal/shared"
	"github.com/urfave/cli/v3"
)

// History lists past refreshes recorded in the local database.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	path := r.config.Database.Path
	if path == "" {
		return fmt.Errorf("%w: no database path configured", shared.ErrInvalidConfig)
	}

	db, err := shared.NewDatabase(path)
	if err != nil {
		return err
	}
	defer db.Close()

	repo, err := repositories.NewRefreshRepository(db)
	if err != nil {
		return err
	}

	records, err := repo.List(cmd.Int("limit"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(records, true)
	}

	if len(records) == 0 {
		return r.writePlain("No refreshes recorded yet.\n")
	}

	r.writePlain("Last %d refreshes:\n\n", len(records))
	for _, record := range records {
		action := "refreshed"
		if record.CreatedPlaylist {
			action = "created + filled"
		}
		r.writePlain("%s  %-16s %q (%d tracks)\n", record.CreatedAt.Format("2006-01-02 15:04"), action, record.PlaylistName, len(record.TrackURIs))
	}

	return nil
}
