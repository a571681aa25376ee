package main

import (
	"context"

	"capsule/internal/repositories"
	"capsule/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a starter config file and initializes the history database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		r.logger.Warn("config file not created", "err", err)
	} else {
		r.writePlain("✓ Wrote starter config to %s\n", configPath)
	}

	if cmd.Bool("skip-database") {
		return nil
	}

	path := r.config.Database.Path
	if path == "" {
		r.writePlain("No database path configured; history disabled.\n")
		return nil
	}

	db, err := shared.NewDatabase(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := repositories.NewRefreshRepository(db); err != nil {
		return err
	}

	r.writePlain("✓ History database ready at %s\n", path)
	return nil
}
