package main

import (
	"context"
	"fmt"
	"os"

	"capsule/internal/dataset"
	"capsule/internal/formatter"
	"capsule/internal/sampler"
	"capsule/internal/ui"
	"github.com/urfave/cli/v3"
)

// Preview draws a sample from the dataset and renders it locally.
// No remote calls are made.
func (r *Runner) Preview(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	path := r.config.Dataset.Path
	if v := cmd.String("dataset"); v != "" {
		path = v
	}

	tracks, err := dataset.Load(path)
	if err != nil {
		return err
	}

	perStratum := r.config.Capsule.TracksPerStratum

	if cmd.Bool("tui") {
		return ui.Run(r.config.Playlist.Name, tracks, perStratum)
	}

	selected, err := sampler.SampleTracks(tracks, perStratum)
	if err != nil {
		return err
	}

	rendered, err := formatter.Format(cmd.String("format"), r.config.Playlist.Name, selected)
	if err != nil {
		return err
	}

	if outputPath := cmd.String("output"); outputPath != "" {
		if err := os.WriteFile(outputPath, rendered, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return r.writePlain("✓ Sample written to %s\n", outputPath)
	}

	return r.writePlain("%s", rendered)
}
