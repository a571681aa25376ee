package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"capsule/internal/auth"
	"capsule/internal/services"
	"capsule/internal/shared"
	"capsule/internal/tasks"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	spotify services.Service
	logger  *log.Logger
	output  io.Writer
	engine  *tasks.CapsuleEngine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Spotify services.Service
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:  opts.Config,
		spotify: opts.Spotify,
		logger:  opts.Logger,
		output:  opts.Output,
		engine:  tasks.NewCapsuleEngine(opts.Spotify),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		refreshCommand, previewCommand, authCommand, playlistsCommand, historyCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// reloadConfig swaps in the config named by the command's --config flag
// when it points somewhere other than the file loaded at startup.
func (r *Runner) reloadConfig(cmd *cli.Command) {
	path := cmd.String("config")
	if path == "" || path == "config.toml" {
		return
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warn("failed to load config, keeping current", "path", path, "err", err)
		return
	}
	r.config = config
}

// credentialConfig maps the loaded configuration onto the resolver's inputs.
func (r *Runner) credentialConfig() auth.Config {
	creds := r.config.Credentials
	return auth.Config{
		AccessToken:  creds.AccessToken,
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RefreshToken: creds.RefreshToken,
		RedirectURI:  creds.RedirectURI,
		TokenFile:    creds.TokenFile,
	}
}

// authenticate resolves a bearer credential and attaches it to the Spotify service.
func (r *Runner) authenticate(ctx context.Context) error {
	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify service not initialized", shared.ErrRemoteService)
	}

	token, err := auth.NewResolver(r.credentialConfig()).Resolve(ctx)
	if err != nil {
		return err
	}

	return r.spotify.Authenticate(ctx, map[string]string{"access_token": token.AccessToken})
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
