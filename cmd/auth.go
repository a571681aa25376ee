package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"capsule/internal/auth"
	"capsule/internal/server"
	"capsule/internal/shared"
	"github.com/urfave/cli/v3"
)

const authTimeout = 5 * time.Minute

// Auth performs the browser OAuth2 authorization-code flow.
//
// Starts a local callback server, opens the browser for user authorization,
// exchanges the code for tokens, and writes the token file the refresh-via-file
// credential strategy reads on later runs.
func (r *Runner) Auth(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	creds := r.config.Credentials
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return fmt.Errorf("%w: client_id and client_secret must be set in config.toml or SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET", shared.ErrInvalidConfig)
	}
	if creds.TokenFile == "" {
		return fmt.Errorf("%w: token_file must be set to store the refresh token", shared.ErrInvalidConfig)
	}

	conf := auth.OAuthConfig(creds.ClientID, creds.ClientSecret, creds.RedirectURI)

	callbackPath := "/callback"
	if u, err := url.Parse(creds.RedirectURI); err == nil && u.Path != "" {
		callbackPath = u.Path
	}

	state := shared.GenerateID()
	handler := server.NewOAuthHandler(conf, state)

	authURL := conf.AuthCodeURL(state)
	r.writePlain("Visit the following URL to authorize:\n\n%s\n\n", authURL)
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warn("failed to open browser", "err", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	r.logger.Info("waiting for authorization callback", "listen", cmd.String("listen"))

	token, err := server.WaitForCallback(waitCtx, cmd.String("listen"), callbackPath, handler)
	if err != nil {
		return err
	}

	if token.RefreshToken == "" {
		return fmt.Errorf("authorization completed but no refresh token was granted")
	}

	if err := auth.WriteTokenFile(creds.TokenFile, creds.ClientID, creds.ClientSecret, creds.RedirectURI, token.RefreshToken); err != nil {
		return err
	}

	r.writePlainln("✓ Authorization successful")
	r.writePlain("✓ Tokens saved to %s\n\n", creds.TokenFile)
	r.writePlain("You can now use: capsule refresh\n")

	return nil
}
