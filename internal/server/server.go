package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// WaitForCallback serves the OAuth callback on addr until the handler
// receives a result or the context is done, then shuts the server down.
//
// The callback path is taken from the redirect URI registered with the
// application; "/callback" matches the config default.
func WaitForCallback(ctx context.Context, addr, path string, handler *OAuthHandler) (*oauth2.Token, error) {
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	select {
	case result := <-handler.Result():
		if err := result.Error(); err != nil {
			return nil, err
		}
		return result.Token, nil
	case err := <-errCh:
		return nil, fmt.Errorf("callback server failed: %w", err)
	case <-ctx.Done():
		return nil, fmt.Errorf("authorization timed out: %w", ctx.Err())
	}
}
