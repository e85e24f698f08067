package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	portal "github.com/swdepot/go-portal"
	"github.com/swdepot/go-portal/storage/bunstore"
)

var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Command line client for the software distribution portal",
	Long: `portalctl talks to the software distribution portal the same way the
web console does: log in once, the session is persisted locally, and every
call carries the bearer token until the backend invalidates it.

The backend address is read from PORTAL_API_URL (default
http://localhost:8000/api). Session state lives under ~/.portalctl.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

type app struct {
	store     *portal.SessionStore
	auth      *portal.AuthService
	software  *portal.SoftwareService
	requests  *portal.RequestService
	downloads *portal.DownloadService
	closer    func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg := portal.DefaultConfig()
	if url := os.Getenv("PORTAL_API_URL"); url != "" {
		cfg.BaseURL = url
	}

	storage, closer, err := openStorage(ctx)
	if err != nil {
		return nil, err
	}

	store := portal.NewSessionStore(ctx, storage)

	client := portal.NewClient(cfg).
		WithTokenSource(store).
		WithSessionTerminator(store).
		WithNoticeSink(portal.NoticeSinkFunc(func(_ context.Context, n portal.Notice) error {
			fmt.Fprintf(os.Stderr, "! %s\n", n.Message)
			return nil
		}))

	auth := portal.NewAuthService(client)
	store.WithAuthenticator(auth)

	return &app{
		store:     store,
		auth:      auth,
		software:  portal.NewSoftwareService(client),
		requests:  portal.NewRequestService(client),
		downloads: portal.NewDownloadService(client),
		closer:    closer,
	}, nil
}

func (a *app) Close() {
	if a.closer != nil {
		a.closer()
	}
}

// openStorage picks the session backend: sqlite when PORTAL_SESSION_DB is
// set, a JSON file under ~/.portalctl otherwise.
func openStorage(ctx context.Context) (portal.Storage, func() error, error) {
	if dsn := os.Getenv("PORTAL_SESSION_DB"); dsn != "" {
		store, err := bunstore.Open(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, err
	}
	path := filepath.Join(home, ".portalctl", "session.json")
	return portal.NewFileStorage(path), nil, nil
}
