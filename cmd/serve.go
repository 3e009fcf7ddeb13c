package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jordanopensource/topcontrib/internal"
	"github.com/jordanopensource/topcontrib/internal/api"
	"github.com/jordanopensource/topcontrib/internal/snapcache"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the leaderboard and statistics API over HTTP",
	Long: `Start the HTTP server exposing the contribution leaderboard,
organization rankings and growth statistics under /v1.

The user collection is served from an in-memory snapshot that refreshes
on an interval, so list requests never wait on the data store.

Examples:
  # Serve on the default port with a local SQLite store
  topcontrib serve

  # Serve a PostgreSQL-backed deployment on port 3000
  topcontrib serve --port 3000 --backend postgresql \
    --db-connect "host=localhost user=postgres dbname=topcontrib"`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openStore()
		if err != nil {
			internal.FatalError("Cannot open store", err)
		}
		defer func() { _ = store.Close() }()

		users := snapcache.New(store, cfg.RefreshInterval)
		if err := users.Refresh(rootCtx); err != nil {
			internal.Warning("Initial snapshot load failed, serving lazily: " + err.Error())
		}

		refreshCtx, cancel := context.WithCancel(rootCtx)
		defer cancel()
		go users.Run(refreshCtx)

		if err := api.New(cfg, store, users).Start(); err != nil {
			internal.FatalError("Server stopped", err)
		}
	},
}
