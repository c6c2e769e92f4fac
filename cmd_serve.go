package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/marsrover/assets"
	"github.com/robalobadob/marsrover/internal/config"
	"github.com/robalobadob/marsrover/internal/httpserver"
	"github.com/robalobadob/marsrover/internal/store"
)

// catalogStore is what serve needs from a backend: lookups for the
// handlers and writes for seeding.
type catalogStore interface {
	store.Catalog
	store.Writer
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the mission HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cat, closeFn, err := openCatalog(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			if a.cfg.JWTSecret == config.DefaultJWTSecret {
				log.Warn().Msg("JWT_SECRET not set; using the development secret")
			}
			srv := httpserver.New(httpserver.Options{
				Catalog:            cat,
				JWTSecret:          a.cfg.JWTSecret,
				ClientOrigin:       a.cfg.ClientOrigin,
				InterpretTimeout:   a.cfg.InterpretTimeout,
				RateLimitPerMinute: a.cfg.RateLimitPerMinute,
			})
			log.Info().Str("port", a.cfg.Port).Msg("starting marsrover")
			return srv.Start(ctx, ":"+a.cfg.Port)
		},
	}
}

// openCatalog picks SQLite when a DB path is configured and memory
// otherwise, then seeds it from the catalog directory or the bundled
// missions.
func openCatalog(ctx context.Context, cfg config.Config) (catalogStore, func(), error) {
	var (
		cat     catalogStore
		closeFn = func() {}
	)
	if cfg.DBPath != "" {
		db, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		cat = db
		closeFn = func() {
			if err := db.Close(); err != nil {
				log.Error().Err(err).Msg("close catalog")
			}
		}
	} else {
		cat = store.NewMemory()
	}

	var src fs.FS = assets.Missions()
	origin := "embedded"
	if cfg.CatalogDir != "" {
		src = os.DirFS(cfg.CatalogDir)
		origin = cfg.CatalogDir
	}
	n, err := store.Seed(ctx, cat, src)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	log.Info().Int("definitions", n).Str("from", origin).Bool("sqlite", cfg.DBPath != "").Msg("catalog seeded")
	return cat, closeFn, nil
}
