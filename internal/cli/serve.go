package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stridelabs/albumwalk/internal/adapters/ors"
	"github.com/stridelabs/albumwalk/internal/adapters/rest"
	"github.com/stridelabs/albumwalk/internal/adapters/spotify"
	"github.com/stridelabs/albumwalk/internal/core/services"
	"github.com/stridelabs/albumwalk/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and frontend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		planner, err := buildPlanner(cmd.Context())
		if err != nil {
			return err
		}

		pool := worker.NewArtifactPool(cfg.ArtifactDir, 100, logger)
		pool.Start(2)
		defer pool.Stop()

		handler := rest.NewHandler(
			planner,
			rest.MapsConfig{GoogleMapsAPIKey: cfg.GoogleMapsAPIKey},
			pool,
			cfg.WebDir,
			logger,
		)

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      120 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			logger.Info("serving", zap.String("addr", srv.Addr))
			err := srv.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				serverErr <- err
				return
			}
			serverErr <- nil
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-serverErr:
			return err
		case <-ctx.Done():
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown error", zap.Error(err))
			}
			return nil
		}
	},
}

// buildPlanner assembles the production adapters behind the planner.
func buildPlanner(ctx context.Context) (*services.TripPlanner, error) {
	authClient := spotify.NewAuthenticatedHTTPClient(ctx, cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	catalog := spotify.NewClient(authClient, "", logger)

	routes, err := ors.NewClient(cfg.ORSAPIKey, logger)
	if err != nil {
		return nil, err
	}

	return services.NewTripPlanner(catalog, routes, logger), nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
