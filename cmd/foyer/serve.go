package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arvhem/foyer"
	"github.com/arvhem/foyer/internal/adapters/memory"
	"github.com/arvhem/foyer/internal/adapters/redis"
	"github.com/arvhem/foyer/internal/config"
	"github.com/arvhem/foyer/internal/logging"
	"github.com/arvhem/foyer/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the shell HTTP server",
	Long:  `Starts the Foyer shell, serving one route per page with the shared layout around it.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config addr)")
	serveCmd.Flags().String("config", "", "Path to the config file")
	serveCmd.Flags().Bool("watch", false, "Reload content when page files change")
}

func runServe(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags override file values.
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		cfg.ContentDir = dir
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Addr = ":" + port
	}
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		cfg.Watch = true
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	cache, err := buildCache(cfg.Cache)
	if err != nil {
		return err
	}

	opts := []foyer.Option{
		foyer.WithLogger(logger),
		foyer.WithAppName(cfg.AppName),
	}
	if cache != nil {
		opts = append(opts, foyer.WithCache(cache))
	}
	if cfg.Metrics {
		opts = append(opts, foyer.WithMetrics())
	}

	app, err := foyer.New(cfg.ContentDir, opts...)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: app.Handler(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Watch {
		if err := startWatch(ctx, app, logger); err != nil {
			return err
		}
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("starting server", "addr", srv.Addr, "pages", len(app.Routes()))
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt or terminate signals.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("starting shutdown", "signal", sig.String())

		// Give outstanding requests a deadline for completion.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("could not stop server: %w", err)
			}
		}
		logger.Info("server stopped")
	}

	return nil
}

// buildCache constructs the configured cache backend; nil disables caching.
func buildCache(cfg config.Cache) (ports.PageCache, error) {
	switch cfg.Backend {
	case "", "none":
		return nil, nil
	case "memory":
		return memory.New(), nil
	case "redis":
		ttl, err := cfg.TTLDuration()
		if err != nil {
			return nil, err
		}
		var opts []redis.Option
		if ttl > 0 {
			opts = append(opts, redis.WithTTL(ttl))
		}
		if cfg.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Prefix))
		}
		return redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, opts...), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// startWatch reloads content (and drops cached renders) when page files change.
func startWatch(ctx context.Context, app *foyer.App, logger *slog.Logger) error {
	changes, err := app.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch content: %w", err)
	}
	go func() {
		for name := range changes {
			logger.Info("content changed, reloading", "file", name)
			if err := app.Reload(ctx); err != nil {
				logger.Warn("reload failed, keeping previous pages", "err", err)
			}
		}
	}()
	return nil
}
