package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/hmizuno/taskdeck/internal/api"
	"github.com/hmizuno/taskdeck/internal/app"
	"github.com/hmizuno/taskdeck/internal/infra/config"
	"github.com/hmizuno/taskdeck/internal/infra/seed"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var configPath string
	var addr string
	var seedPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if seedPath != "" {
				cfg.SeedFile = seedPath
			}

			return runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "taskdeck.toml", "path to the configuration file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML fixture file loaded at startup (overrides config)")

	return cmd
}

func runServer(ctx context.Context, cfg config.Config) error {
	c := app.New(cfg)
	log := c.Logger

	if cfg.SeedFile != "" {
		f, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return err
		}
		nLists, nTasks, err := seed.Apply(f, c.Lists, c.Tasks, c.Clock)
		if err != nil {
			return fmt.Errorf("apply seed: %w", err)
		}
		log.Info("seed applied", "file", cfg.SeedFile, "lists", nLists, "tasks", nTasks)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		ReadHeaderTimeout: cfg.ShutdownTimeout.Std(),
		Handler:           api.NewServer(c).Handler(),
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout.Std())
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
