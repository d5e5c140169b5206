package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"notes/internal/config"
	"notes/internal/database"
	"notes/internal/database/models"
	"notes/internal/server"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	port    int
)

var rootCmd = &cobra.Command{
	Use:          "notes",
	Short:        "Serve the notes API",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides PORT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	app := server.New(cfg, database.New(models.SeedNotes()))
	app.RegisterFiberRoutes()

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "port", cfg.Port)
		listenErr <- app.Listen(cfg.Addr())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("server exiting")
	return nil
}
