package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/castkeep/castkeep/api"
	"github.com/castkeep/castkeep/api/types"
	"github.com/castkeep/castkeep/internal/database"
	"github.com/castkeep/castkeep/internal/logging"
	"github.com/castkeep/castkeep/internal/models"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CMS server",
	Long: `Start the Castkeep server with the configured settings.

The server hosts the admin interface, the JSON API, and the public
RSS feeds on a single port.

Example:
  castkeep serve
  castkeep serve --port 9090
  castkeep serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, logCloser := logging.Setup(cfg.Logging)
	if logCloser != nil {
		defer logCloser.Close()
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Podcast{}, &models.Episode{}); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	srv := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	srv.SetDatabase(db)
	srv.SetDependencies(&types.Dependencies{DB: db, Config: cfg})
	if err := srv.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	slog.Info("server ready", "host", serverHost, "port", serverPort, "environment", cfg.Environment)

	select {
	case <-stop:
		slog.Info("shutdown signal received")
	case err := <-serverErr:
		slog.Error("server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
