package cmd

import (
	"fmt"
	"os"

	"github.com/castkeep/castkeep/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "castkeep",
	Short: "Podcast CMS server",
	Long: `Castkeep - A content management system for podcast publishers

Castkeep manages podcast series and their episodes, serves the admin
interface editors use to curate them, exposes a JSON API, and publishes
RSS feeds podcast directories can subscribe to.

Features:
  • Podcast and episode management with draft and scheduled publishing
  • Server-rendered admin listing with pagination
  • JSON API for integrations
  • RSS 2.0 feeds with iTunes extensions and FeedBurner delegation`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (json, text)")
}

// loadConfig initializes configuration for commands that need it
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Flags beat file and env values.
	if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format, _ := rootCmd.PersistentFlags().GetString("log-format"); format != "" {
		cfg.Logging.Format = format
	}
	return cfg, nil
}
