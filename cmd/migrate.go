package cmd

import (
	"fmt"

	"github.com/castkeep/castkeep/internal/database"
	"github.com/castkeep/castkeep/internal/models"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long: `Manage the Castkeep database schema.

Available subcommands:
  up      - Bring the schema up to date
  status  - Show which tables exist`,
}

// migrateUpCmd applies schema changes
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Bring the schema up to date",
	RunE:  runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func openDatabase() (*database.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Podcast{}, &models.Episode{}); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	for _, model := range []interface{}{&models.Podcast{}, &models.Episode{}} {
		stmt := db.DB.Model(model).Statement
		if err := stmt.Parse(model); err != nil {
			return err
		}
		state := "missing"
		if db.DB.Migrator().HasTable(model) {
			state = "present"
		}
		fmt.Fprintf(out, "%-20s %s\n", stmt.Schema.Table, state)
	}
	return nil
}
