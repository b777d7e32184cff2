package cmd

import (
	"fmt"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/internal/persist"
	"github.com/huangsam/herotier/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup opens only the history store.
// This is used by commands that need history access without full shared setup.
func historySetup(_ *cobra.Command, _ []string) error {
	backend, connStr, err := storeSetup("history-backend", "history-db-connect")
	if err != nil {
		return err
	}

	// Initialize history with the loaded config (no profile store for history commands)
	if err := persist.InitStores("", "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historyMigrateSetup loads the history backend without creating tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup(_ *cobra.Command, _ []string) error {
	backend, connStr, err := storeSetup("history-backend", "history-db-connect")
	if err != nil {
		return err
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	return nil
}

// historyCmd focused on tier list run tracking.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup. This avoids roster loading and weight resolution for
// simple maintenance operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage tier list run history and exports",
	Long: `Manage the history of tier list runs.

When enabled with --history-backend, herotier records every tier list run, storing:
- Run metadata (timestamp, preset, weights, duration)
- Every hero's score, tier and rank
- Score statistics of the run

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status  - Show history statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all history
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  herotier history status --history-backend sqlite

  # Export for analysis in pandas/DuckDB
  herotier history export --history-backend sqlite --output-file history.parquet`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display history statistics and connection details",
	Args:    cobra.NoArgs,
	PreRunE: historySetup,
	Run: func(_ *cobra.Command, _ []string) {
		store := persist.Manager.GetHistoryStore()
		if store == nil {
			contract.LogFatal("Failed to get history status", fmt.Errorf("history store is not initialized"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		persist.PrintHistoryStatus(status)
	},
}

// historyClearCmd clears the history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded tier list runs",
	Long: `Delete all recorded runs and hero results.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  herotier history export --output-file backup.parquet
  herotier history clear`,
	Args:    cobra.NoArgs,
	PreRunE: historyMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.HistoryBackend == schema.NoneBackend {
			fmt.Println("History backend is none; nothing to clear.")
			return
		}
		path := sqliteFilePath(cfg.HistoryDBConnect, contract.GetHistoryDBFilePath())
		if err := persist.ClearHistory(cfg.HistoryBackend, path, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyExportCmd exports history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to Parquet for BI tools and analytics",
	Long: `Export all recorded runs and hero results to Parquet.

Requires: --output-file parameter

Examples:
  # Export all data
  herotier history export --output-file herotier-data.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT tier, count(*) FROM read_parquet('herotier-data.parquet.hero_results.parquet') GROUP BY tier"`,
	Args:    cobra.NoArgs,
	PreRunE: historySetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := persist.ExecuteHistoryExport(persist.Manager.GetHistoryStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  herotier history migrate --history-backend sqlite

  # Rollback to the initial state
  herotier history migrate --history-backend sqlite --target-version 0`,
	Args:    cobra.NoArgs,
	PreRunE: historyMigrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := persist.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
