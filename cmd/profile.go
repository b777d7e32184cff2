package cmd

import (
	"fmt"

	"github.com/huangsam/herotier/core"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/internal/persist"
	"github.com/huangsam/herotier/schema"
	"github.com/spf13/cobra"
)

// profileSetup opens only the profile store.
// This is used by commands that need profile access without full shared setup.
func profileSetup(_ *cobra.Command, _ []string) error {
	backend, connStr, err := storeSetup("profile-backend", "profile-db-connect")
	if err != nil {
		return err
	}

	// Initialize profiles with the loaded config (no history tracking for profile commands)
	if err := persist.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize profiles: %w", err)
	}

	cfg.ProfileBackend = backend
	cfg.ProfileDBConnect = connStr
	return nil
}

// profileCmd focused on stored weighting profiles.
//
// Note: status and clear use minimal initialization (profileSetup) instead of
// the full sharedSetup. The others resolve weights and need the whole config.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored weighting profiles",
	Long: `Manage named weighting profiles kept in a database.

A profile stores the dimension weights resolved from a preset and overrides.
Load one with --profile on any command; its weights sit between the preset and
the settings file.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  save   - Store the resolved weighting under a name
  show   - Print one profile
  list   - List stored profile names
  status - Show profile store statistics
  clear  - Remove all stored profiles`,
}

// profileSaveCmd stores a profile.
var profileSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Store the resolved weighting under a profile name",
	Long: `Resolve the weighting from the preset, profile, settings file and overrides
and store it under NAME, replacing any profile with the same name.

Examples:
  # Save a tuned multiplayer weighting
  herotier profile save party --preset multiplayer --weights-override "support:9"

  # Use it
  herotier tiers --preset multiplayer --profile party`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteProfileSave(rootCtx, cfg, storeManager, args[0]); err != nil {
			contract.LogFatal("Failed to save profile", err)
		}
	},
}

// profileShowCmd prints one profile.
var profileShowCmd = &cobra.Command{
	Use:     "show NAME",
	Short:   "Print a stored profile",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteProfileShow(rootCtx, cfg, storeManager, args[0]); err != nil {
			contract.LogFatal("Failed to show profile", err)
		}
	},
}

// profileListCmd lists profile names.
var profileListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List stored profile names",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfileList(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Failed to list profiles", err)
		}
	},
}

// profileStatusCmd shows profile store status.
var profileStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display profile store statistics and connection details",
	Long: `Show backend, connection state, profile count, save times and table size.

Examples:
  # Check profile store status
  herotier profile status`,
	Args:    cobra.NoArgs,
	PreRunE: profileSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store := persist.Manager.GetProfileStore()
		if store == nil {
			contract.LogFatal("Failed to get profile status", fmt.Errorf("profile store is not initialized"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get profile status", err)
		}
		persist.PrintProfileStatus(status)
	},
}

// profileClearCmd removes every profile.
var profileClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored profiles",
	Long: `Delete every stored profile from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the profile table

WARNING: This action cannot be undone.

Examples:
  # Clear SQLite profiles (default)
  herotier profile clear

  # Clear MySQL profiles (set connection string via env variable)
  HEROTIER_PROFILE_BACKEND=mysql HEROTIER_PROFILE_DB_CONNECT="..." herotier profile clear`,
	Args: cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		backend, connStr, err := storeSetup("profile-backend", "profile-db-connect")
		cfg.ProfileBackend = backend
		cfg.ProfileDBConnect = connStr
		return err
	},
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.ProfileBackend == schema.NoneBackend {
			fmt.Println("Profile backend is none; nothing to clear.")
			return
		}
		path := sqliteFilePath(cfg.ProfileDBConnect, contract.GetProfileDBFilePath())
		if err := persist.ClearProfiles(cfg.ProfileBackend, path, cfg.ProfileDBConnect); err != nil {
			contract.LogFatal("Failed to clear profiles", err)
		}
		fmt.Println("Profiles cleared successfully.")
	},
}
