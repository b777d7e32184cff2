// Package cmd defines the command-line interface for herotier.
package cmd

import (
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the settings subcommands to the parent settings command
	settingsCmd.AddCommand(settingsSaveCmd)

	// Add the profile subcommands to the parent profile command
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileStatusCmd)
	profileCmd.AddCommand(profileClearCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("roster", "", "Path to a roster file (YAML or JSON) replacing the built-in heroes")
	rootCmd.PersistentFlags().String("settings", "", "Path to a settings file with weights and hero edits")
	rootCmd.PersistentFlags().StringP("preset", "p", schema.DefaultPresetName, "Weighting preset (see the presets command)")
	rootCmd.PersistentFlags().String("profile", "", "Stored weighting profile applied on top of the preset")
	rootCmd.PersistentFlags().String("weights-override", "", "Dimension weights (format: 'economy:4,tempo:2')")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of heroes to display (0 = all)")
	rootCmd.PersistentFlags().Bool("detail", false, "Print every attribute of each hero")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("profile-backend", string(schema.SQLiteBackend), "Profile backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("profile-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("history-backend", "", "History tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for history tracking (must differ from profile-db-connect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored tier labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("pprof", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of tiersCmd to Viper
	tiersCmd.Flags().Bool("explain", false, "Print the top weighted contributions of each hero")
	if err := viper.BindPFlags(tiersCmd.Flags()); err != nil {
		contract.LogFatal("Error binding tiers flags", err)
	}

	// Bind all flags of scoresCmd to Viper
	scoresCmd.Flags().Bool("ascending", false, "List the lowest scores first")
	if err := viper.BindPFlags(scoresCmd.Flags()); err != nil {
		contract.LogFatal("Error binding scores flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().String("target-preset", "", "Preset for the AFTER side of the comparison")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().String("min-tier", string(schema.TierB), "Lowest tier that passes the check: S, A, B, C or D")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
