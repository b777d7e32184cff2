package cmd

import (
	"github.com/huangsam/herotier/core"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/spf13/cobra"
)

// settingsCmd manages settings files.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage settings files with weights and hero edits",
	Long: `Settings files hold a weighting and per-hero attribute edits in YAML.

Load one with --settings on any command. Its weights sit between the preset and
the config file, and its hero edits replace attribute vectors in the roster.`,
}

// settingsSaveCmd writes the resolved weighting to a file.
var settingsSaveCmd = &cobra.Command{
	Use:   "save PATH",
	Short: "Write the resolved weighting and hero edits to a settings file",
	Long: `Resolve the weighting from the preset, profile, settings file and overrides,
then write it together with any hero edits to PATH.

Examples:
  # Snapshot a tuned weighting
  herotier settings save my-weights.yaml --preset multiplayer --weights-override "economy:6"

  # Reuse it later
  herotier tiers --settings my-weights.yaml`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteSettingsSave(rootCtx, cfg, storeManager, args[0]); err != nil {
			contract.LogFatal("Cannot save settings", err)
		}
	},
}
