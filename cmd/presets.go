package cmd

import (
	"github.com/huangsam/herotier/core"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/spf13/cobra"
)

// presetsCmd displays the built-in weightings.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Display the built-in weighting presets and their formulas",
	Long: `Show every built-in weighting preset with its description and formula.

No scoring is performed - this is purely informational. Use --detail to print a
dimension by preset weight matrix.

Examples:
  # List presets
  herotier presets

  # Weight matrix as CSV
  herotier presets --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePresets(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot display presets", err)
		}
	},
}
