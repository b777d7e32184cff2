package cmd

import (
	"github.com/huangsam/herotier/core"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd focused on movements between two weightings.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the tier lists of two presets.",
	Long: `Build the tier list twice, once with the active weighting and once with
--target-preset, and report how every hero moved.

Ideal for:
- Game mode prep - see who gains value in multiplayer versus solo
- Weight tuning - check what a custom override actually changes
- Balance reviews - find heroes whose placement depends on the mode

The comparison shows before/after tiers, scores and ranks for each hero.

Examples:
  # Solo versus multiplayer
  herotier compare --preset solo --target-preset multiplayer

  # Custom weights versus the stock general preset
  herotier compare --preset general --weights-override "control:5" --target-preset general

  # Export the movements to CSV
  herotier compare --target-preset solo-rush --output csv --output-file moves.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCompare(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run comparison", err)
		}
	},
}
