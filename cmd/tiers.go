package cmd

import (
	"github.com/huangsam/herotier/core"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/spf13/cobra"
)

// tiersCmd builds the tier list.
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Score every hero and sort the roster into S, A, B, C and D tiers.",
	Long: `Score every hero in the roster with the active weighting and bucket the scores
into five tiers using the mean and standard deviation of the whole roster.

Tier boundaries:
  S  score >= mean + 1.5 std
  A  score >= mean + 0.5 std
  B  score >= mean - 0.5 std
  C  score >= mean - 1.5 std
  D  everything below

The weighting starts from --preset, then applies --profile, the settings file,
the weights map of the config file and finally --weights-override.

Examples:
  # Tier list with the default weighting
  herotier tiers

  # Multiplayer tier list with a custom economy weight
  herotier tiers --preset multiplayer --weights-override "economy:6"

  # Show why each hero scored the way it did
  herotier tiers --explain --detail

  # Export the tier list to Parquet
  herotier tiers --output parquet --output-file tiers.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTierList(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build tier list", err)
		}
	},
}
