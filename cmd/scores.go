package cmd

import (
	"github.com/huangsam/herotier/core"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/spf13/cobra"
)

// scoresCmd ranks heroes without tiering.
var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Rank every hero by weighted score.",
	Long: `Rank every hero by weighted score without bucketing them into tiers.

Useful for spotting the weakest heroes (--ascending) or feeding raw scores into
another tool with --output csv or --output json.

Examples:
  # Top ten heroes under the solo preset
  herotier scores --preset solo --limit 10

  # Bottom five heroes
  herotier scores --ascending --limit 5`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScores(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot score heroes", err)
		}
	},
}
