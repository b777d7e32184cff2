package cmd

import (
	"github.com/huangsam/herotier/core"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd gates on hero placements.
var checkCmd = &cobra.Command{
	Use:   "check HERO [HERO...]",
	Short: "Fail when any named hero lands below a minimum tier",
	Long: `Build the tier list and check that every named hero reaches --min-tier.

Exits with a non-zero code when a hero falls below the minimum, which makes it
usable in scripts that validate custom rosters or weightings.

Examples:
  # Make sure the core team stays in B or better
  herotier check Thor Hulk "Black Widow"

  # Require S tier for one hero under a custom roster
  herotier check Thor --min-tier S --roster my-roster.yaml`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteCheck(rootCtx, cfg, storeManager, args); err != nil {
			contract.LogFatal("Tier check failed", err)
		}
	},
}
