package outwriter

import (
	"os"

	"github.com/huangsam/herotier/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for hero names in table output
// based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	termWidth := cfg.Width // Absolute override from flag/env

	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Score + Tier with borders/padding
	baseWidth := 30
	if cfg.Detail {
		baseWidth += 50 // Attribute vector
	}
	if cfg.Explain {
		baseWidth += 45 // Top contributions
	}
	baseWidth += 10 // Borders and separators

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
