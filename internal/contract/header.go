package contract

import (
	"fmt"
	"strings"
)

// LogTierHeader prints a concise, 2-line header for a tier list run.
func LogTierHeader(cfg *Config) {
	rosterName := cfg.RosterFile
	if rosterName == "" {
		rosterName = "built-in"
	}

	// Line 1: roster and weighting source
	if cfg.UseEmojis {
		fmt.Printf("🦸 Roster: %s (%d heroes)\n", rosterName, len(cfg.Roster))
		fmt.Printf("⚖️  Weights: %s\n", describeWeights(cfg))
		return
	}
	fmt.Printf("Roster: %s (%d heroes)\n", rosterName, len(cfg.Roster))
	fmt.Printf("Weights: %s\n", describeWeights(cfg))
}

// LogCompareHeader prints a header for a preset comparison.
func LogCompareHeader(cfg *Config) {
	if cfg.UseEmojis {
		fmt.Printf("📊 Comparing: %s ↔ %s\n", describeWeights(cfg), cfg.TargetPreset)
		return
	}
	fmt.Printf("Comparing: %s <-> %s\n", describeWeights(cfg), cfg.TargetPreset)
}

// describeWeights names where the weighting came from.
func describeWeights(cfg *Config) string {
	var b strings.Builder
	b.WriteString(cfg.Preset)
	if cfg.Profile != "" {
		fmt.Fprintf(&b, " + profile %s", cfg.Profile)
	}
	if cfg.SettingsFile != "" {
		fmt.Fprintf(&b, " + settings %s", cfg.SettingsFile)
	}
	if n := len(cfg.Overrides); n > 0 {
		fmt.Fprintf(&b, " (%d overrides)", n)
	}
	return b.String()
}
