// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteTiers prints a tier list using the configured output format.
func (ow *OutWriter) WriteTiers(result schema.TierListResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTierListResults(result, cfg, duration)
}

// WriteScores prints ranked scores using the configured output format.
func (ow *OutWriter) WriteScores(result schema.ScoreResult, cfg *contract.Config, duration time.Duration) error {
	return PrintScoreResults(result, cfg, duration)
}

// WriteComparison prints tier movements using the configured output format.
func (ow *OutWriter) WriteComparison(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return PrintComparisonResults(result, cfg, duration)
}

// WritePresets prints the preset catalog using the configured output format.
func (ow *OutWriter) WritePresets(presets []schema.Preset, cfg *contract.Config) error {
	return PrintPresets(presets, cfg)
}

// WriteCheck prints a tier check outcome using the configured output format.
func (ow *OutWriter) WriteCheck(result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	return PrintCheckResult(result, cfg, duration)
}

// WriteProfile prints one stored profile using the configured output format.
func (ow *OutWriter) WriteProfile(profile schema.Profile, cfg *contract.Config) error {
	return PrintProfile(profile, cfg)
}

// WriteProfiles prints the names of stored profiles using the configured output format.
func (ow *OutWriter) WriteProfiles(names []string, cfg *contract.Config) error {
	return PrintProfileList(names, cfg)
}
