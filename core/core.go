// Package core has core logic for scoring, tiering and comparing heroes.
package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/herotier/internal/catalog"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/internal/outwriter"
	"github.com/huangsam/herotier/internal/persist"
	"github.com/huangsam/herotier/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// printHeader prints the run header unless it is suppressed or the output is
// machine-readable on stdout.
func printHeader(ctx context.Context, cfg *contract.Config, header func(*contract.Config)) {
	if shouldSuppressHeader(ctx) {
		return
	}
	if cfg.Output != schema.TextOut && cfg.OutputFile == "" {
		return
	}
	header(cfg)
}

// GetTierListResults scores and tiers the roster and returns the result.
// It serves as the programmatic entry point for the 'tiers' mode.
func GetTierListResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.TierListResult, time.Duration, error) {
	start := time.Now()
	printHeader(ctx, cfg, contract.LogTierHeader)
	result, err := buildTierList(ctx, cfg, mgr)
	return result, time.Since(start), err
}

// ExecuteTierList runs the tier list and prints results.
// It serves as the main entry point for the 'tiers' mode.
func ExecuteTierList(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetTierListResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTiers(result, cfg, duration)
}

// GetScoreResults ranks the roster by score without tiering it.
func GetScoreResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.ScoreResult, time.Duration, error) {
	start := time.Now()
	printHeader(ctx, cfg, contract.LogTierHeader)
	result, err := buildScores(ctx, cfg, mgr)
	return result, time.Since(start), err
}

// ExecuteScores runs the ranking and prints results.
func ExecuteScores(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetScoreResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteScores(result, cfg, duration)
}

// GetCompareResults tiers the roster under two weightings and returns the movements.
func GetCompareResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.ComparisonResult, time.Duration, error) {
	start := time.Now()
	printHeader(ctx, cfg, contract.LogCompareHeader)
	result, err := buildComparison(ctx, cfg, mgr)
	return result, time.Since(start), err
}

// ExecuteCompare runs a comparison between the configured weighting and a target preset.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, duration, err := GetCompareResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteComparison(result, cfg, duration)
}

// GetCheckResults tests the named heroes against the minimum tier.
func GetCheckResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, heroes []string) (schema.CheckResult, time.Duration, error) {
	start := time.Now()
	result, err := buildCheck(ctx, cfg, mgr, heroes)
	return result, time.Since(start), err
}

// ExecuteCheck runs the check command for CI/CD gating.
// It prints the outcome and returns an error when any hero is below the minimum tier.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, heroes []string) error {
	result, duration, err := GetCheckResults(ctx, cfg, mgr, heroes)
	if err != nil {
		return err
	}
	if err := outwriter.NewOutWriter().WriteCheck(result, cfg, duration); err != nil {
		return err
	}
	if !result.Passed {
		return fmt.Errorf("%d hero(es) below tier %s", result.Failed, result.MinTier)
	}
	return nil
}

// ExecutePresets displays every built-in weighting preset.
// This is a static display that does not score anything.
func ExecutePresets(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	return outwriter.NewOutWriter().WritePresets(schema.Presets, cfg)
}

// ExecuteSettingsSave writes the resolved weighting and hero edits to a settings file.
func ExecuteSettingsSave(_ context.Context, cfg *contract.Config, mgr contract.StoreManager, path string) error {
	if path == "" {
		return fmt.Errorf("a settings file path is required")
	}
	weighting, err := resolveWeighting(cfg, mgr)
	if err != nil {
		return err
	}
	if err := catalog.SaveSettings(path, catalog.NewSettings(cfg.Preset, weighting, cfg.HeroEdits)); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote settings to %s\n", path)
	return nil
}

// ExecuteProfileSave stores the resolved weighting under a profile name.
func ExecuteProfileSave(_ context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) error {
	weighting, err := resolveWeighting(cfg, mgr)
	if err != nil {
		return err
	}
	profile := schema.Profile{Name: name, Preset: cfg.Preset, Weights: weighting.ToMap()}
	if err := persist.SaveProfile(mgr.GetProfileStore(), profile); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "💾 Saved profile %s (%s backend)\n", name, cfg.ProfileBackend)
	return nil
}

// ExecuteProfileShow prints a stored profile.
func ExecuteProfileShow(_ context.Context, cfg *contract.Config, mgr contract.StoreManager, name string) error {
	profile, err := persist.LoadProfile(mgr.GetProfileStore(), name)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteProfile(profile, cfg)
}

// ExecuteProfileList prints the names of all stored profiles.
func ExecuteProfileList(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	store := mgr.GetProfileStore()
	if store == nil {
		return fmt.Errorf("profile store is not initialized")
	}
	names, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	return outwriter.NewOutWriter().WriteProfiles(names, cfg)
}
