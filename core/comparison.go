package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// buildComparison tiers the roster twice, once with the configured weighting
// and once with the target preset, and reports how every hero moved.
func buildComparison(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.ComparisonResult, error) {
	if cfg.TargetPreset == "" {
		return schema.ComparisonResult{}, fmt.Errorf("compare requires --target-preset. Example: herotier compare --preset general --target-preset solo")
	}
	target, err := schema.GetPreset(cfg.TargetPreset)
	if err != nil {
		return schema.ComparisonResult{}, err
	}

	ctx = withSkipHistory(ctx)
	base, err := buildTierList(ctx, cfg, mgr)
	if err != nil {
		return schema.ComparisonResult{}, fmt.Errorf("failed to build base tier list: %w", err)
	}
	after, err := buildTierList(ctx, cfg.CloneWithPreset(target), mgr)
	if err != nil {
		return schema.ComparisonResult{}, fmt.Errorf("failed to build target tier list: %w", err)
	}

	result := compareTierLists(base, after, cfg.ResultLimit)
	result.BasePreset = describeSide(cfg)
	result.TargetPreset = target.Name
	return result, nil
}

// describeSide names the weighting of the base side of a comparison.
func describeSide(cfg *contract.Config) string {
	if cfg.Profile != "" {
		return cfg.Preset + "+" + cfg.Profile
	}
	if len(cfg.Overrides) > 0 {
		return cfg.Preset + "*"
	}
	return cfg.Preset
}

// compareTierLists computes per-hero movement between two tier lists over the
// same roster. Details are sorted by absolute rank change, largest first, with
// roster order breaking ties. The summary always covers every hero.
func compareTierLists(base, target schema.TierListResult, limit int) schema.ComparisonResult {
	beforeRanks := rankLookup(base.TierList)
	afterRanks := rankLookup(target.TierList)

	details := make([]schema.TierMovement, 0, len(base.Roster))
	summary := schema.ComparisonSummary{
		BeforeSizes: tierSizes(base.TierList),
		AfterSizes:  tierSizes(target.TierList),
	}

	for _, hero := range base.Roster {
		before := beforeRanks[hero.Name]
		after := afterRanks[hero.Name]

		m := schema.TierMovement{
			Name:        hero.Name,
			BeforeTier:  before.Tier,
			AfterTier:   after.Tier,
			BeforeScore: before.Score,
			AfterScore:  after.Score,
			BeforeRank:  before.Rank,
			AfterRank:   after.Rank,
			ScoreDelta:  after.Score - before.Score,
		}
		if before.Rank > 0 && after.Rank > 0 {
			m.RankDelta = before.Rank - after.Rank
		}
		if before.Tier != "" && after.Tier != "" {
			m.TierDelta = before.Tier.Rank() - after.Tier.Rank()
		}

		switch {
		case m.TierDelta > 0:
			m.Status = schema.PromotedStatus
			summary.TotalPromoted++
		case m.TierDelta < 0:
			m.Status = schema.DemotedStatus
			summary.TotalDemoted++
		default:
			m.Status = schema.UnchangedStatus
			summary.TotalUnchanged++
		}
		details = append(details, m)
	}

	sort.SliceStable(details, func(i, j int) bool {
		return abs(details[i].RankDelta) > abs(details[j].RankDelta)
	})
	if limit > 0 && len(details) > limit {
		details = details[:limit]
	}

	return schema.ComparisonResult{Details: details, Summary: summary}
}

// rankLookup maps every hero of a tier list to its ranked entry.
func rankLookup(tl schema.TierList) map[string]schema.RankedHero {
	flat := tl.Flatten()
	out := make(map[string]schema.RankedHero, len(flat))
	for _, h := range flat {
		out[h.Name] = h
	}
	return out
}

// tierSizes counts the members of every tier.
func tierSizes(tl schema.TierList) map[schema.Tier]int {
	sizes := make(map[schema.Tier]int, len(schema.AllTiers))
	for _, t := range schema.AllTiers {
		sizes[t] = len(tl.Group(t).Heroes)
	}
	return sizes
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
