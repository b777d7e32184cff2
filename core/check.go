package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// buildCheck tiers the roster and tests every named hero against the minimum tier.
// Check runs are not recorded in history.
func buildCheck(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, heroes []string) (schema.CheckResult, error) {
	if len(heroes) == 0 {
		return schema.CheckResult{}, fmt.Errorf("check requires at least one hero name. Example: herotier check --min-tier A \"Spider-Man\"")
	}
	minTier := cfg.MinTier
	if minTier == "" {
		minTier = schema.TierB
	}

	result, err := buildTierList(withSkipHistory(ctx), cfg, mgr)
	if err != nil {
		return schema.CheckResult{}, err
	}
	ranked := rankLookup(result.TierList)

	check := schema.CheckResult{
		Preset:  result.Preset,
		MinTier: minTier,
		Heroes:  make([]schema.HeroCheck, 0, len(heroes)),
	}
	var unknown []string
	for _, name := range heroes {
		name = strings.TrimSpace(name)
		h, ok := ranked[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		passed := h.Tier.Rank() <= minTier.Rank()
		if !passed {
			check.Failed++
		}
		check.Heroes = append(check.Heroes, schema.HeroCheck{
			Name:   h.Name,
			Tier:   h.Tier,
			Score:  h.Score,
			Rank:   h.Rank,
			Passed: passed,
		})
	}
	if len(unknown) > 0 {
		return schema.CheckResult{}, fmt.Errorf("unknown hero(es): %s", strings.Join(unknown, ", "))
	}

	check.Passed = check.Failed == 0
	return check, nil
}
