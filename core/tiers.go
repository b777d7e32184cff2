package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/herotier/core/algo"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// TierListBuilder builds a tier list from a snapshot of the config.
// Each step is a no-op once an earlier step failed; Build reports the first error.
type TierListBuilder struct {
	ctx       context.Context
	cfg       *contract.Config
	mgr       contract.StoreManager
	start     time.Time
	roster    schema.Roster
	weighting schema.Weighting
	scores    []schema.HeroScore
	tierList  schema.TierList
	runID     int64
	err       error
}

// NewTierListBuilder is the starting point for building a tier list.
func NewTierListBuilder(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) *TierListBuilder {
	return &TierListBuilder{ctx: ctx, cfg: cfg, mgr: mgr, start: time.Now()}
}

// Snapshot copies the roster and resolves the weighting so that later edits
// to the config cannot affect this pass.
func (b *TierListBuilder) Snapshot() *TierListBuilder {
	if b.err != nil {
		return b
	}
	if err := b.ctx.Err(); err != nil {
		b.err = err
		return b
	}
	if len(b.cfg.Roster) == 0 {
		b.err = fmt.Errorf("roster is empty")
		return b
	}
	b.roster = b.cfg.Roster.Clone()
	b.weighting, b.err = resolveWeighting(b.cfg, b.mgr)
	return b
}

// Score computes every hero score in roster order.
func (b *TierListBuilder) Score() *TierListBuilder {
	if b.err != nil {
		return b
	}
	scores, err := algo.ScoreAll(b.roster, b.weighting)
	if err != nil {
		b.err = fmt.Errorf("failed to score roster: %w", err)
		return b
	}
	b.scores = scores
	return b
}

// Partition buckets the scores into tiers.
func (b *TierListBuilder) Partition() *TierListBuilder {
	if b.err != nil {
		return b
	}
	tl, err := algo.Partition(b.scores)
	if err != nil {
		b.err = fmt.Errorf("failed to partition scores: %w", err)
		return b
	}
	b.tierList = tl
	return b
}

// Record stores the run in the history store when one is configured.
// Tracking failures are logged and never fail the run.
func (b *TierListBuilder) Record() *TierListBuilder {
	if b.err != nil || shouldSkipHistory(b.ctx) {
		return b
	}
	b.runID = recordRun(b.cfg, b.mgr, b.start, b.weighting, b.tierList)
	return b
}

// Build finalizes the construction and returns the tier list result.
func (b *TierListBuilder) Build() (schema.TierListResult, error) {
	if b.err != nil {
		return schema.TierListResult{}, b.err
	}
	return schema.TierListResult{
		Preset:    b.cfg.Preset,
		Profile:   b.cfg.Profile,
		Weighting: b.weighting,
		Weights:   b.weighting.ToMap(),
		Roster:    b.roster,
		Scores:    b.scores,
		TierList:  b.tierList,
		RunID:     b.runID,
		Generated: time.Now(),
	}, nil
}

// buildTierList runs the full pipeline for one config.
func buildTierList(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.TierListResult, error) {
	return NewTierListBuilder(ctx, cfg, mgr).
		Snapshot().
		Score().
		Partition().
		Record().
		Build()
}
