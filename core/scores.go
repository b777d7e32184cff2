package core

import (
	"context"
	"fmt"

	"github.com/huangsam/herotier/core/algo"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// buildScores ranks the roster without tiering it. Ranks always reflect the
// descending standing, also when the display order is ascending.
func buildScores(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.ScoreResult, error) {
	b := NewTierListBuilder(ctx, cfg, mgr).Snapshot().Score()
	if b.err != nil {
		return schema.ScoreResult{}, b.err
	}

	var ordered []schema.HeroScore
	if cfg.Ascending {
		ordered = algo.RankAscending(b.scores)
		if cfg.ResultLimit > 0 && len(ordered) > cfg.ResultLimit {
			ordered = ordered[:cfg.ResultLimit]
		}
	} else {
		ordered = algo.RankScores(b.scores, cfg.ResultLimit)
	}

	positions := algo.RankPositions(b.scores)
	heroes := make([]schema.RankedHero, len(ordered))
	for i, s := range ordered {
		rank, ok := positions[s.Name]
		if !ok {
			return schema.ScoreResult{}, fmt.Errorf("hero %s missing from ranking", s.Name)
		}
		heroes[i] = schema.RankedHero{Rank: rank, HeroScore: s}
	}

	values := make([]float64, len(b.scores))
	for i, s := range b.scores {
		values[i] = s.Score
	}

	return schema.ScoreResult{
		Preset:    cfg.Preset,
		Weighting: b.weighting,
		Heroes:    heroes,
		Stats:     algo.ComputeStats(values),
	}, nil
}
