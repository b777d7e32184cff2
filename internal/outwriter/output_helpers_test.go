package outwriter

import (
	"testing"
	"time"

	"github.com/huangsam/herotier/core/algo"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
	"github.com/stretchr/testify/require"
)

// testRoster has five heroes over the first three dimensions.
func testRoster() schema.Roster {
	return schema.Roster{
		{Name: "Thor", Attributes: []float64{3, 1, 0}},
		{Name: "Hulk", Attributes: []float64{2, 0, 1}},
		{Name: "Groot", Attributes: []float64{1, 1, 1}},
		{Name: "Rocket", Attributes: []float64{0, 0, 2}},
		{Name: "Gamora", Attributes: []float64{0, 2, 4}},
	}
}

// testWeighting scores Thor 6, Hulk 3, Groot 1, Rocket -2 and Gamora -4.
func testWeighting() schema.Weighting {
	return schema.Weighting{2, 0, -1}
}

// newTestConfig returns a plain text config with a fixed terminal width.
func newTestConfig() *contract.Config {
	return &contract.Config{
		Preset:         "custom",
		Precision:      1,
		Output:         schema.TextOut,
		Width:          120,
		HistoryBackend: schema.NoneBackend,
	}
}

// newTierListResult scores and tiers the test roster.
func newTierListResult(t *testing.T) schema.TierListResult {
	t.Helper()
	roster := testRoster()
	scores, err := algo.ScoreAll(roster, testWeighting())
	require.NoError(t, err)
	tl, err := algo.Partition(scores)
	require.NoError(t, err)
	return schema.TierListResult{
		Preset:    "custom",
		Weighting: testWeighting(),
		Weights:   testWeighting().ToMap(),
		Roster:    roster,
		Scores:    scores,
		TierList:  tl,
		Generated: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// newScoreResult ranks the test roster without tiering.
func newScoreResult(t *testing.T) schema.ScoreResult {
	t.Helper()
	scores, err := algo.ScoreAll(testRoster(), testWeighting())
	require.NoError(t, err)
	ranked := algo.RankScores(scores, 0)
	values := make([]float64, len(ranked))
	heroes := make([]schema.RankedHero, len(ranked))
	for i, s := range ranked {
		values[i] = s.Score
		heroes[i] = schema.RankedHero{Rank: i + 1, HeroScore: s}
	}
	return schema.ScoreResult{
		Preset:    "custom",
		Weighting: testWeighting(),
		Heroes:    heroes,
		Stats:     algo.ComputeStats(values),
	}
}

// newComparisonResult has one hero per movement status.
func newComparisonResult() schema.ComparisonResult {
	return schema.ComparisonResult{
		BasePreset:   "general",
		TargetPreset: "solo",
		Details: []schema.TierMovement{
			{Name: "Thor", BeforeTier: schema.TierC, AfterTier: schema.TierA, BeforeRank: 40, AfterRank: 8, RankDelta: 32, TierDelta: 2, BeforeScore: 20, AfterScore: 61.5, ScoreDelta: 41.5, Status: schema.PromotedStatus},
			{Name: "Hulk", BeforeTier: schema.TierA, AfterTier: schema.TierB, BeforeRank: 9, AfterRank: 20, RankDelta: -11, TierDelta: -1, BeforeScore: 50, AfterScore: 40, ScoreDelta: -10, Status: schema.DemotedStatus},
			{Name: "Groot", BeforeTier: schema.TierB, AfterTier: schema.TierB, BeforeRank: 22, AfterRank: 22, BeforeScore: 30, AfterScore: 31, ScoreDelta: 1, Status: schema.UnchangedStatus},
		},
		Summary: schema.ComparisonSummary{
			TotalPromoted:  1,
			TotalDemoted:   1,
			TotalUnchanged: 1,
			BeforeSizes:    map[schema.Tier]int{schema.TierA: 1, schema.TierB: 1, schema.TierC: 1},
			AfterSizes:     map[schema.Tier]int{schema.TierA: 1, schema.TierB: 2},
		},
	}
}
