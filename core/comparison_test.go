package core

import (
	"context"
	"testing"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/internal/persist"
	"github.com/huangsam/herotier/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPair tiers the test roster under the test weighting and its mirror image.
// The mirror scores Thor -3, Hulk 0, Groot 1, Rocket 4 and Gamora 8.
func buildPair(t *testing.T) (schema.TierListResult, schema.TierListResult) {
	t.Helper()
	ctx := withSkipHistory(context.Background())
	base, err := buildTierList(ctx, newTestConfig(), nil)
	require.NoError(t, err)

	mirrored := newTestConfig()
	mirrored.Weighting = schema.Weighting{-1, 0, 2}
	target, err := buildTierList(ctx, mirrored, nil)
	require.NoError(t, err)
	return base, target
}

func TestCompareTierLists(t *testing.T) {
	base, target := buildPair(t)
	result := compareTierLists(base, target, 0)

	require.Len(t, result.Details, 5)
	var order []string
	for _, d := range result.Details {
		order = append(order, d.Name)
	}
	assert.Equal(t, []string{"Thor", "Gamora", "Hulk", "Rocket", "Groot"}, order, "sorted by absolute rank delta, roster order on ties")

	thor := result.Details[0]
	assert.Equal(t, schema.TierA, thor.BeforeTier)
	assert.Equal(t, schema.TierC, thor.AfterTier)
	assert.Equal(t, 1, thor.BeforeRank)
	assert.Equal(t, 5, thor.AfterRank)
	assert.Equal(t, -4, thor.RankDelta)
	assert.Equal(t, -2, thor.TierDelta)
	assert.Equal(t, -9.0, thor.ScoreDelta)
	assert.Equal(t, schema.DemotedStatus, thor.Status)

	gamora := result.Details[1]
	assert.Equal(t, schema.TierS, gamora.AfterTier)
	assert.Equal(t, 4, gamora.RankDelta)
	assert.Equal(t, schema.PromotedStatus, gamora.Status)

	groot := result.Details[4]
	assert.Equal(t, schema.UnchangedStatus, groot.Status)
	assert.Zero(t, groot.RankDelta)

	s := result.Summary
	assert.Equal(t, 2, s.TotalPromoted)
	assert.Equal(t, 2, s.TotalDemoted)
	assert.Equal(t, 1, s.TotalUnchanged)
	assert.Equal(t, map[schema.Tier]int{schema.TierS: 0, schema.TierA: 2, schema.TierB: 1, schema.TierC: 2, schema.TierD: 0}, s.BeforeSizes)
	assert.Equal(t, map[schema.Tier]int{schema.TierS: 1, schema.TierA: 1, schema.TierB: 1, schema.TierC: 2, schema.TierD: 0}, s.AfterSizes)
}

func TestCompareTierListsLimitKeepsSummary(t *testing.T) {
	base, target := buildPair(t)
	result := compareTierLists(base, target, 2)

	require.Len(t, result.Details, 2)
	s := result.Summary
	assert.Equal(t, 5, s.TotalPromoted+s.TotalDemoted+s.TotalUnchanged)
}

func TestCompareIdenticalWeightings(t *testing.T) {
	base, _ := buildPair(t)
	result := compareTierLists(base, base, 0)
	assert.Equal(t, 5, result.Summary.TotalUnchanged)
	for _, d := range result.Details {
		assert.Zero(t, d.RankDelta)
		assert.Zero(t, d.ScoreDelta)
	}
}

func TestGetCompareResultsBuiltin(t *testing.T) {
	mockMgr := &persist.MockStoreManager{} // History is never consulted for comparisons

	cfg := newBuiltinConfig(t, func(in *contract.ConfigRawInput) {
		in.Preset = "general"
		in.TargetPreset = "solo"
	})
	result, _, err := GetCompareResults(quietContext(), cfg, mockMgr)
	require.NoError(t, err)

	assert.Equal(t, "general", result.BasePreset)
	assert.Equal(t, "solo", result.TargetPreset)
	assert.Len(t, result.Details, len(cfg.Roster))
	s := result.Summary
	assert.Equal(t, len(cfg.Roster), s.TotalPromoted+s.TotalDemoted+s.TotalUnchanged)
	mockMgr.AssertNotCalled(t, "GetHistoryStore")
}

func TestGetCompareResultsRequiresTarget(t *testing.T) {
	_, _, err := GetCompareResults(quietContext(), newTestConfig(), nil)
	assert.ErrorContains(t, err, "--target-preset")
}

func TestDescribeSide(t *testing.T) {
	cfg := newTestConfig()
	assert.Equal(t, "custom", describeSide(cfg))
	cfg.Overrides = map[string]float64{"economy": 1}
	assert.Equal(t, "custom*", describeSide(cfg))
	cfg.Profile = "mine"
	assert.Equal(t, "custom+mine", describeSide(cfg))
}
