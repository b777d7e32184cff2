package core

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/huangsam/herotier/core/algo"
	"github.com/huangsam/herotier/internal/persist"
	"github.com/huangsam/herotier/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTierListResults(t *testing.T) {
	mockMgr := &persist.MockStoreManager{}
	mockMgr.On("GetHistoryStore").Return(nil) // No history tracking for test

	cfg := newTestConfig()
	result, _, err := GetTierListResults(quietContext(), cfg, mockMgr)
	require.NoError(t, err)

	tl := result.TierList
	assert.Equal(t, []string{"Thor", "Hulk"}, names(tl.Group(schema.TierA).Heroes))
	assert.Equal(t, []string{"Groot"}, names(tl.Group(schema.TierB).Heroes))
	assert.Equal(t, []string{"Rocket", "Gamora"}, names(tl.Group(schema.TierC).Heroes))
	assert.Empty(t, tl.Group(schema.TierS).Heroes)
	assert.Empty(t, tl.Group(schema.TierD).Heroes)
	assert.Equal(t, "custom", result.Preset)
	assert.Equal(t, 2.0, result.Weights["economy"])
	assert.Zero(t, result.RunID)
	mockMgr.AssertExpectations(t)
}

func TestTierListSnapshotIsolation(t *testing.T) {
	mockMgr := &persist.MockStoreManager{}
	mockMgr.On("GetHistoryStore").Return(nil)

	cfg := newTestConfig()
	result, err := buildTierList(context.Background(), cfg, mockMgr)
	require.NoError(t, err)

	result.Roster[0].Attributes[0] = 100
	result.Weighting[0] = 100
	assert.Equal(t, 3.0, cfg.Roster[0].Attributes[0])
	assert.Equal(t, 2.0, cfg.Weighting[0])
}

func TestTierListErrors(t *testing.T) {
	mockMgr := &persist.MockStoreManager{}

	t.Run("empty roster", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Roster = nil
		_, err := buildTierList(context.Background(), cfg, mockMgr)
		assert.ErrorContains(t, err, "roster is empty")
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Weighting = schema.Weighting{1, 1}
		_, err := buildTierList(context.Background(), cfg, mockMgr)
		assert.ErrorIs(t, err, algo.ErrDimensionMismatch)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := buildTierList(ctx, newTestConfig(), mockMgr)
		assert.ErrorIs(t, err, context.Canceled)
	})

	mockMgr.AssertNotCalled(t, "GetHistoryStore")
}

func TestTierListRecordsHistory(t *testing.T) {
	history := &persist.MockHistoryStore{}
	history.On("BeginRun", mock.AnythingOfType("time.Time"), "custom", mock.Anything).Return(int64(42), nil)
	history.On("RecordHeroResult", int64(42), mock.AnythingOfType("schema.HeroResult")).Return(nil).Times(5)
	history.On("EndRun", int64(42), mock.AnythingOfType("time.Time"), 5, mock.AnythingOfType("schema.Stats")).Return(nil)

	mockMgr := &persist.MockStoreManager{}
	mockMgr.On("GetHistoryStore").Return(history)

	result, err := buildTierList(context.Background(), newTestConfig(), mockMgr)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.RunID)

	history.AssertCalled(t, "RecordHeroResult", int64(42), schema.HeroResult{HeroName: "Thor", Score: 6, Tier: schema.TierA, Rank: 1})
	history.AssertCalled(t, "RecordHeroResult", int64(42), schema.HeroResult{HeroName: "Gamora", Score: -4, Tier: schema.TierC, Rank: 5})
	history.AssertExpectations(t)
}

func TestTierListHistoryFailureDoesNotFailRun(t *testing.T) {
	history := &persist.MockHistoryStore{}
	history.On("BeginRun", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	mockMgr := &persist.MockStoreManager{}
	mockMgr.On("GetHistoryStore").Return(history)

	result, err := buildTierList(context.Background(), newTestConfig(), mockMgr)
	require.NoError(t, err)
	assert.Zero(t, result.RunID)
	history.AssertNotCalled(t, "RecordHeroResult", mock.Anything, mock.Anything)
}

func TestTierListSkipHistory(t *testing.T) {
	mockMgr := &persist.MockStoreManager{}
	_, err := buildTierList(withSkipHistory(context.Background()), newTestConfig(), mockMgr)
	require.NoError(t, err)
	mockMgr.AssertNotCalled(t, "GetHistoryStore")
}

func TestResolveWeightingWithProfile(t *testing.T) {
	data, err := json.Marshal(schema.Profile{Name: "mine", Preset: "dashboard", Weights: map[string]float64{"economy": 10, "tempo": 1}})
	require.NoError(t, err)

	profiles := &persist.MockProfileStore{}
	profiles.On("Get", "mine").Return(data, persist.ProfileVersion, int64(0), nil)
	mockMgr := &persist.MockStoreManager{}
	mockMgr.On("GetProfileStore").Return(profiles)

	cfg := newBuiltinConfig(t, nil)
	cfg.Profile = "mine"
	cfg.Overrides = map[string]float64{"tempo": 9}

	w, err := resolveWeighting(cfg, mockMgr)
	require.NoError(t, err)

	dashboard, err := schema.GetPreset("dashboard")
	require.NoError(t, err)
	assert.Equal(t, 10.0, w[schema.DimensionIndex("economy")], "profile beats preset")
	assert.Equal(t, 9.0, w[schema.DimensionIndex("tempo")], "overrides beat profile")
	assert.Equal(t, dashboard.Weights[schema.DimensionIndex("support")], w[schema.DimensionIndex("support")])
}

func TestResolveWeightingProfileErrors(t *testing.T) {
	profiles := &persist.MockProfileStore{}
	profiles.On("Get", "ghost").Return(nil, 0, int64(0), sql.ErrNoRows)
	mockMgr := &persist.MockStoreManager{}
	mockMgr.On("GetProfileStore").Return(profiles)

	cfg := newBuiltinConfig(t, nil)
	cfg.Profile = "ghost"
	_, err := resolveWeighting(cfg, mockMgr)
	assert.ErrorIs(t, err, persist.ErrProfileNotFound)

	noStore := &persist.MockStoreManager{}
	noStore.On("GetProfileStore").Return(nil)
	_, err = resolveWeighting(cfg, noStore)
	assert.ErrorContains(t, err, "not initialized")
}

func TestResolveWeightingWithoutProfile(t *testing.T) {
	cfg := newTestConfig()
	w, err := resolveWeighting(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.Weighting, w)

	w[0] = 99
	assert.Equal(t, 2.0, cfg.Weighting[0])
}

func BenchmarkBuildTierList(b *testing.B) {
	input := newBenchConfig(b)
	ctx := withSkipHistory(context.Background())
	for b.Loop() {
		if _, err := buildTierList(ctx, input, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func names(heroes []schema.HeroScore) []string {
	out := make([]string, len(heroes))
	for i, h := range heroes {
		out[i] = h.Name
	}
	return out
}
