package core

import (
	"testing"

	"github.com/huangsam/herotier/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScoreResults(t *testing.T) {
	cfg := newTestConfig()
	cfg.ResultLimit = 2

	result, _, err := GetScoreResults(quietContext(), cfg, nil)
	require.NoError(t, err)

	require.Len(t, result.Heroes, 2)
	assert.Equal(t, schema.RankedHero{Rank: 1, HeroScore: schema.HeroScore{Name: "Thor", Score: 6, Index: 0}}, result.Heroes[0])
	assert.Equal(t, "Hulk", result.Heroes[1].Name)
	assert.Equal(t, 5, result.Stats.Count, "stats cover the whole roster")
	assert.Equal(t, 6.0, result.Stats.Max)
	assert.Equal(t, -4.0, result.Stats.Min)
}

func TestGetScoreResultsAscending(t *testing.T) {
	cfg := newTestConfig()
	cfg.Ascending = true
	cfg.ResultLimit = 2

	result, _, err := GetScoreResults(quietContext(), cfg, nil)
	require.NoError(t, err)

	require.Len(t, result.Heroes, 2)
	assert.Equal(t, "Gamora", result.Heroes[0].Name)
	assert.Equal(t, 5, result.Heroes[0].Rank, "rank keeps the descending standing")
	assert.Equal(t, "Rocket", result.Heroes[1].Name)
	assert.Equal(t, 4, result.Heroes[1].Rank)
}

func TestGetScoreResultsMismatch(t *testing.T) {
	cfg := newTestConfig()
	cfg.Weighting = schema.Weighting{1}
	_, _, err := GetScoreResults(quietContext(), cfg, nil)
	assert.Error(t, err)
}
