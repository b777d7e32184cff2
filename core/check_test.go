package core

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/herotier/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCheckResults(t *testing.T) {
	result, _, err := GetCheckResults(quietContext(), newTestConfig(), nil, []string{"Thor", " Groot ", "Rocket"})
	require.NoError(t, err)

	assert.Equal(t, schema.TierB, result.MinTier)
	require.Len(t, result.Heroes, 3)
	assert.Equal(t, schema.HeroCheck{Name: "Thor", Tier: schema.TierA, Score: 6, Rank: 1, Passed: true}, result.Heroes[0])
	assert.True(t, result.Heroes[1].Passed, "B meets a B minimum")
	assert.False(t, result.Heroes[2].Passed)
	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Passed)
}

func TestGetCheckResultsStricterTier(t *testing.T) {
	cfg := newTestConfig()
	cfg.MinTier = schema.TierA

	result, _, err := GetCheckResults(quietContext(), cfg, nil, []string{"Thor", "Hulk"})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Zero(t, result.Failed)
}

func TestGetCheckResultsErrors(t *testing.T) {
	_, _, err := GetCheckResults(quietContext(), newTestConfig(), nil, nil)
	assert.ErrorContains(t, err, "at least one hero")

	_, _, err = GetCheckResults(quietContext(), newTestConfig(), nil, []string{"Thor", "Nobody"})
	assert.ErrorContains(t, err, "Nobody")
}

func TestExecuteCheck(t *testing.T) {
	cfg := newTestConfig()
	cfg.OutputFile = filepath.Join(t.TempDir(), "check.txt")

	err := ExecuteCheck(quietContext(), cfg, nil, []string{"Gamora"})
	assert.ErrorContains(t, err, "1 hero(es) below tier B")
	assert.FileExists(t, cfg.OutputFile)

	require.NoError(t, ExecuteCheck(quietContext(), cfg, nil, []string{"Hulk"}))
}
