package persist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/herotier/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteHistoryStore(t *testing.T) *HistoryStoreImpl {
	t.Helper()
	store, err := NewHistoryStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// recordRun writes a complete run with the given results.
func recordRun(t *testing.T, store *HistoryStoreImpl, start time.Time, preset string, results []schema.HeroResult) int64 {
	t.Helper()
	runID, err := store.BeginRun(start, preset, map[string]any{"preset": preset, "limit": 0})
	require.NoError(t, err)
	for _, r := range results {
		require.NoError(t, store.RecordHeroResult(runID, r))
	}
	stats := schema.Stats{Count: len(results), Mean: 10, Std: 2}
	require.NoError(t, store.EndRun(runID, start.Add(250*time.Millisecond), len(results), stats))
	return runID
}

func TestHistoryStore_NoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.BeginRun(time.Now(), "dashboard", nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	assert.NoError(t, store.RecordHeroResult(1, schema.HeroResult{HeroName: "Thor"}))
	assert.NoError(t, store.EndRun(1, time.Now(), 1, schema.Stats{}))

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestHistoryStore_SQLite(t *testing.T) {
	store := newSQLiteHistoryStore(t)
	start := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	runID := recordRun(t, store, start, "dashboard", []schema.HeroResult{
		{HeroName: "Thor", Score: 14, Tier: schema.TierS, Rank: 1},
		{HeroName: "Groot", Score: 6, Tier: schema.TierD, Rank: 2},
	})
	assert.Greater(t, runID, int64(0))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, runID, run.RunID)
	_, err = uuid.Parse(run.RunUUID)
	assert.NoError(t, err, "run UUID should be valid")
	assert.True(t, start.Equal(run.StartTime))
	require.NotNil(t, run.EndTime)
	assert.True(t, start.Add(250*time.Millisecond).Equal(*run.EndTime))
	require.NotNil(t, run.RunDurationMs)
	assert.Equal(t, int32(250), *run.RunDurationMs)
	assert.Equal(t, int32(2), run.TotalHeroes)
	require.NotNil(t, run.ScoreMean)
	assert.Equal(t, 10.0, *run.ScoreMean)
	require.NotNil(t, run.ScoreStd)
	assert.Equal(t, 2.0, *run.ScoreStd)
	assert.Equal(t, "dashboard", run.Preset)
	require.NotNil(t, run.ConfigParams)

	var params map[string]any
	require.NoError(t, json.Unmarshal([]byte(*run.ConfigParams), &params))
	assert.Equal(t, "dashboard", params["preset"])

	results, err := store.GetAllHeroResults()
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Thor", results[0].HeroName)
	assert.Equal(t, "S", results[0].Tier)
	assert.Equal(t, int32(1), results[0].Rank)
	assert.Equal(t, "Groot", results[1].HeroName)
	assert.False(t, results[1].RecordTime.IsZero())
}

func TestHistoryStore_Status(t *testing.T) {
	store := newSQLiteHistoryStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)
	recordRun(t, store, first, "dashboard", []schema.HeroResult{{HeroName: "Thor", Tier: schema.TierA, Rank: 1}})
	lastID := recordRun(t, store, second, "solo-rush", []schema.HeroResult{
		{HeroName: "Thor", Tier: schema.TierA, Rank: 1},
		{HeroName: "Hulk", Tier: schema.TierB, Rank: 2},
	})

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, lastID, status.LastRunID)
	assert.True(t, second.Equal(status.LastRunTime))
	assert.True(t, first.Equal(status.OldestRunTime))
	assert.Equal(t, 3, status.TotalHeroesRated)
	assert.Contains(t, status.TableSizes, runsTable)
	assert.Contains(t, status.TableSizes, heroResultsTable)
}

func TestHistoryStore_DuplicateHeroInRun(t *testing.T) {
	store := newSQLiteHistoryStore(t)
	runID, err := store.BeginRun(time.Now(), "dashboard", nil)
	require.NoError(t, err)

	require.NoError(t, store.RecordHeroResult(runID, schema.HeroResult{HeroName: "Thor", Tier: schema.TierS, Rank: 1}))
	assert.Error(t, store.RecordHeroResult(runID, schema.HeroResult{HeroName: "Thor", Tier: schema.TierS, Rank: 1}))
}

func TestHistoryStore_EndUnknownRun(t *testing.T) {
	store := newSQLiteHistoryStore(t)
	err := store.EndRun(42, time.Now(), 0, schema.Stats{})
	assert.ErrorContains(t, err, "failed to get start_time for run 42")
}

func TestExecuteHistoryExport(t *testing.T) {
	store := newSQLiteHistoryStore(t)
	recordRun(t, store, time.Now().Add(-time.Minute), "dashboard", []schema.HeroResult{
		{HeroName: "Thor", Score: 14, Tier: schema.TierS, Rank: 1},
	})

	base := filepath.Join(t.TempDir(), "export")
	require.NoError(t, ExecuteHistoryExport(store, base))
	assert.FileExists(t, base+".runs.parquet")
	assert.FileExists(t, base+".hero_results.parquet")
}

func TestExecuteHistoryExport_Errors(t *testing.T) {
	store := newSQLiteHistoryStore(t)

	assert.ErrorContains(t, ExecuteHistoryExport(store, ""), "--output-file is required")
	assert.ErrorContains(t, ExecuteHistoryExport(nil, "out"), "not initialized")

	base := filepath.Join(t.TempDir(), "export")
	assert.ErrorContains(t, ExecuteHistoryExport(store, base), "no history data")
	_, err := os.Stat(base + ".runs.parquet")
	assert.True(t, os.IsNotExist(err))
}
