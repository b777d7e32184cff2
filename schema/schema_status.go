package schema

import "time"

// ProfileStatus represents the status of the profile store.
type ProfileStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalProfiles   int       `json:"total_profiles"`
	LastSavedTime   time.Time `json:"last_saved_time"`
	OldestSavedTime time.Time `json:"oldest_saved_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// HistoryStatus represents the status of the history store.
type HistoryStatus struct {
	Backend          string           `json:"backend"`
	Connected        bool             `json:"connected"`
	TotalRuns        int              `json:"total_runs"`
	LastRunID        int64            `json:"last_run_id"`
	LastRunTime      time.Time        `json:"last_run_time"`
	OldestRunTime    time.Time        `json:"oldest_run_time"`
	TotalHeroesRated int              `json:"total_heroes_rated"`
	TableSizes       map[string]int64 `json:"table_sizes"`
}
