package schema

import "time"

// Profile is a named weighting saved in the profile store.
type Profile struct {
	Name    string             `json:"name"`
	Preset  string             `json:"preset"`
	Weights map[string]float64 `json:"weights"`
	SavedAt time.Time          `json:"saved_at"`
}

// HeroResult is one hero's outcome within a recorded run.
type HeroResult struct {
	HeroName string
	Score    float64
	Tier     Tier
	Rank     int
}

// RunRecord represents a row from the herotier_runs table.
type RunRecord struct {
	RunID         int64
	RunUUID       string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalHeroes   int32
	ScoreMean     *float64
	ScoreStd      *float64
	Preset        string
	ConfigParams  *string
}

// HeroResultRecord represents a row from the herotier_hero_results table.
type HeroResultRecord struct {
	RunID      int64
	HeroName   string
	RecordTime time.Time
	Score      float64
	Tier       string
	Rank       int32
}
