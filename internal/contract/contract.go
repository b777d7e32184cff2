// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/herotier/schema"
)

// StoreManager defines the interface for managing persistence stores.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetProfileStore() ProfileStore
	GetHistoryStore() HistoryStore
}

// ProfileStore defines the interface for named weighting profiles.
// Values are opaque JSON blobs with a schema version and a save timestamp.
type ProfileStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	List() ([]string, error)
	GetStatus() (schema.ProfileStatus, error)
	Close() error
}

// HistoryStore defines the interface for tracking tier list runs and their results.
type HistoryStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(startTime time.Time, preset string, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalHeroes int, stats schema.Stats) error

	// RecordHeroResult stores the score, tier and rank of one hero
	RecordHeroResult(runID int64, result schema.HeroResult) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns retrieves every run record
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllHeroResults retrieves every hero result record
	GetAllHeroResults() ([]schema.HeroResultRecord, error)

	// Close closes the underlying connection
	Close() error
}
