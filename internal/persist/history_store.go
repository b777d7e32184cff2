package persist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// Table names for history tracking.
const (
	runsTable        = "herotier_runs"
	heroResultsTable = "herotier_hero_results"
)

// HistoryStoreImpl records tier list runs and the per-hero outcome of each run.
type HistoryStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore opens the history tables for the backend, creating them when missing.
// The none backend yields a store that records nothing.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (*HistoryStoreImpl, error) {
	if backend == schema.NoneBackend {
		return &HistoryStoreImpl{backend: backend, connStr: connStr}, nil
	}

	db, err := openDB(backend, connStr, contract.GetHistoryDBFilePath())
	if err != nil {
		return nil, err
	}

	if err := createHistoryTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &HistoryStoreImpl{db: db, backend: backend, connStr: connStr}, nil
}

// createHistoryTables applies every embedded up migration for the backend.
// Each migration is idempotent so that the migrate command can adopt the tables later.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	dir := path.Join("migrations", migrationDir(backend))
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations for %s: %w", backend, err)
	}

	var ups []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			ups = append(ups, entry.Name())
		}
	}
	sort.Strings(ups)

	for _, name := range ups {
		query, err := fs.ReadFile(migrationsFS, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(query)); err != nil {
			return fmt.Errorf("failed to apply %s: %w", name, err)
		}
	}
	return nil
}

// BeginRun creates a new run and returns its unique ID.
func (hs *HistoryStoreImpl) BeginRun(startTime time.Time, preset string, configParams map[string]any) (int64, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	quoted := quoteTableName(runsTable, hs.backend)
	runUUID := uuid.NewString()

	var runID int64
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (run_uuid, start_time, preset, config_params) VALUES ($1, $2, $3, $4) RETURNING run_id`, quoted)
		err = hs.db.QueryRow(query, runUUID, formatTime(startTime, hs.backend), preset, string(configJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (run_uuid, start_time, preset, config_params) VALUES (?, ?, ?, ?)`, quoted)
		var result sql.Result
		result, err = hs.db.Exec(query, runUUID, formatTime(startTime, hs.backend), preset, string(configJSON))
		if err != nil {
			return 0, fmt.Errorf("failed to insert run: %w", err)
		}
		runID, err = result.LastInsertId()
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return runID, nil
}

// EndRun updates the run with completion data.
func (hs *HistoryStoreImpl) EndRun(runID int64, endTime time.Time, totalHeroes int, stats schema.Stats) error {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	quoted := quoteTableName(runsTable, hs.backend)

	var startTime nullTime
	query := rebind(fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = ?`, quoted), hs.backend)
	if err := hs.db.QueryRow(query, runID).Scan(&startTime); err != nil {
		return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
	}

	durationMs := endTime.Sub(startTime.Time).Milliseconds()

	update := rebind(fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ?, total_heroes = ?, score_mean = ?, score_std = ? WHERE run_id = ?`, quoted), hs.backend)
	if _, err := hs.db.Exec(update, formatTime(endTime, hs.backend), durationMs, totalHeroes, stats.Mean, stats.Std, runID); err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	return nil
}

// RecordHeroResult stores the score, tier and rank of one hero.
func (hs *HistoryStoreImpl) RecordHeroResult(runID int64, result schema.HeroResult) error {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	query := rebind(fmt.Sprintf(`
		INSERT INTO %s (run_id, hero_name, record_time, score, tier, hero_rank)
		VALUES (?, ?, ?, ?, ?, ?)
	`, quoteTableName(heroResultsTable, hs.backend)), hs.backend)

	_, err := hs.db.Exec(query, runID, result.HeroName, formatTime(time.Now(), hs.backend), result.Score, string(result.Tier), result.Rank)
	if err != nil {
		return fmt.Errorf("failed to insert result for %s: %w", result.HeroName, err)
	}
	return nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:    string(hs.backend),
		Connected:  hs.db != nil,
		TableSizes: make(map[string]int64),
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	quotedRuns := quoteTableName(runsTable, hs.backend)

	if err := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedRuns)).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		var last, oldest nullTime
		var heroes sql.NullInt64
		query := fmt.Sprintf("SELECT MAX(run_id), MAX(start_time), MIN(start_time), SUM(total_heroes) FROM %s", quotedRuns)
		if err := hs.db.QueryRow(query).Scan(&status.LastRunID, &last, &oldest, &heroes); err != nil {
			return status, fmt.Errorf("failed to summarize runs: %w", err)
		}
		status.LastRunTime = last.Time
		status.OldestRunTime = oldest.Time
		status.TotalHeroesRated = int(heroes.Int64)
	}

	for _, table := range []string{runsTable, heroResultsTable} {
		var rows int64
		if err := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, hs.backend))).Scan(&rows); err != nil {
			return status, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		status.TableSizes[table] = tableSize(hs.db, hs.backend, hs.connStr, table, rows)
	}

	return status, nil
}

// GetAllRuns retrieves every run record ordered by ID.
func (hs *HistoryStoreImpl) GetAllRuns() ([]schema.RunRecord, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT run_id, run_uuid, start_time, end_time, run_duration_ms, total_heroes,
		       score_mean, score_std, preset, config_params
		FROM %s ORDER BY run_id
	`, quoteTableName(runsTable, hs.backend))

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.RunRecord
	for rows.Next() {
		var rec schema.RunRecord
		var start, end nullTime
		var duration sql.NullInt32
		var mean, std sql.NullFloat64
		var params sql.NullString

		if err := rows.Scan(&rec.RunID, &rec.RunUUID, &start, &end, &duration, &rec.TotalHeroes,
			&mean, &std, &rec.Preset, &params); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		rec.StartTime = start.Time
		if end.Valid {
			rec.EndTime = &end.Time
		}
		if duration.Valid {
			rec.RunDurationMs = &duration.Int32
		}
		if mean.Valid {
			rec.ScoreMean = &mean.Float64
		}
		if std.Valid {
			rec.ScoreStd = &std.Float64
		}
		if params.Valid {
			rec.ConfigParams = &params.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetAllHeroResults retrieves every hero result ordered by run and rank.
func (hs *HistoryStoreImpl) GetAllHeroResults() ([]schema.HeroResultRecord, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT run_id, hero_name, record_time, score, tier, hero_rank
		FROM %s ORDER BY run_id, hero_rank
	`, quoteTableName(heroResultsTable, hs.backend))

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query hero results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.HeroResultRecord
	for rows.Next() {
		var rec schema.HeroResultRecord
		var recorded nullTime
		if err := rows.Scan(&rec.RunID, &rec.HeroName, &recorded, &rec.Score, &rec.Tier, &rec.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan hero result: %w", err)
		}
		rec.RecordTime = recorded.Time
		records = append(records, rec)
	}
	return records, rows.Err()
}
