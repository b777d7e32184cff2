// Package parquet provides data structures and functions for exporting tier lists
// and run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/herotier/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single recorded tier list run.
// This struct maps to the herotier_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RunUUID is the globally unique identifier of this run
	RunUUID string `parquet:"run_uuid,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalHeroes is the number of heroes tiered in this run
	TotalHeroes int32 `parquet:"total_heroes,snappy"`

	// ScoreMean is the population mean of the run (nullable)
	ScoreMean *float64 `parquet:"score_mean,optional,snappy"`

	// ScoreStd is the population standard deviation of the run (nullable)
	ScoreStd *float64 `parquet:"score_std,optional,snappy"`

	// Preset is the weighting preset the run started from
	Preset string `parquet:"preset,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// HeroResult represents the outcome of a single hero in a run.
// This struct maps to the herotier_hero_results database table.
type HeroResult struct {
	RunID      int64     `parquet:"run_id,snappy"`
	HeroName   string    `parquet:"hero_name,snappy"`
	RecordTime time.Time `parquet:"record_time,snappy"`
	Score      float64   `parquet:"score,snappy"`
	Tier       string    `parquet:"tier,snappy"`
	Rank       int32     `parquet:"hero_rank,snappy"`
}

// TierRow is one hero of a tier list in display order.
type TierRow struct {
	Rank   int32   `parquet:"rank,snappy"`
	Tier   string  `parquet:"tier,snappy"`
	Hero   string  `parquet:"hero,snappy"`
	Score  float64 `parquet:"score,snappy"`
	Preset string  `parquet:"preset,snappy"`
}

// MovementRow is one hero's movement between two tier lists.
type MovementRow struct {
	Hero        string  `parquet:"hero,snappy"`
	BeforeTier  string  `parquet:"before_tier,snappy"`
	AfterTier   string  `parquet:"after_tier,snappy"`
	BeforeRank  int32   `parquet:"before_rank,snappy"`
	AfterRank   int32   `parquet:"after_rank,snappy"`
	RankDelta   int32   `parquet:"rank_delta,snappy"`
	BeforeScore float64 `parquet:"before_score,snappy"`
	AfterScore  float64 `parquet:"after_score,snappy"`
	ScoreDelta  float64 `parquet:"score_delta,snappy"`
	Status      string  `parquet:"status,snappy"`
}

// Write encodes rows to w using the schema inferred from T's struct tags.
func Write[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteFile creates outputPath and encodes rows into it.
func WriteFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(file, data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteRunsParquet writes run records to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	return WriteFile(data, outputPath)
}

// WriteHeroResultsParquet writes hero result records to a Parquet file.
func WriteHeroResultsParquet(data []HeroResult, outputPath string) error {
	return WriteFile(data, outputPath)
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:         record.RunID,
			RunUUID:       record.RunUUID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalHeroes:   record.TotalHeroes,
			ScoreMean:     record.ScoreMean,
			ScoreStd:      record.ScoreStd,
			Preset:        record.Preset,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertHeroResultRecords converts schema.HeroResultRecord to HeroResult for Parquet export.
func ConvertHeroResultRecords(records []schema.HeroResultRecord) []HeroResult {
	result := make([]HeroResult, len(records))
	for i, record := range records {
		result[i] = HeroResult{
			RunID:      record.RunID,
			HeroName:   record.HeroName,
			RecordTime: record.RecordTime,
			Score:      record.Score,
			Tier:       record.Tier,
			Rank:       record.Rank,
		}
	}
	return result
}

// ConvertRankedHeroes converts ranked heroes to tier rows.
func ConvertRankedHeroes(heroes []schema.RankedHero, preset string) []TierRow {
	result := make([]TierRow, len(heroes))
	for i, h := range heroes {
		result[i] = TierRow{
			Rank:   int32(h.Rank),
			Tier:   string(h.Tier),
			Hero:   h.Name,
			Score:  h.Score,
			Preset: preset,
		}
	}
	return result
}

// ConvertMovements converts tier movements to movement rows.
func ConvertMovements(details []schema.TierMovement) []MovementRow {
	result := make([]MovementRow, len(details))
	for i, d := range details {
		result[i] = MovementRow{
			Hero:        d.Name,
			BeforeTier:  string(d.BeforeTier),
			AfterTier:   string(d.AfterTier),
			BeforeRank:  int32(d.BeforeRank),
			AfterRank:   int32(d.AfterRank),
			RankDelta:   int32(d.RankDelta),
			BeforeScore: d.BeforeScore,
			AfterScore:  d.AfterScore,
			ScoreDelta:  d.ScoreDelta,
			Status:      string(d.Status),
		}
	}
	return result
}
