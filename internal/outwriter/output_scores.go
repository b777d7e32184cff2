package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/internal/parquet"
	"github.com/huangsam/herotier/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintScoreResults outputs ranked scores, dispatching based on the output format configured.
func PrintScoreResults(result schema.ScoreResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, parquet.ConvertRankedHeroes(result.Heroes, result.Preset))
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresTable(w, result, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeScoresTable renders the ranking with a bar per hero.
func writeScoresTable(w io.Writer, result schema.ScoreResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Hero", "Score", "Bar"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignRight, tw.AlignRight, tw.AlignRight, tw.AlignLeft}
	})

	maxAbs := maxAbsScore(result.Heroes)
	nameWidth := getMaxTableNameWidth(cfg)

	var data [][]string
	for _, h := range result.Heroes {
		data = append(data, []string{
			strconv.Itoa(h.Rank),
			contract.TruncateName(h.Name, nameWidth),
			fmtFloat(h.Score),
			scoreBar(h.Score, maxAbs),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	st := result.Stats
	if _, err := fmt.Fprintf(w, "Showing %d of %d heroes (mean %s, std %s, min %s, max %s)\n",
		len(result.Heroes), st.Count, fmtFloat(st.Mean), fmtFloat(st.Std), fmtFloat(st.Min), fmtFloat(st.Max)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Scored in %v with preset %s\n", duration, result.Preset); err != nil {
		return err
	}
	return nil
}

// writeScoresCSV writes one row per ranked hero.
func writeScoresCSV(w io.Writer, result schema.ScoreResult, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"rank", "hero", "score", "preset"}, func(cw *csv.Writer) error {
		for _, h := range result.Heroes {
			if err := cw.Write([]string{strconv.Itoa(h.Rank), h.Name, fmtFloat(h.Score), result.Preset}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
