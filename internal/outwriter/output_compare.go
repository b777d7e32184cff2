package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/internal/parquet"
	"github.com/huangsam/herotier/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintComparisonResults outputs tier movements, dispatching based on the output format configured.
func PrintComparisonResults(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, parquet.ConvertMovements(result.Details))
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(w, result, cfg, duration)
		}, "Wrote table")
	}
}

// writeComparisonTable renders one row per hero with its tier before and after.
func writeComparisonTable(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Hero", "Before", "After", "Rank", "Δ Score", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var red, green, yellow func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, m := range result.Details {
		var status string
		switch m.Status {
		case schema.PromotedStatus:
			status = green(fmt.Sprintf("%s ▲", m.Status))
		case schema.DemotedStatus:
			status = red(fmt.Sprintf("%s ▼", m.Status))
		default:
			status = yellow(string(m.Status))
		}

		data = append(data, []string{
			contract.TruncateName(m.Name, nameWidth),
			tierLabel(m.BeforeTier, cfg),
			tierLabel(m.AfterTier, cfg),
			formatRankMove(m),
			fmt.Sprintf("%+.*f", cfg.Precision, m.ScoreDelta),
			status,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := result.Summary
	if _, err := fmt.Fprintf(w, "Showing %d heroes (%s -> %s)\n", len(result.Details), result.BasePreset, result.TargetPreset); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Promoted: %d, Demoted: %d, Unchanged: %d\n", s.TotalPromoted, s.TotalDemoted, s.TotalUnchanged); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Tier sizes: %s\n", formatSizeChanges(s.BeforeSizes, s.AfterSizes)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Compared in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// formatRankMove renders a rank change such as "12 -> 4".
func formatRankMove(m schema.TierMovement) string {
	before, after := "-", "-"
	if m.BeforeRank > 0 {
		before = strconv.Itoa(m.BeforeRank)
	}
	if m.AfterRank > 0 {
		after = strconv.Itoa(m.AfterRank)
	}
	return before + " -> " + after
}

// formatSizeChanges renders tier sizes before and after, e.g. "S 3->5 A 12->10".
func formatSizeChanges(before, after map[schema.Tier]int) string {
	parts := make([]string, len(schema.AllTiers))
	for i, t := range schema.AllTiers {
		parts[i] = fmt.Sprintf("%s %d->%d", t, before[t], after[t])
	}
	return strings.Join(parts, " ")
}

// writeComparisonCSV writes one row per tier movement.
func writeComparisonCSV(w io.Writer, result schema.ComparisonResult, fmtFloat func(float64) string) error {
	header := []string{
		"hero",
		"before_tier",
		"after_tier",
		"before_rank",
		"after_rank",
		"rank_delta",
		"before_score",
		"after_score",
		"score_delta",
		"status",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range result.Details {
			row := []string{
				m.Name,
				contract.GetPlainLabel(m.BeforeTier),
				contract.GetPlainLabel(m.AfterTier),
				strconv.Itoa(m.BeforeRank),
				strconv.Itoa(m.AfterRank),
				strconv.Itoa(m.RankDelta),
				fmtFloat(m.BeforeScore),
				fmtFloat(m.AfterScore),
				fmtFloat(m.ScoreDelta),
				string(m.Status),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
