package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// PrintCheckResult outputs a tier check outcome, dispatching based on the output format configured.
func PrintCheckResult(result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckCSV(w, result, createFormatters(cfg.Precision))
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCheckText(w, result, cfg, duration)
		}, "Wrote text")
	}
}

// writeCheckText prints the check in a concise format suitable for CI/CD.
func writeCheckText(w io.Writer, result schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	if _, err := fmt.Fprintln(w, "Tier Check Results:"); err != nil {
		return err
	}

	labels := []string{"Preset:", "Min tier:", "Heroes:"}
	values := []any{result.Preset, result.MinTier, len(result.Heroes)}

	maxLabelLen := 0
	for _, label := range labels {
		maxLabelLen = max(maxLabelLen, len(label))
	}
	for i, label := range labels {
		if _, err := fmt.Fprintf(w, "  %-*s %v\n", maxLabelLen+1, label, values[i]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nChecked %d heroes in %v\n\n", len(result.Heroes), duration); err != nil {
		return err
	}

	if result.Passed {
		if _, err := fmt.Fprintf(w, "✅ All heroes reached tier %s or better\n\n", result.MinTier); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "❌ Tier check failed: %d of %d heroes below tier %s\n\n", result.Failed, len(result.Heroes), result.MinTier); err != nil {
			return err
		}
	}

	for _, h := range result.Heroes {
		mark := "ok"
		if !h.Passed {
			mark = "below"
		}
		if _, err := fmt.Fprintf(w, "  - %s: tier %s, rank %d, score %.*f (%s)\n",
			h.Name, tierLabel(h.Tier, cfg), h.Rank, cfg.Precision, h.Score, mark); err != nil {
			return err
		}
	}
	return nil
}

// writeCheckCSV writes one row per checked hero.
func writeCheckCSV(w io.Writer, result schema.CheckResult, fmtFloat func(float64) string) error {
	header := []string{"hero", "tier", "rank", "score", "min_tier", "passed"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, h := range result.Heroes {
			row := []string{
				h.Name,
				contract.GetPlainLabel(h.Tier),
				strconv.Itoa(h.Rank),
				fmtFloat(h.Score),
				string(result.MinTier),
				strconv.FormatBool(h.Passed),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
