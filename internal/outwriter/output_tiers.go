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

// jsonTierHero is one hero of a tier list in JSON output.
type jsonTierHero struct {
	Rank          int                `json:"rank"`
	Name          string             `json:"name"`
	Score         float64            `json:"score"`
	Tier          schema.Tier        `json:"tier"`
	Attributes    []float64          `json:"attributes,omitempty"`
	Contributions map[string]float64 `json:"contributions,omitempty"`
}

// jsonTierList is the JSON document for a tier list.
type jsonTierList struct {
	schema.TierListResult
	Heroes []jsonTierHero `json:"heroes"`
}

// PrintTierListResults outputs a tier list, dispatching based on the output format configured.
func PrintTierListResults(result schema.TierListResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTierListJSON(w, result, cfg)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTierListCSV(w, result, cfg, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		heroes := limitRanked(result.TierList.Flatten(), cfg.ResultLimit)
		return writeParquetFile(cfg.OutputFile, parquet.ConvertRankedHeroes(heroes, result.Preset))
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTierListTable(w, result, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeTierListTable generates and writes the human-readable tier list.
func writeTierListTable(w io.Writer, result schema.TierListResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Rank", "Hero", "Score", "Tier"}
	if cfg.Detail {
		headers = append(headers, "Attributes")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	all := result.TierList.Flatten()
	shown := limitRanked(all, cfg.ResultLimit)
	nameWidth := getMaxTableNameWidth(cfg)

	var data [][]string
	for _, h := range shown {
		row := []string{
			strconv.Itoa(h.Rank),
			contract.TruncateName(h.Name, nameWidth),
			fmtFloat(h.Score),
			tierLabel(h.Tier, cfg),
		}
		if cfg.Detail {
			row = append(row, formatAttributes(result.Attributes(h.Name)))
		}
		if cfg.Explain {
			row = append(row, formatTopContributions(result.Attributes(h.Name), result.Weighting, cfg.Precision))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	tl := result.TierList
	th := tl.Thresholds
	if _, err := fmt.Fprintf(w, "Tier sizes: %s\n", formatTierSizes(tierSizes(tl))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Thresholds: S >= %s, A >= %s, B >= %s, C >= %s (mean %s, std %s)\n",
		fmtFloat(th.S), fmtFloat(th.A), fmtFloat(th.B), fmtFloat(th.C),
		fmtFloat(tl.Stats.Mean), fmtFloat(tl.Stats.Std)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Showing %d of %d heroes. Scored in %v. History backend: %s\n",
		len(shown), len(all), duration, cfg.HistoryBackend); err != nil {
		return err
	}
	if result.RunID > 0 {
		if _, err := fmt.Fprintf(w, "Recorded as run #%d\n", result.RunID); err != nil {
			return err
		}
	}
	return nil
}

// writeTierListJSON writes the tier list with a flattened, limited hero list.
func writeTierListJSON(w io.Writer, result schema.TierListResult, cfg *contract.Config) error {
	shown := limitRanked(result.TierList.Flatten(), cfg.ResultLimit)
	heroes := make([]jsonTierHero, len(shown))
	for i, h := range shown {
		jh := jsonTierHero{Rank: h.Rank, Name: h.Name, Score: h.Score, Tier: h.Tier}
		attrs := result.Attributes(h.Name)
		if cfg.Detail {
			jh.Attributes = attrs
		}
		if cfg.Explain {
			jh.Contributions = make(map[string]float64)
			for _, c := range topContributions(attrs, result.Weighting, topNContributions) {
				jh.Contributions[c.Key] = c.Value
			}
		}
		heroes[i] = jh
	}
	return writeJSON(w, jsonTierList{TierListResult: result, Heroes: heroes})
}

// writeTierListCSV writes one row per hero, with one column per dimension in detail mode.
func writeTierListCSV(w io.Writer, result schema.TierListResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"rank", "hero", "score", "tier", "preset"}
	if cfg.Detail {
		keys := schema.DimensionKeys()
		header = append(header, keys[:min(len(keys), len(result.Weighting))]...)
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, h := range limitRanked(result.TierList.Flatten(), cfg.ResultLimit) {
			row := []string{
				strconv.Itoa(h.Rank),
				h.Name,
				fmtFloat(h.Score),
				contract.GetPlainLabel(h.Tier),
				result.Preset,
			}
			if cfg.Detail {
				for _, v := range result.Attributes(h.Name) {
					row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
				}
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
