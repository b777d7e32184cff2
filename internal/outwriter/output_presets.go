package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// presetView is a preset together with its rendered formula.
type presetView struct {
	schema.Preset
	WeightsByKey map[string]float64 `json:"weights_by_key"`
	Formula      string             `json:"formula"`
}

// PrintPresets displays the built-in weighting presets.
// This is a static display that does not score anything.
func PrintPresets(presets []schema.Preset, cfg *contract.Config) error {
	views := make([]presetView, len(presets))
	for i, p := range presets {
		views[i] = presetView{Preset: p, WeightsByKey: p.Weights.ToMap(), Formula: formatFormula(p.Weights)}
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, views)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePresetsCSV(w, views)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePresetsText(w, views, cfg)
		}, "Wrote text")
	}
}

// writePresetsText lists presets and, in detail mode, a dimension by preset weight matrix.
func writePresetsText(w io.Writer, views []presetView, cfg *contract.Config) error {
	title := "Weighting Presets"
	if cfg.UseEmojis {
		title = "⚖️  " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n==================\n\n", title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "All scores = weighted sum of hero attributes\n\n"); err != nil {
		return err
	}

	for _, v := range views {
		marker := ""
		if v.Name == cfg.Preset {
			marker = " (active)"
		}
		if _, err := fmt.Fprintf(w, "%s%s: %s\n", v.Name, marker, v.Title); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   %s\n", v.Description); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: Score = %s\n\n", v.Formula); err != nil {
			return err
		}
	}

	if !cfg.Detail {
		return nil
	}

	table := tablewriter.NewWriter(w)
	headers := []string{"Dimension"}
	for _, v := range views {
		headers = append(headers, v.Name)
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, d := range schema.Dimensions {
		row := []string{d.Name}
		for _, v := range views {
			weight := 0.0
			if i < len(v.Weights) {
				weight = v.Weights[i]
			}
			row = append(row, strconv.FormatFloat(weight, 'g', -1, 64))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writePresetsCSV writes presets in long format, one row per preset and dimension.
func writePresetsCSV(w io.Writer, views []presetView) error {
	return writeCSVWithHeader(w, []string{"preset", "title", "dimension", "weight"}, func(cw *csv.Writer) error {
		for _, v := range views {
			for i, d := range schema.Dimensions {
				if i >= len(v.Weights) {
					break
				}
				row := []string{v.Name, v.Title, d.Key, strconv.FormatFloat(v.Weights[i], 'g', -1, 64)}
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
		return nil
	})
}
