package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

// PrintProfile displays a stored profile with its formula.
func PrintProfile(profile schema.Profile, cfg *contract.Config) error {
	weighting, err := schema.ApplyWeights(make(schema.Weighting, schema.DimensionCount), profile.Weights)
	if err != nil {
		return fmt.Errorf("profile %s: %w", profile.Name, err)
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, profile)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"profile", "dimension", "weight"}, func(cw *csv.Writer) error {
				for i, d := range schema.Dimensions {
					if err := cw.Write([]string{profile.Name, d.Key, fmt.Sprint(weighting[i])}); err != nil {
						return fmt.Errorf("failed to write CSV row: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "Profile: %s\n  Preset:  %s\n  Saved:   %s\n  Formula: Score = %s\n",
				profile.Name, profile.Preset, profile.SavedAt.Format("2006-01-02 15:04:05"), formatFormula(weighting))
			return err
		}, "Wrote text")
	}
}

// PrintProfileList displays the names of stored profiles.
func PrintProfileList(names []string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if names == nil {
			names = []string{}
		}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, names)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"profile"}, func(cw *csv.Writer) error {
				for _, name := range names {
					if err := cw.Write([]string{name}); err != nil {
						return fmt.Errorf("failed to write CSV row: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if len(names) == 0 {
				_, err := fmt.Fprintln(w, "No profiles saved")
				return err
			}
			if _, err := fmt.Fprintf(w, "%d profile(s):\n", len(names)); err != nil {
				return err
			}
			for _, name := range names {
				if _, err := fmt.Fprintf(w, "  - %s\n", name); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote text")
	}
}
