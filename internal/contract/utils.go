package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/herotier/schema"
)

// Color variables for console output, one per tier.
var (
	SColor = color.New(color.FgRed, color.Bold)    // SColor marks the top tier.
	AColor = color.New(color.FgYellow, color.Bold) // AColor approximates orange.
	BColor = color.New(color.FgGreen)              // BColor marks the middle tier.
	CColor = color.New(color.FgBlue)               // CColor marks the lower tier.
	DColor = color.New(color.FgMagenta)            // DColor approximates purple.
	NoTier = color.New(color.FgWhite, color.Faint) // NoTier is used for heroes missing from one side of a comparison.
)

// GetTierColor returns the console color of a tier.
func GetTierColor(t schema.Tier) *color.Color {
	switch t {
	case schema.TierS:
		return SColor
	case schema.TierA:
		return AColor
	case schema.TierB:
		return BColor
	case schema.TierC:
		return CColor
	case schema.TierD:
		return DColor
	default:
		return NoTier
	}
}

// GetPlainLabel returns the plain text label of a tier. This is the core
// logic used for CSV, JSON, and table printing.
func GetPlainLabel(t schema.Tier) string {
	if t == "" {
		return "-"
	}
	return string(t)
}

// GetColorLabel returns a colored tier label for console output (table).
func GetColorLabel(t schema.Tier) string {
	return GetTierColor(t).Sprint(GetPlainLabel(t))
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetProfileDBFilePath returns the path to the SQLite DB file for profile storage.
func GetProfileDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".herotier_profiles.db"
	}
	return filepath.Join(homeDir, ".herotier_profiles.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".herotier_history.db"
	}
	return filepath.Join(homeDir, ".herotier_history.db")
}

// TruncateName truncates a hero name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so that at least one character survives next to the "...".
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
