package schema

import (
	"fmt"
	"strings"
)

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for profiles and history.
	DatabaseBackend string

	// Tier represents one of the five ordered tier buckets.
	Tier string

	// MovementStatus represents how a hero moved between two tier lists.
	MovementStatus string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All tiers, highest first.
const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

// All movement statuses supported.
const (
	PromotedStatus  MovementStatus = "promoted"
	DemotedStatus   MovementStatus = "demoted"
	UnchangedStatus MovementStatus = "unchanged"
)

// AllTiers lists the tiers in display order.
var AllTiers = []Tier{TierS, TierA, TierB, TierC, TierD}

// Rank returns the ordinal of the tier, 0 for S through 4 for D, or -1.
func (t Tier) Rank() int {
	for i, tier := range AllTiers {
		if tier == t {
			return i
		}
	}
	return -1
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ParseTier returns the tier named by s, ignoring case and surrounding space.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToUpper(strings.TrimSpace(s)))
	if t.Rank() < 0 {
		return "", fmt.Errorf("invalid tier '%s'. must be one of S, A, B, C, D", s)
	}
	return t, nil
}
