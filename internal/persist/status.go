package persist

import (
	"fmt"
	"sort"

	"github.com/huangsam/herotier/schema"
)

// PrintProfileStatus prints profile store status information.
func PrintProfileStatus(status schema.ProfileStatus) {
	fmt.Printf("Profile Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Profiles: %d\n", status.TotalProfiles)
	if status.TotalProfiles > 0 {
		fmt.Printf("Last Saved: %s\n", status.LastSavedTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Saved: %s\n", status.OldestSavedTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Table Size: %d bytes\n", status.TableSizeBytes)
}

// PrintHistoryStatus prints history store status information.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run ID: %d\n", status.LastRunID)
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Run: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Total Heroes Rated: %d\n", status.TotalHeroesRated)
	}
	tables := make([]string, 0, len(status.TableSizes))
	for table := range status.TableSizes {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	fmt.Println("Table Sizes:")
	for _, table := range tables {
		fmt.Printf("  %s: %d bytes\n", table, status.TableSizes[table])
	}
}
