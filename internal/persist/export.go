package persist

import (
	"errors"
	"fmt"

	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/internal/parquet"
)

// ExecuteHistoryExport exports every recorded run and hero result to Parquet files
// named after outputFile.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no history data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	results, err := store.GetAllHeroResults()
	if err != nil {
		return fmt.Errorf("failed to retrieve hero results: %w", err)
	}

	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetResults := parquet.ConvertHeroResultRecords(results)

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	resultsFile := outputFile + ".hero_results.parquet"
	if err := parquet.WriteHeroResultsParquet(parquetResults, resultsFile); err != nil {
		return fmt.Errorf("failed to write hero results: %w", err)
	}
	fmt.Printf("Exported %d hero results to: %s\n", len(parquetResults), resultsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
