// Package main provides a performance benchmarking tool for the herotier CLI.
// It measures execution times for every preset and command type, running each
// test multiple times, treating the first successful run as cold and averaging
// the rest as warm, and writes the results to a CSV file.
//
// Prerequisites:
// - herotier binary installed and available in PATH
//
// Usage: go run benchmark/main.go [roster-file]
//
//	roster-file: Optional roster to benchmark instead of the built-in heroes
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-history average, cold run and average of warm runs).
type BenchmarkResult struct {
	Preset        string
	Command       string
	NoHistoryTime string
	ColdTime      string
	WarmTime      string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Roster        string
	HistoryDB     string
	Timeout       time.Duration
	NoHistoryRuns int
	HistoryRuns   int
	Presets       []string
	TargetPreset  string
}

func main() {
	if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [roster-file]\n", os.Args[0])
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "herotier-benchmark-*")
	if err != nil {
		fmt.Printf("Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	config := BenchmarkConfig{
		HistoryDB:     filepath.Join(tmpDir, "history.db"),
		Timeout:       time.Minute,
		NoHistoryRuns: 3,
		HistoryRuns:   4,
		Presets:       []string{"dashboard", "general", "multiplayer", "solo", "solo-rush"},
		TargetPreset:  "general",
	}
	if len(os.Args) == 2 {
		config.Roster = os.Args[1]
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the herotier binary and roster file exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("herotier"); err != nil {
		return fmt.Errorf("herotier binary not found in PATH")
	}
	if config.Roster != "" {
		if _, err := os.Stat(config.Roster); os.IsNotExist(err) {
			return fmt.Errorf("roster file not found at %s", config.Roster)
		}
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured presets
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d presets, %v timeout, no-history: %d runs, history: %d runs\n",
		len(config.Presets), config.Timeout, config.NoHistoryRuns, config.HistoryRuns)

	for _, preset := range config.Presets {
		fmt.Printf("Benchmarking %s\n", preset)

		results = append(results, runBenchmarkSuite(config, preset, "tiers", nil))
		results = append(results, runBenchmarkSuite(config, preset, "scores", nil))
		results = append(results, runBenchmarkSuite(config, preset, "compare", []string{"--target-preset", config.TargetPreset}))
	}

	return results
}

// runBenchmarkSuite runs both no-history and history benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, preset, command string, extraArgs []string) BenchmarkResult {
	runPhase := func(historyBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s %s phase (%d runs)\n", command, phaseName, numRuns)
		cold, times := runBenchmark(config, preset, command, extraArgs, historyBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		}
		return cold, avgTime
	}

	// Phase 1: No history tracking
	_, noHistoryAvg := runPhase("none", config.NoHistoryRuns, "No-history")

	// Phase 2: SQLite history tracking
	coldTime, warmAvg := runPhase("sqlite", config.HistoryRuns, "History")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-history average: %s, Cold time: %s, Warm average: %s\n", noHistoryAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Preset:        preset,
		Command:       command,
		NoHistoryTime: noHistoryAvg,
		ColdTime:      coldTimeStr,
		WarmTime:      warmAvg,
	}
}

// runBenchmark executes a herotier command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, preset, command string, extraArgs []string, historyBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, "--preset", preset, "--output", "json", "--profile-backend", "none", "--history-backend", historyBackend}
	if historyBackend == "sqlite" {
		args = append(args, "--history-db-connect", config.HistoryDB)
	}
	if config.Roster != "" {
		args = append(args, "--roster", config.Roster)
	}
	args = append(args, extraArgs...)

	var times []float64
	for range numRuns {
		start := time.Now()

		cmd := exec.Command("herotier", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.Output()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output is a JSON document
func isSuccess(output []byte) bool {
	outputStr := strings.TrimSpace(string(output))
	return strings.HasPrefix(outputStr, "{") || strings.HasPrefix(outputStr, "[")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/herotier_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"preset", "cmd", "no_history_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Preset, result.Command, result.NoHistoryTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "tiers", "Tier Lists:")
	printCommandSummary(results, "scores", "Scores:")
	printCommandSummary(results, "compare", "Comparisons:")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-history: %s, Cold: %s, Warm: %s\n", result.Preset, result.NoHistoryTime, result.ColdTime, result.WarmTime)
		}
	}
}
