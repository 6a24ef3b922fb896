package quizstore

import (
	"errors"
	"fmt"

	"github.com/JayGreentree/canvas-lms/internal/parquet"
)

// ExecuteStoreExport performs the actual export of recorded run data to Parquet files.
func ExecuteStoreExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the results store
	store := Manager.GetResultStore()
	if store == nil {
		return errors.New("results store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total metric values: %d\n", status.TableSizes[metricValuesTable])

	// Retrieve all runs
	runs, err := store.ListRuns(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve the metric values of every run
	var values []parquet.MetricValue
	for _, run := range runs {
		records, err := store.ListMetricValues(run.RunID)
		if err != nil {
			return fmt.Errorf("failed to retrieve metric values for run %d: %w", run.RunID, err)
		}
		values = append(values, parquet.ConvertMetricValueRecords(records)...)
	}

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	parquetRuns := parquet.ConvertRunRecords(runs)
	if err := parquet.WriteStatRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write metric values to Parquet
	valuesFile := outputFile + ".metric_values.parquet"
	if err := parquet.WriteMetricValuesParquet(values, valuesFile); err != nil {
		return fmt.Errorf("failed to write metric values: %w", err)
	}
	fmt.Printf("Exported %d metric values to: %s\n", len(values), valuesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
