// Package parquet provides data structures and functions for exporting
// quizstats run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/JayGreentree/canvas-lms/schema"
	"github.com/parquet-go/parquet-go"
)

// StatRun represents a single statistics run with metadata.
// This struct maps to the quizstats_runs database table.
type StatRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// QuestionType is the registry partition key the run computed
	QuestionType string `parquet:"question_type,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalResponses is the number of responses in the analyzed batch
	TotalResponses int32 `parquet:"total_responses,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// MetricValue represents one computed metric value in a run.
// This struct maps to the quizstats_metric_values database table.
type MetricValue struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// MetricKey is the name the value appears under in the report
	MetricKey string `parquet:"metric_key,snappy"`

	// Position is the metric's slot in the ordered report
	Position int32 `parquet:"position,snappy"`

	// ValueJSON is the JSON-encoded computed value
	ValueJSON string `parquet:"value_json,snappy"`

	// ComputedTime is when the value was recorded
	ComputedTime time.Time `parquet:"computed_time,snappy"`
}

// WriteStatRunsParquet writes a slice of StatRun structs to a Parquet file.
func WriteStatRunsParquet(data []StatRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the StatRun struct tags
	writer := parquet.NewGenericWriter[StatRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteMetricValuesParquet writes a slice of MetricValue structs to a Parquet file.
func WriteMetricValuesParquet(data []MetricValue, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the MetricValue struct tags
	writer := parquet.NewGenericWriter[MetricValue](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts store run records to their Parquet form.
func ConvertRunRecords(records []schema.RunRecord) []StatRun {
	out := make([]StatRun, 0, len(records))
	for _, r := range records {
		out = append(out, StatRun{
			RunID:          r.RunID,
			QuestionType:   r.QuestionType,
			StartTime:      r.StartTime,
			EndTime:        r.EndTime,
			RunDurationMs:  r.RunDurationMs,
			TotalResponses: r.TotalResponses,
			ConfigParams:   r.ConfigParams,
		})
	}
	return out
}

// ConvertMetricValueRecords converts store metric value records to their Parquet form.
func ConvertMetricValueRecords(records []schema.MetricValueRecord) []MetricValue {
	out := make([]MetricValue, 0, len(records))
	for _, r := range records {
		out = append(out, MetricValue{
			RunID:        r.RunID,
			MetricKey:    r.MetricKey,
			Position:     r.Position,
			ValueJSON:    r.ValueJSON,
			ComputedTime: r.ComputedTime,
		})
	}
	return out
}
