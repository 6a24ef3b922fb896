package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/JayGreentree/canvas-lms/internal/parquet"
	"github.com/JayGreentree/canvas-lms/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintReport outputs the computed report, dispatching based on the output format configured.
func PrintReport(report *schema.Report, responses []schema.Response, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSV(report, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeReportParquet(report, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(report, responses, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeReportJSON handles opening the file and encoding the ordered report.
func writeReportJSON(report *schema.Report, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeReportCSV handles opening the file and writing key/value rows.
func writeReportCSV(report *schema.Report, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"Position", "Metric", "Value"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, key := range report.Keys() {
				value, _ := report.Get(key)
				record := []string{
					strconv.Itoa(i + 1),
					key,
					contract.FormatMetricValue(value, cfg.Precision),
				}
				if err := csvWriter.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeReportParquet writes the report as metric value rows. RunID is 0
// since a direct export is not tied to a stored run.
func writeReportParquet(report *schema.Report, cfg *contract.Config) error {
	now := time.Now()
	values := make([]parquet.MetricValue, 0, report.Len())
	for i, key := range report.Keys() {
		value, _ := report.Get(key)
		raw, err := jsonMarshalValue(value)
		if err != nil {
			return fmt.Errorf("failed to encode metric %q: %w", key, err)
		}
		values = append(values, parquet.MetricValue{
			MetricKey:    key,
			Position:     int32(i),
			ValueJSON:    raw,
			ComputedTime: now,
		})
	}
	if err := parquet.WriteMetricValuesParquet(values, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Exported %d metric values to: %s\n", len(values), cfg.OutputFile)
	return nil
}

// jsonMarshalValue encodes a computed value for the parquet rows.
func jsonMarshalValue(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// writeReportTable generates and writes the human-readable table.
func writeReportTable(report *schema.Report, responses []schema.Response, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Pos", "Metric", "Value"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	maxKeyWidth := GetMaxTableKeyWidth(cfg)
	for i, key := range report.Keys() {
		value, _ := report.Get(key)
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateKey(key, maxKeyWidth),
			contract.FormatMetricValue(value, cfg.Precision),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	answered := 0
	for i := range responses {
		if responses[i].Answered() {
			answered++
		}
	}
	ratio := 0.0
	if len(responses) > 0 {
		ratio = float64(answered) / float64(len(responses))
	}

	label := contract.GetPlainLabel(ratio)
	if cfg.UseColors {
		label = contract.GetColorLabel(ratio)
	}

	if cfg.UseEmojis {
		fmt.Fprintf(writer, "\n📊 %d metrics | %d/%d answered (%s) | ⏱️  %v\n",
			report.Len(), answered, len(responses), label, duration.Round(time.Millisecond))
	} else {
		fmt.Fprintf(writer, "\n%d metrics | %d/%d answered (%s) | %v\n",
			report.Len(), answered, len(responses), label, duration.Round(time.Millisecond))
	}

	return nil
}
