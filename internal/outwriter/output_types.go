package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/JayGreentree/canvas-lms/schema"

	"github.com/olekukonko/tablewriter"
)

// TypeCatalogEntry describes one question type's registered metrics for display.
type TypeCatalogEntry struct {
	QuestionType schema.QuestionType `json:"question_type"`
	MetricKeys   []string            `json:"metric_keys"`
	Dependencies map[string][]string `json:"dependencies,omitempty"`
}

// PrintTypeCatalog outputs the registered question types and their
// metric keys, dispatching based on the output format configured.
func PrintTypeCatalog(catalog []TypeCatalogEntry, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, catalog)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"Type", "Metrics"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, entry := range catalog {
					record := []string{string(entry.QuestionType), strings.Join(entry.MetricKeys, "|")}
					if err := csvWriter.Write(record); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTypeCatalogTable(catalog, w)
		}, "Wrote table")
	}
}

// writeTypeCatalogTable generates and writes the human-readable table.
func writeTypeCatalogTable(catalog []TypeCatalogEntry, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Type", "Metrics", "Count"})

	var data [][]string
	for _, entry := range catalog {
		data = append(data, []string{
			string(entry.QuestionType),
			strings.Join(entry.MetricKeys, ", "),
			fmt.Sprintf("%d", len(entry.MetricKeys)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
