// Package outwriter has output and writer logic for computed reports.
package outwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/JayGreentree/canvas-lms/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a computed report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.Report, responses []schema.Response, cfg *contract.Config, duration time.Duration) error {
	return PrintReport(report, responses, cfg, duration)
}

// WriteTypes prints the registered question types and their metric keys.
func (ow *OutWriter) WriteTypes(catalog []TypeCatalogEntry, cfg *contract.Config) error {
	return PrintTypeCatalog(catalog, cfg)
}

// LogAnalysisHeader prints a concise, 2-line header for each analysis run.
func LogAnalysisHeader(cfg *contract.Config, total int) {
	batchName := filepath.Base(cfg.ResponsesFile)
	if batchName == "" || batchName == "." {
		batchName = "stdin"
	}

	if cfg.UseEmojis {
		// Line 1: The analysis summary (batch and question type)
		fmt.Printf("🔎 Batch: %s (Type: %s)\n", batchName, cfg.QuestionType)
		// Line 2: The batch size
		fmt.Printf("🧮 Responses: %d\n", total)
		return
	}
	fmt.Printf("Batch: %s (Type: %s)\n", batchName, cfg.QuestionType)
	fmt.Printf("Responses: %d\n", total)
}

// GetMaxTableKeyWidth calculates the maximum width for metric keys in
// table output based on terminal width and table configuration.
func GetMaxTableKeyWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the position and value columns plus borders,
	// separators and padding
	baseWidth := 35

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable key width
		return 15
	}
	if available > 60 {
		// Maximum key width to prevent overly long keys
		return 60
	}
	return available
}
