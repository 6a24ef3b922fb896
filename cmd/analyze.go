package cmd

import (
	"github.com/JayGreentree/canvas-lms/core"
	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd computes the metric report for a response batch.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <responses-file>",
	Short: "Compute the metric report for a batch of responses.",
	Long: `Run the registered metric catalog for a question type over a response batch.

Loads responses from a JSON or CSV file, builds the shared calculation
context once, and evaluates every registered metric in declaration order.

Examples:
  # Analyze an essay batch
  quizstats analyze responses.json --type essay_question

  # Multiple choice with colored table output
  quizstats analyze picks.csv --type multiple_choice_question

  # Export findings to CSV for tracking
  quizstats analyze responses.json --type numerical_question --output csv --output-file report.csv

  # Record the run in a local SQLite store
  quizstats analyze responses.json --type essay_question --store-backend sqlite`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
