package cmd

import (
	"fmt"
	"strings"

	"github.com/JayGreentree/canvas-lms/core"
	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/JayGreentree/canvas-lms/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// typesSetup loads minimal configuration needed to display the catalog.
// No question type or response batch is required here.
func typesSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	cfg.Output = schema.OutputMode(strings.ToLower(viper.GetString("output")))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", viper.GetString("output"))
	}
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Width = viper.GetInt("width")

	return nil
}

// typesCmd displays the registered question types and their metric catalogs.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered question types and their metric catalogs",
	Long: `Show every registered question type with its metric keys and context dependencies.

No response data is read - this is purely informational.

Use this to:
- Discover which question types are supported
- See which metrics a report will contain
- Check which context dependencies a metric consumes

Examples:
  # Show the catalog as a table
  quizstats types

  # Machine-readable catalog
  quizstats types --output json`,
	PreRunE: typesSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTypes(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot display types", err)
		}
	},
}
