package cmd

import (
	"fmt"

	"github.com/JayGreentree/canvas-lms/internal/mcp"
	"github.com/JayGreentree/canvas-lms/internal/quizstore"
	"github.com/JayGreentree/canvas-lms/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mcpSetup loads minimal configuration for the MCP server. The question
// type and responses file arrive per tool call, so the full shared setup
// does not apply here.
func mcpSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	cfg.Output = schema.JSONOut
	cfg.Precision = viper.GetInt("precision")

	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := quizstore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Quizstats MCP server",
	Long:  `Launch an MCP server that allows AI agents to compute response statistics via standard tools.`,
	// Suppress the normal header logs when running in MCP mode
	// to avoid polluting stdio which is used for the protocol.
	PreRunE: mcpSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
