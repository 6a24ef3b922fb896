package contract

import (
	"fmt"
	"strings"

	"github.com/JayGreentree/canvas-lms/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 4
)

// Config holds the runtime configuration for a statistics run.
// This struct remains the "final, validated" config.
type Config struct {
	ResponsesFile string
	QuestionType  schema.QuestionType
	Output        schema.OutputMode
	OutputFile    string
	Precision     int
	Strict        bool // Fail fast on duplicate metric keys before computing
	Width         int  // Terminal width override (0 = auto-detect)

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ResponsesFileStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Type           string `mapstructure:"type"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Strict         bool   `mapstructure:"strict"`
	Width          int    `mapstructure:"width"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Question type ---
	cfg.QuestionType = schema.QuestionType(strings.ToLower(strings.TrimSpace(input.Type)))
	if cfg.QuestionType == "" {
		return fmt.Errorf("a question type is required (--type)")
	}

	// --- 2. Output mode ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// --- 3. Precision ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 4. Store backend ---
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, input.StoreDBConnect); err != nil {
		return err
	}
	cfg.StoreDBConnect = input.StoreDBConnect

	// --- 5. Cosmetics ---
	cfg.Strict = input.Strict
	cfg.Width = input.Width
	cfg.UseEmojis = parseYesNo(input.Emoji, true)
	cfg.UseColors = parseYesNo(input.Color, true)

	// --- 6. Responses file ---
	cfg.ResponsesFile = input.ResponsesFileStr

	return nil
}

// Clone returns a copy of the Config struct. The config has no
// reference fields so a value copy is sufficient.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("invalid MySQL connection string. expected format: user:password@tcp(host:port)/dbname")
		}
		return nil
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.HasPrefix(connStr, "postgres://") && !strings.Contains(connStr, "host=") {
			return fmt.Errorf("invalid PostgreSQL connection string. expected a postgres:// URL or key=value form")
		}
		return nil
	default:
		return fmt.Errorf("unsupported backend: %s", backend)
	}
}

// parseYesNo interprets a yes/no flag value, falling back to def for
// anything unrecognized.
func parseYesNo(value string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1", "on":
		return true
	case "no", "n", "false", "0", "off":
		return false
	default:
		return def
	}
}
