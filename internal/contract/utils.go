package contract

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
)

// Participation label constants.
const (
	FullValue    = "Full"    // Everyone answered
	HighValue    = "High"    // Most answered
	PartialValue = "Partial" // Roughly half answered
	LowValue     = "Low"     // Few answered
)

// Color variables for console output.
var (
	FullColor    = color.New(color.FgGreen, color.Bold) // fullColor marks complete participation.
	HighColor    = color.New(color.FgCyan)              // highColor marks strong participation.
	PartialColor = color.New(color.FgYellow)            // partialColor marks standard caution, not bold.
	LowColor     = color.New(color.FgRed, color.Bold)   // lowColor marks a batch that mostly skipped.
)

// GetPlainLabel returns a plain text label for the answered ratio of a
// batch. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(answeredRatio float64) string {
	switch {
	case answeredRatio >= 1:
		return FullValue
	case answeredRatio >= 0.75:
		return HighValue
	case answeredRatio >= 0.4:
		return PartialValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored participation label for console
// output (table). It uses GetPlainLabel to determine the string, and
// then applies the appropriate color.
func GetColorLabel(answeredRatio float64) string {
	text := GetPlainLabel(answeredRatio)

	switch text {
	case FullValue:
		return FullColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case PartialValue:
		return PartialColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output,
// based on the provided file path. An empty path selects stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// FormatMetricValue renders a computed metric value for tabular and CSV
// output. Floats honor the configured precision; everything else falls
// back to fmt formatting.
func FormatMetricValue(value any, precision int) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', precision, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', precision, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// TruncateKey shortens a metric key for narrow table columns, keeping
// the tail which carries the discriminating suffix.
func TruncateKey(key string, maxLen int) string {
	if maxLen <= 0 || len(key) <= maxLen {
		return key
	}
	if maxLen <= 3 {
		return key[len(key)-maxLen:]
	}
	return "..." + key[len(key)-(maxLen-3):]
}
