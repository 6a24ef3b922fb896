// Package contract provides interfaces and shared utilities for the quizstats CLI's internal architecture.
package contract

import (
	"time"

	"github.com/JayGreentree/canvas-lms/schema"
)

// StoreManager defines the interface for managing the results store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetResultStore() ResultStore
}

// ResultStore defines the interface for recording computation runs and
// their metric values.
type ResultStore interface {
	// BeginRun creates a new run record and returns its unique ID
	BeginRun(questionType schema.QuestionType, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run record with completion data
	EndRun(runID int64, endTime time.Time, totalResponses int) error

	// RecordReport stores every metric value of a computed report
	RecordReport(runID int64, report *schema.Report) error

	// ListRuns returns recorded runs, newest first, up to limit
	ListRuns(limit int) ([]schema.RunRecord, error)

	// ListMetricValues returns the metric values recorded for a run
	ListMetricValues(runID int64) ([]schema.MetricValueRecord, error)

	// GetStatus returns status information about the results store
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection
	Close() error
}

// ResponseLoader defines the interface for reading a response batch
// from an input source.
type ResponseLoader interface {
	Load(path string) ([]schema.Response, error)
}
