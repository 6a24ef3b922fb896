package schema

import "time"

// RunRecord represents a row from the quizstats_runs table.
type RunRecord struct {
	RunID          int64
	QuestionType   string
	StartTime      time.Time
	EndTime        *time.Time
	RunDurationMs  *int32
	TotalResponses int32
	ConfigParams   *string
}

// MetricValueRecord represents a row from the quizstats_metric_values table.
type MetricValueRecord struct {
	RunID        int64
	MetricKey    string
	Position     int32
	ValueJSON    string
	ComputedTime time.Time
}

// StoreStatus represents the status of the results store.
type StoreStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	TotalRuns      int              `json:"total_runs"`
	LastRunID      int64            `json:"last_run_id"`
	LastRunTime    time.Time        `json:"last_run_time"`
	OldestRunTime  time.Time        `json:"oldest_run_time"`
	TotalResponses int              `json:"total_responses"`
	TableSizes     map[string]int64 `json:"table_sizes"`
}
