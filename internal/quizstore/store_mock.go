package quizstore

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/JayGreentree/canvas-lms/schema"
)

// MockResultStore is an in-memory ResultStore for testing.
type MockResultStore struct {
	mu      sync.Mutex
	nextID  int64
	runs    []schema.RunRecord
	values  map[int64][]schema.MetricValueRecord
	FailAll bool // When true, every mutating call reports an error
}

var _ contract.ResultStore = &MockResultStore{} // Compile-time check

// NewMockResultStore creates an empty in-memory result store.
func NewMockResultStore() *MockResultStore {
	return &MockResultStore{values: make(map[int64][]schema.MetricValueRecord)}
}

// BeginRun creates a new run record and returns its unique ID.
func (ms *MockResultStore) BeginRun(questionType schema.QuestionType, startTime time.Time, configParams map[string]any) (int64, error) {
	if ms.FailAll {
		return 0, errMockFailure
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.nextID++
	var params *string
	if configParams != nil {
		raw, err := json.Marshal(configParams)
		if err != nil {
			return 0, err
		}
		s := string(raw)
		params = &s
	}
	ms.runs = append(ms.runs, schema.RunRecord{
		RunID:        ms.nextID,
		QuestionType: string(questionType),
		StartTime:    startTime,
		ConfigParams: params,
	})
	return ms.nextID, nil
}

// EndRun updates the run record with completion data.
func (ms *MockResultStore) EndRun(runID int64, endTime time.Time, totalResponses int) error {
	if ms.FailAll {
		return errMockFailure
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for i := range ms.runs {
		if ms.runs[i].RunID == runID {
			durationMs := int32(endTime.Sub(ms.runs[i].StartTime).Milliseconds())
			ms.runs[i].EndTime = &endTime
			ms.runs[i].RunDurationMs = &durationMs
			ms.runs[i].TotalResponses = int32(totalResponses)
			return nil
		}
	}
	return errMockFailure
}

// RecordReport stores every metric value of a computed report.
func (ms *MockResultStore) RecordReport(runID int64, report *schema.Report) error {
	if ms.FailAll {
		return errMockFailure
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	for i, key := range report.Keys() {
		value, _ := report.Get(key)
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		ms.values[runID] = append(ms.values[runID], schema.MetricValueRecord{
			RunID:        runID,
			MetricKey:    key,
			Position:     int32(i),
			ValueJSON:    string(raw),
			ComputedTime: now,
		})
	}
	return nil
}

// ListRuns returns recorded runs, newest first, up to limit.
func (ms *MockResultStore) ListRuns(limit int) ([]schema.RunRecord, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make([]schema.RunRecord, 0, len(ms.runs))
	for i := len(ms.runs) - 1; i >= 0; i-- {
		out = append(out, ms.runs[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// ListMetricValues returns the metric values recorded for a run.
func (ms *MockResultStore) ListMetricValues(runID int64) ([]schema.MetricValueRecord, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make([]schema.MetricValueRecord, len(ms.values[runID]))
	copy(out, ms.values[runID])
	return out, nil
}

// GetStatus returns status information about the mock store.
func (ms *MockResultStore) GetStatus() (schema.StoreStatus, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	status := schema.StoreStatus{
		Backend:    "mock",
		Connected:  true,
		TotalRuns:  len(ms.runs),
		TableSizes: make(map[string]int64),
	}
	if len(ms.runs) > 0 {
		status.LastRunID = ms.runs[len(ms.runs)-1].RunID
		status.LastRunTime = ms.runs[len(ms.runs)-1].StartTime
		status.OldestRunTime = ms.runs[0].StartTime
		for _, r := range ms.runs {
			status.TotalResponses += int(r.TotalResponses)
		}
	}
	status.TableSizes[runsTable] = int64(len(ms.runs))
	var valueCount int64
	for _, v := range ms.values {
		valueCount += int64(len(v))
	}
	status.TableSizes[metricValuesTable] = valueCount
	return status, nil
}

// Close is a no-op for the mock store.
func (ms *MockResultStore) Close() error {
	return nil
}

// MockStoreManager wraps a MockResultStore behind the StoreManager interface.
type MockStoreManager struct {
	Store contract.ResultStore
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetResultStore returns the wrapped store.
func (m *MockStoreManager) GetResultStore() contract.ResultStore {
	return m.Store
}

// errMockFailure is returned by the mock when FailAll is set.
var errMockFailure = &mockError{}

type mockError struct{}

func (*mockError) Error() string { return "mock result store failure" }
