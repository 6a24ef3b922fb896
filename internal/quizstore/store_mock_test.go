package quizstore

import (
	"testing"
	"time"

	"github.com/JayGreentree/canvas-lms/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockResultStore_Lifecycle(t *testing.T) {
	store := NewMockResultStore()

	start := time.Now()
	runID, err := store.BeginRun(schema.MultipleChoiceQuestion, start, map[string]any{"output": "json"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), runID)

	report := schema.NewReport()
	report.Set("responses", 3)
	report.Set("correct", 2)
	require.NoError(t, store.RecordReport(runID, report))
	require.NoError(t, store.EndRun(runID, start.Add(time.Second), 3))

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int32(3), runs[0].TotalResponses)

	values, err := store.ListMetricValues(runID)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "responses", values[0].MetricKey)
	assert.Equal(t, "3", values[0].ValueJSON)
	assert.Equal(t, int32(1), values[1].Position)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, int64(2), status.TableSizes[metricValuesTable])
}

func TestMockResultStore_FailAll(t *testing.T) {
	store := NewMockResultStore()
	store.FailAll = true

	_, err := store.BeginRun(schema.EssayQuestion, time.Now(), nil)
	assert.Error(t, err)
	assert.Error(t, store.EndRun(1, time.Now(), 0))
	assert.Error(t, store.RecordReport(1, schema.NewReport()))
}

func TestMockResultStore_EndRunUnknownID(t *testing.T) {
	store := NewMockResultStore()
	assert.Error(t, store.EndRun(99, time.Now(), 0))
}

func TestMockStoreManager(t *testing.T) {
	store := NewMockResultStore()
	mgr := &MockStoreManager{Store: store}
	assert.Equal(t, store, mgr.GetResultStore())
}
