package stats

import (
	"errors"
	"testing"

	"github.com/JayGreentree/canvas-lms/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testType schema.QuestionType = "test_question"

func TestCompute_NoDependencies(t *testing.T) {
	r := NewRegistry()
	r.Declare(testType, Simple("responses"), func(responses []schema.Response, deps ...any) (any, error) {
		assert.Empty(t, deps, "a metric with no declared deps should receive none")
		return len(responses), nil
	})

	report, err := r.Compute(testType, make([]schema.Response, 3), nil)
	require.NoError(t, err)

	value, ok := report.Get("responses")
	require.True(t, ok)
	assert.Equal(t, 3, value)
}

func TestCompute_DependencyOrder(t *testing.T) {
	r := NewRegistry()
	r.Declare(testType, WithDeps("ordered", "a", "b"), func(_ []schema.Response, deps ...any) (any, error) {
		require.Len(t, deps, 2)
		assert.Equal(t, 1, deps[0], "first dep should be the value for 'a'")
		assert.Equal(t, 2, deps[1], "second dep should be the value for 'b'")
		return deps[0].(int) + deps[1].(int), nil
	})

	builder := func(_ []schema.Response) (map[string]any, error) {
		return map[string]any{"b": 2, "a": 1}, nil
	}

	report, err := r.Compute(testType, nil, builder)
	require.NoError(t, err)

	value, _ := report.Get("ordered")
	assert.Equal(t, 3, value)
}

func TestCompute_MissingDependencyAborts(t *testing.T) {
	r := NewRegistry()
	calculatorRan := false
	r.Declare(testType, WithDeps("needy", "absent"), func(_ []schema.Response, _ ...any) (any, error) {
		calculatorRan = true
		return nil, nil
	})

	report, err := r.Compute(testType, nil, func(_ []schema.Response) (map[string]any, error) {
		return map[string]any{"present": true}, nil
	})

	require.Error(t, err)
	assert.Nil(t, report, "a failed run should yield no partial report")
	assert.False(t, calculatorRan, "the calculator must not run when its dep is missing")

	var missing *MissingContextError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "needy", missing.MetricKey)
	assert.Equal(t, "absent", missing.Dependency)
	assert.Contains(t, missing.Error(), `"absent"`)
}

func TestCompute_CalculatorErrorPassesThrough(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Declare(testType, Simple("first"), func(_ []schema.Response, _ ...any) (any, error) {
		return 1, nil
	})
	r.Declare(testType, Simple("failing"), func(_ []schema.Response, _ ...any) (any, error) {
		return nil, boom
	})
	r.Declare(testType, Simple("never"), func(_ []schema.Response, _ ...any) (any, error) {
		t.Fatal("metrics after a failure must not run")
		return nil, nil
	})

	report, err := r.Compute(testType, nil, nil)
	assert.Nil(t, report)
	assert.Same(t, boom, err, "calculator errors propagate unwrapped")
}

func TestCompute_ContextBuilderError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("bad context")
	r.Declare(testType, Simple("metric"), func(_ []schema.Response, _ ...any) (any, error) {
		t.Fatal("no metric should run when the context builder fails")
		return nil, nil
	})

	report, err := r.Compute(testType, nil, func(_ []schema.Response) (map[string]any, error) {
		return nil, boom
	})
	assert.Nil(t, report)
	assert.Same(t, boom, err)
}

func TestCompute_ContextBuiltOnce(t *testing.T) {
	r := NewRegistry()
	builds := 0
	for _, key := range []string{"m1", "m2", "m3"} {
		r.Declare(testType, WithDeps(key, "shared"), func(_ []schema.Response, deps ...any) (any, error) {
			return deps[0], nil
		})
	}

	_, err := r.Compute(testType, nil, func(_ []schema.Response) (map[string]any, error) {
		builds++
		return map[string]any{"shared": "value"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, builds, "the context builder runs once per Compute call")
}

func TestCompute_NilBuilderMeansEmptyContext(t *testing.T) {
	r := NewRegistry()
	r.Declare(testType, WithDeps("needy", "anything"), func(_ []schema.Response, _ ...any) (any, error) {
		return nil, nil
	})

	_, err := r.Compute(testType, nil, nil)
	var missing *MissingContextError
	require.True(t, errors.As(err, &missing))
}

func TestCompute_UnregisteredTypeYieldsEmptyReport(t *testing.T) {
	r := NewRegistry()

	report, err := r.Compute("unknown_question", nil, nil)
	require.NoError(t, err)
	assert.Zero(t, report.Len())
}

func TestCompute_DuplicateKeysLastWriteWins(t *testing.T) {
	r := NewRegistry()
	firstRan := false
	r.Declare(testType, Simple("winner"), func(_ []schema.Response, _ ...any) (any, error) {
		firstRan = true
		return "first", nil
	})
	r.Declare(testType, Simple("winner"), func(_ []schema.Response, _ ...any) (any, error) {
		return "second", nil
	})

	report, err := r.Compute(testType, nil, nil)
	require.NoError(t, err)

	assert.True(t, firstRan, "both calculators run even when keys collide")
	value, _ := report.Get("winner")
	assert.Equal(t, "second", value)
	assert.Equal(t, 1, report.Len())
}

// TestCompute_EssayEndToEnd mirrors the kind of catalog an analyzer
// author would declare by hand: a grades view built once, consumed by
// two metrics keyed off different grade states.
func TestCompute_EssayEndToEnd(t *testing.T) {
	r := NewRegistry()
	qt := schema.EssayQuestion

	r.Declare(qt, Simple("missing_answers"), func(responses []schema.Response, _ ...any) (any, error) {
		missing := 0
		for i := range responses {
			if !responses[i].Answered() {
				missing++
			}
		}
		return missing, nil
	})
	r.Declare(qt, WithDeps("graded_correctly", "grades"), func(_ []schema.Response, deps ...any) (any, error) {
		correct := 0
		for _, g := range deps[0].([]string) {
			if g == "correct" {
				correct++
			}
		}
		return correct, nil
	})

	responses := []schema.Response{
		{UserID: "1", Text: "An answer.", Grade: "correct"},
		{UserID: "2", Text: "Another answer.", Grade: "incorrect"},
		{UserID: "3"},
	}

	report, err := r.Compute(qt, responses, func(responses []schema.Response) (map[string]any, error) {
		grades := make([]string, 0, len(responses))
		for i := range responses {
			grades = append(grades, responses[i].Grade)
		}
		return map[string]any{"grades": grades}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"missing_answers", "graded_correctly"}, report.Keys())
	missingAnswers, _ := report.Get("missing_answers")
	gradedCorrectly, _ := report.Get("graded_correctly")
	assert.Equal(t, 1, missingAnswers)
	assert.Equal(t, 1, gradedCorrectly)
}
