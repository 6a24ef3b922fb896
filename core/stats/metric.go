package stats

import "github.com/JayGreentree/canvas-lms/schema"

// Calculator computes one metric's value from a response batch. The
// variadic deps carry the resolved context values, in the order the
// metric declared them. A calculator that declares no dependencies is
// invoked with an empty deps slice.
type Calculator func(responses []schema.Response, deps ...any) (any, error)

// ContextBuilder precomputes shared values for one Compute call. It runs
// once per call and its result is reused by every metric in that call.
type ContextBuilder func(responses []schema.Response) (map[string]any, error)

// Metric is an immutable record describing one registered calculator:
// the key its value is reported under, the named context values it
// requires, and the calculator itself.
type Metric struct {
	Key         string
	ContextDeps []string
	Calculator  Calculator
}

// clone returns a value copy of the metric with its own ContextDeps
// slice, so inherited entries do not alias the source's backing array.
func (m Metric) clone() Metric {
	out := m
	if m.ContextDeps != nil {
		out.ContextDeps = make([]string, len(m.ContextDeps))
		copy(out.ContextDeps, m.ContextDeps)
	}
	return out
}

// MetricSpec names a metric and the context dependencies it requires.
// Build one with Simple or WithDeps; the zero value declares an
// unnamed metric with no dependencies.
type MetricSpec struct {
	Key  string
	Deps []string
}

// Simple declares a metric with no context dependencies.
func Simple(key string) MetricSpec {
	return MetricSpec{Key: key}
}

// WithDeps declares a metric that requires the named context values,
// passed to the calculator in the given order.
func WithDeps(key string, deps ...string) MetricSpec {
	return MetricSpec{Key: key, Deps: deps}
}
