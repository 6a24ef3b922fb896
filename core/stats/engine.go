package stats

import (
	"fmt"

	"github.com/JayGreentree/canvas-lms/schema"
)

// MissingContextError reports a metric whose declared dependency was
// absent from the built context map. The miss is never silently
// defaulted; it aborts the Compute call that hit it.
type MissingContextError struct {
	MetricKey  string
	Dependency string
}

// Error implements the error interface.
func (e *MissingContextError) Error() string {
	return fmt.Sprintf("metric %q requires context value %q which was not built", e.MetricKey, e.Dependency)
}

// Compute runs every metric registered for questionType against the
// response batch and assembles the ordered report.
//
// If buildContext is non-nil it runs exactly once, before any metric;
// its map is shared by all metrics in this call. Calculators run in
// declaration order, each receiving the responses plus its resolved
// dependency values in declared order.
//
// Any error from the context builder or a calculator propagates to the
// caller unmodified and aborts the run; there is no partial report. A
// failed Compute leaves the registry untouched, so later independent
// calls are unaffected.
func (r *Registry) Compute(questionType schema.QuestionType, responses []schema.Response, buildContext ContextBuilder) (*schema.Report, error) {
	contextMap := map[string]any{}
	if buildContext != nil {
		built, err := buildContext(responses)
		if err != nil {
			return nil, err
		}
		if built != nil {
			contextMap = built
		}
	}

	report := schema.NewReport()
	for _, m := range r.metrics[questionType] {
		deps := make([]any, 0, len(m.ContextDeps))
		for _, name := range m.ContextDeps {
			value, ok := contextMap[name]
			if !ok {
				return nil, &MissingContextError{MetricKey: m.Key, Dependency: name}
			}
			deps = append(deps, value)
		}

		value, err := m.Calculator(responses, deps...)
		if err != nil {
			return nil, err
		}
		report.Set(m.Key, value)
	}

	return report, nil
}
