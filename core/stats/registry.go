// Package stats implements the declarative metric registry for quiz
// statistics: analyzers declare named calculators per question type,
// optionally inherit another type's calculators, and the engine runs
// them against a response batch to produce an ordered report.
package stats

import (
	"fmt"

	"github.com/JayGreentree/canvas-lms/schema"
)

// Registry maps a question type to the ordered sequence of metrics
// declared for it. Sequences are lazily created and append-only.
//
// A registry is populated during a declaration phase (analyzer setup)
// and read during the execution phase. Declaration is not synchronized;
// it must finish before Compute runs. Once declaration is done, any
// number of Compute calls may run concurrently.
type Registry struct {
	metrics map[schema.QuestionType][]Metric
}

// NewRegistry creates an empty metric registry.
func NewRegistry() *Registry {
	return &Registry{metrics: make(map[schema.QuestionType][]Metric)}
}

// Declare registers a calculator for questionType under spec.Key,
// appending it after any metrics already declared for that type.
//
// Neither key uniqueness nor dependency resolvability is checked here;
// an unresolvable dependency only surfaces as a MissingContextError
// when Compute runs. Declaring the same key twice is legal: both
// calculators run, and the later one's value wins the report slot.
func (r *Registry) Declare(questionType schema.QuestionType, spec MetricSpec, calc Calculator) {
	r.metrics[questionType] = append(r.metrics[questionType], Metric{
		Key:         spec.Key,
		ContextDeps: spec.Deps,
		Calculator:  calc,
	})
}

// Inherit copies every metric currently registered for source onto the
// end of target's sequence. This is a point-in-time snapshot: metrics
// declared for source after this call do not appear under target. The
// copies keep their relative order from source.
func (r *Registry) Inherit(target, source schema.QuestionType) {
	if _, ok := r.metrics[source]; !ok {
		r.metrics[source] = []Metric{}
	}
	for _, m := range r.metrics[source] {
		r.metrics[target] = append(r.metrics[target], m.clone())
	}
}

// MetricsFor returns a copy of the metric sequence registered for
// questionType, in declaration order. Unregistered types yield an
// empty sequence. Each entry is a deep copy, so mutating a returned
// metric's ContextDeps cannot corrupt the registry.
func (r *Registry) MetricsFor(questionType schema.QuestionType) []Metric {
	src := r.metrics[questionType]
	out := make([]Metric, len(src))
	for i, m := range src {
		out[i] = m.clone()
	}
	return out
}

// QuestionTypes returns all question types with at least one registered
// metric, in no particular order.
func (r *Registry) QuestionTypes() []schema.QuestionType {
	out := make([]schema.QuestionType, 0, len(r.metrics))
	for qt := range r.metrics {
		out = append(out, qt)
	}
	return out
}

// CheckUnique reports an error if two metrics registered for
// questionType share a key. Compute never calls this; duplicate keys
// are legal and resolve last-write-wins. It exists for analyzer authors
// who want to assert uniqueness up front.
func (r *Registry) CheckUnique(questionType schema.QuestionType) error {
	seen := make(map[string]struct{})
	for _, m := range r.metrics[questionType] {
		if _, dup := seen[m.Key]; dup {
			return fmt.Errorf("duplicate metric key %q for question type %q", m.Key, questionType)
		}
		seen[m.Key] = struct{}{}
	}
	return nil
}
