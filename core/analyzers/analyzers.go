// Package analyzers declares the built-in metric catalogs for each
// supported question type and the context builders they rely on.
package analyzers

import (
	"github.com/JayGreentree/canvas-lms/core/stats"
	"github.com/JayGreentree/canvas-lms/schema"
)

// registerFunc declares one question type's metrics on a registry.
type registerFunc func(r *stats.Registry)

// builtins maps each supported question type to its registration
// function and context builder. Registration order within a type is the
// order metrics appear in reports.
var builtins = []struct {
	questionType schema.QuestionType
	register     registerFunc
	builder      stats.ContextBuilder
}{
	{schema.EssayQuestion, registerEssay, buildEssayContext},
	{schema.MultipleChoiceQuestion, registerMultipleChoice, buildMultipleChoiceContext},
	{schema.ShortAnswerQuestion, registerShortAnswer, buildMultipleChoiceContext},
	{schema.FillInMultipleBlanksQuestion, registerFillInMultipleBlanks, buildBlanksContext},
	{schema.NumericalQuestion, registerNumerical, buildNumericalContext},
}

// NewRegistry returns a registry preloaded with every built-in analyzer.
//
// Registration runs strictly in the order listed in builtins, so types
// that inherit from another (short answer inherits multiple choice) see
// a stable snapshot of their source.
func NewRegistry() *stats.Registry {
	r := stats.NewRegistry()
	for _, b := range builtins {
		b.register(r)
	}
	return r
}

// BuilderFor returns the context builder for a question type, or nil
// when the type has no built-in builder. A nil builder is valid: the
// engine treats the context as empty.
func BuilderFor(questionType schema.QuestionType) stats.ContextBuilder {
	for _, b := range builtins {
		if b.questionType == questionType {
			return b.builder
		}
	}
	return nil
}

// countResponses is the metric shared by every built-in analyzer.
func countResponses(responses []schema.Response, _ ...any) (any, error) {
	return len(responses), nil
}

// countMissing counts responses with no answer of any kind.
func countMissing(responses []schema.Response, _ ...any) (any, error) {
	missing := 0
	for i := range responses {
		if !responses[i].Answered() {
			missing++
		}
	}
	return missing, nil
}
