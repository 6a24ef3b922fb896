package analyzers

import (
	"github.com/JayGreentree/canvas-lms/core/stats"
	"github.com/JayGreentree/canvas-lms/schema"
)

// registerMultipleChoice declares the multiple choice metric catalog.
func registerMultipleChoice(r *stats.Registry) {
	declareChoiceMetrics(r, schema.MultipleChoiceQuestion)
}

// registerShortAnswer reuses the multiple choice catalog via a
// point-in-time snapshot, then adds the short-answer-only metric.
func registerShortAnswer(r *stats.Registry) {
	r.Inherit(schema.ShortAnswerQuestion, schema.MultipleChoiceQuestion)

	r.Declare(schema.ShortAnswerQuestion, stats.Simple("exact_match_rate"), func(responses []schema.Response, _ ...any) (any, error) {
		if len(responses) == 0 {
			return 0.0, nil
		}
		matches := 0
		for i := range responses {
			if responses[i].Correct != nil && *responses[i].Correct {
				matches++
			}
		}
		return float64(matches) / float64(len(responses)), nil
	})
}

// declareChoiceMetrics declares the metrics shared by answer-picking
// question types against the given type.
func declareChoiceMetrics(r *stats.Registry, qt schema.QuestionType) {
	r.Declare(qt, stats.Simple("responses"), countResponses)
	r.Declare(qt, stats.Simple("missing_answers"), countMissing)

	r.Declare(qt, stats.WithDeps("answer_counts", "picks"), func(_ []schema.Response, deps ...any) (any, error) {
		picks := deps[0].([]string)
		counts := make(map[string]int, len(picks))
		for _, id := range picks {
			if id != "" {
				counts[id]++
			}
		}
		return counts, nil
	})

	r.Declare(qt, stats.Simple("correct"), func(responses []schema.Response, _ ...any) (any, error) {
		correct := 0
		for i := range responses {
			if responses[i].Correct != nil && *responses[i].Correct {
				correct++
			}
		}
		return correct, nil
	})

	r.Declare(qt, stats.Simple("incorrect"), func(responses []schema.Response, _ ...any) (any, error) {
		incorrect := 0
		for i := range responses {
			if responses[i].Correct != nil && !*responses[i].Correct {
				incorrect++
			}
		}
		return incorrect, nil
	})
}

// buildMultipleChoiceContext extracts the chosen answer IDs. It also
// serves short answer, which inherits the multiple choice catalog.
func buildMultipleChoiceContext(responses []schema.Response) (map[string]any, error) {
	picks := make([]string, 0, len(responses))
	for i := range responses {
		picks = append(picks, responses[i].AnswerID)
	}
	return map[string]any{"picks": picks}, nil
}
