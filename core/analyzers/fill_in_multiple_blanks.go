package analyzers

import (
	"github.com/JayGreentree/canvas-lms/core/stats"
	"github.com/JayGreentree/canvas-lms/schema"
)

// registerFillInMultipleBlanks declares the metric catalog for questions
// with several independent blanks. A response is correct when every
// blank was answered correctly and partial when only some were; the
// grader records that outcome in the Grade field.
func registerFillInMultipleBlanks(r *stats.Registry) {
	qt := schema.FillInMultipleBlanksQuestion

	r.Declare(qt, stats.Simple("responses"), countResponses)
	r.Declare(qt, stats.Simple("missing_answers"), countMissing)

	r.Declare(qt, stats.WithDeps("blank_counts", "blanks"), func(_ []schema.Response, deps ...any) (any, error) {
		blanks := deps[0].([]map[string]string)
		counts := make(map[string]int)
		for _, b := range blanks {
			for id, entered := range b {
				if entered != "" {
					counts[id]++
				}
			}
		}
		return counts, nil
	})

	r.Declare(qt, stats.WithDeps("correct", "grades"), func(_ []schema.Response, deps ...any) (any, error) {
		return countGrade(deps[0].([]string), GradeCorrect), nil
	})

	r.Declare(qt, stats.WithDeps("partially_correct", "grades"), func(_ []schema.Response, deps ...any) (any, error) {
		return countGrade(deps[0].([]string), GradePartial), nil
	})

	r.Declare(qt, stats.WithDeps("incorrect", "grades"), func(_ []schema.Response, deps ...any) (any, error) {
		return countGrade(deps[0].([]string), GradeIncorrect), nil
	})
}

// countGrade counts grades matching want.
func countGrade(grades []string, want string) int {
	n := 0
	for _, g := range grades {
		if g == want {
			n++
		}
	}
	return n
}

// buildBlanksContext aligns each response's blank map by index and
// collects the per-response grading outcomes.
func buildBlanksContext(responses []schema.Response) (map[string]any, error) {
	blanks := make([]map[string]string, 0, len(responses))
	grades := make([]string, 0, len(responses))
	for i := range responses {
		if responses[i].Blanks == nil {
			blanks = append(blanks, map[string]string{})
		} else {
			blanks = append(blanks, responses[i].Blanks)
		}
		grades = append(grades, responses[i].Grade)
	}
	return map[string]any{
		"blanks": blanks,
		"grades": grades,
	}, nil
}
