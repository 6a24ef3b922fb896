package analyzers

import (
	"strconv"

	"github.com/JayGreentree/canvas-lms/core/stats"
	"github.com/JayGreentree/canvas-lms/schema"
)

// Grade values recognized by the essay analyzer.
const (
	GradeCorrect   = "correct"
	GradeIncorrect = "incorrect"
	GradePartial   = "partial"
)

// registerEssay declares the essay metric catalog. Essay answers are
// graded by hand, so everything beyond the response counts keys off the
// grades context.
func registerEssay(r *stats.Registry) {
	qt := schema.EssayQuestion

	r.Declare(qt, stats.Simple("responses"), countResponses)
	r.Declare(qt, stats.Simple("missing_answers"), countMissing)

	r.Declare(qt, stats.WithDeps("graded", "grades"), func(_ []schema.Response, deps ...any) (any, error) {
		grades := deps[0].([]string)
		graded := 0
		for _, g := range grades {
			if g != "" {
				graded++
			}
		}
		return graded, nil
	})

	r.Declare(qt, stats.WithDeps("graded_correctly", "grades"), func(_ []schema.Response, deps ...any) (any, error) {
		grades := deps[0].([]string)
		correct := 0
		for _, g := range grades {
			if g == GradeCorrect {
				correct++
			}
		}
		return correct, nil
	})

	r.Declare(qt, stats.WithDeps("full_credit", "points", "max_points"), func(_ []schema.Response, deps ...any) (any, error) {
		points := deps[0].([]float64)
		maxPoints := deps[1].(float64)
		full := 0
		for _, p := range points {
			if p >= maxPoints && maxPoints > 0 {
				full++
			}
		}
		return full, nil
	})

	// Keys are formatted scores rather than raw floats so the report
	// stays JSON-serializable.
	r.Declare(qt, stats.WithDeps("point_distribution", "points"), func(_ []schema.Response, deps ...any) (any, error) {
		points := deps[0].([]float64)
		dist := make(map[string]int, len(points))
		for _, p := range points {
			dist[strconv.FormatFloat(p, 'f', -1, 64)]++
		}
		return dist, nil
	})
}

// buildEssayContext precomputes the grade and point views shared by the
// essay metrics. It runs once per Compute call.
func buildEssayContext(responses []schema.Response) (map[string]any, error) {
	grades := make([]string, 0, len(responses))
	points := make([]float64, 0, len(responses))
	maxPoints := 0.0
	for i := range responses {
		grades = append(grades, responses[i].Grade)
		points = append(points, responses[i].Points)
		if responses[i].Points > maxPoints {
			maxPoints = responses[i].Points
		}
	}
	return map[string]any{
		"grades":     grades,
		"points":     points,
		"max_points": maxPoints,
	}, nil
}
