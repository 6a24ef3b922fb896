package analyzers

import (
	"math"

	"github.com/JayGreentree/canvas-lms/core/stats"
	"github.com/JayGreentree/canvas-lms/schema"
)

// registerNumerical declares the numerical question metric catalog.
// The mean and stddev metrics only consider responses that parsed to a
// number; unparseable answers still count toward responses and
// missing_answers.
func registerNumerical(r *stats.Registry) {
	qt := schema.NumericalQuestion

	r.Declare(qt, stats.Simple("responses"), countResponses)
	r.Declare(qt, stats.Simple("missing_answers"), countMissing)

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

	r.Declare(qt, stats.WithDeps("mean", "values"), func(_ []schema.Response, deps ...any) (any, error) {
		values := deps[0].([]float64)
		return mean(values), nil
	})

	r.Declare(qt, stats.WithDeps("stddev", "values"), func(_ []schema.Response, deps ...any) (any, error) {
		values := deps[0].([]float64)
		if len(values) == 0 {
			return 0.0, nil
		}
		m := mean(values)
		sum := 0.0
		for _, v := range values {
			sum += (v - m) * (v - m)
		}
		return math.Sqrt(sum / float64(len(values))), nil
	})
}

// mean returns the arithmetic mean, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// buildNumericalContext collects the parsed numeric answers.
func buildNumericalContext(responses []schema.Response) (map[string]any, error) {
	values := make([]float64, 0, len(responses))
	for i := range responses {
		if responses[i].Value != nil {
			values = append(values, *responses[i].Value)
		}
	}
	return map[string]any{"values": values}, nil
}
