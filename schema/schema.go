// Package schema has configs, models and shared constants for all parts of quizstats.
package schema

// Response represents a single student's answer to one quiz question.
// Only the fields relevant to the question type being analyzed are
// expected to be populated; analyzers ignore the rest.
type Response struct {
	UserID   string            `json:"user_id,omitempty"`   // Identifier of the respondent
	Text     string            `json:"text"`                // Free-form answer text (essay, short answer)
	Grade    string            `json:"grade,omitempty"`     // Manual grading outcome: "correct", "incorrect", ...
	AnswerID string            `json:"answer_id,omitempty"` // Chosen answer identifier (multiple choice)
	Points   float64           `json:"points,omitempty"`    // Points awarded by the grader
	Correct  *bool             `json:"correct,omitempty"`   // Auto-grading outcome, nil when ungraded
	Blanks   map[string]string `json:"blanks,omitempty"`    // Blank ID to entered text (fill in multiple blanks)
	Value    *float64          `json:"value,omitempty"`     // Numeric answer, nil when not parseable
}

// Answered reports whether the response contains any answer at all.
// A response with no text, no chosen answer, no blanks and no numeric
// value counts as missing.
func (r *Response) Answered() bool {
	if r.Text != "" || r.AnswerID != "" || r.Value != nil {
		return true
	}
	for _, v := range r.Blanks {
		if v != "" {
			return true
		}
	}
	return false
}
