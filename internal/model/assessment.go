package model

import "time"

// Question is a fixed multiple-choice question from one of the level banks.
// Questions are never persisted individually; only the selected per-session
// set is stored under the assessment_questions key.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// StudentQuestion is the answer-free view served to the client while the
// assessment is in progress.
type StudentQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// AssessmentAnswer records the outcome for a single question, in question
// order. SelectedOption is nil when the question went unanswered, which
// counts as incorrect.
type AssessmentAnswer struct {
	Question       string `json:"question"`
	SelectedOption *int   `json:"selectedOption"`
	CorrectOption  int    `json:"correctOption"`
	IsCorrect      bool   `json:"isCorrect"`
	Explanation    string `json:"explanation"`
}

// AssessmentResults is created once per submission and fully replaces any
// prior results. Score is correct/total*100.
type AssessmentResults struct {
	Answers       []AssessmentAnswer `json:"answers"`
	Score         float64            `json:"score"`
	OriginalLevel Level              `json:"originalLevel"`
	AdjustedLevel Level              `json:"adjustedLevel"`
	Timestamp     time.Time          `json:"timestamp"`
}

// CorrectCount returns the number of correctly answered questions.
func (r AssessmentResults) CorrectCount() int {
	n := 0
	for _, a := range r.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}
