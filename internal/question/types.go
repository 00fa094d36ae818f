// Package question holds the question model and its ingestion path:
// JSON validation of incoming question payloads and deterministic
// default psychometric parameters for questions that arrive without
// calibrated ones.
package question

import (
	"github.com/tutorbase/timo/internal/ability"
	"github.com/tutorbase/timo/internal/mastery"
	"github.com/tutorbase/timo/internal/progress"
)

// Format describes how the student answers a question.
type Format string

const (
	FormatMultipleChoice Format = "multiple-choice"
	FormatOpenEnded      Format = "open-ended"
)

// Params bundles the per-question parameters consumed by the three
// estimators.
type Params struct {
	EloRating float64            `json:"elo_rating"`
	BKT       mastery.Params     `json:"bkt"`
	IRT       ability.ItemParams `json:"irt"`
}

// Question is one practice question with its psychometric parameters.
type Question struct {
	ID      string           `json:"id"`
	Subject progress.Subject `json:"subject"`
	Tier    progress.Tier    `json:"tier"`
	Format  Format           `json:"format"`
	Text    string           `json:"text"`
	Answer  string           `json:"answer"`
	Params  Params           `json:"params"`
}
