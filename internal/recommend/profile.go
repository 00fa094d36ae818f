// Package recommend ranks candidate questions for a student and predicts
// how hard a question will feel, built on the estimator outputs. The
// difficulty engine neither calls nor depends on this package; it is an
// independent consumer of the same signals.
package recommend

import (
	"github.com/tutorbase/timo/internal/progress"
	"github.com/tutorbase/timo/internal/rating"
)

// StudentProfile is the fixed-shape feature set describing a student for
// recommendation. Every field is named and typed; collaborators never
// exchange loose feature dictionaries.
type StudentProfile struct {
	StudentID        string
	Ability          float64
	Rating           float64
	MasteryBySubject map[progress.Subject]float64
	WeakSubjects     map[progress.Subject]bool
}

// weakScoreThreshold marks a subject weak for profile purposes.
const weakScoreThreshold = 0.5

// ProfileFrom builds a student profile from a learning-progress record.
// Ability and rating are averaged across subjects with signals; a
// student with no history gets neutral placement values.
func ProfileFrom(p *progress.LearningProgress) StudentProfile {
	prof := StudentProfile{
		StudentID:        p.StudentID,
		Rating:           rating.DefaultRating,
		MasteryBySubject: make(map[progress.Subject]float64),
		WeakSubjects:     make(map[progress.Subject]bool),
	}

	var ratingSum, abilitySum float64
	var n int
	for _, s := range progress.AllSubjects() {
		sig, ok := p.SignalsFor(s)
		if !ok {
			continue
		}
		prof.MasteryBySubject[s] = sig.Mastery
		ratingSum += sig.Rating
		abilitySum += sig.Ability
		n++
	}
	if n > 0 {
		prof.Rating = ratingSum / float64(n)
		prof.Ability = abilitySum / float64(n)
	}

	for _, s := range p.WeakSubjects(weakScoreThreshold) {
		prof.WeakSubjects[s] = true
	}
	return prof
}
