package difficulty

import (
	"github.com/tutorbase/timo/internal/ability"
	"github.com/tutorbase/timo/internal/mastery"
	"github.com/tutorbase/timo/internal/progress"
	"github.com/tutorbase/timo/internal/rating"
)

const (
	// lessonQuestionCount approximates how many questions a lesson
	// holds, used to scale lesson-level response time down to a
	// per-attempt figure for the rating update.
	lessonQuestionCount = 10

	// correctEquivalentAccuracy is the lesson accuracy at or above
	// which the lesson counts as a "correct" aggregate attempt for the
	// estimators.
	correctEquivalentAccuracy = 0.5
)

// SignalsAfterLesson folds a completed lesson into the subject's model
// signals: one Elo update against the tier's benchmark rating, one BKT
// mastery update, and one IRT ability step. Like the tier decision it is
// pure; the caller persists the returned signals into the progress
// record. Rejects non-completed lessons with ErrLessonNotCompleted.
func (e *Engine) SignalsAfterLesson(p *progress.LearningProgress, lesson *progress.Lesson) (progress.ModelSignals, error) {
	if err := validateCompleted(lesson); err != nil {
		return progress.ModelSignals{}, err
	}

	prior, ok := p.SignalsFor(lesson.Subject)
	if !ok {
		prior = progress.ModelSignals{
			Rating:  rating.DefaultRating,
			Mastery: mastery.DefaultPrior,
			Ability: 0,
		}
	}

	tier := e.cfg.DefaultTier
	if rec := p.LatestRecordFor(lesson.Subject); rec != nil {
		tier = rec.ResultingTier
	}

	correct := lesson.Accuracy >= correctEquivalentAccuracy
	perAttemptSecs := lesson.ResponseTimeSecs / lessonQuestionCount

	return progress.ModelSignals{
		Rating:   rating.UpdateRating(prior.Rating, rating.BenchmarkRating(tier), correct, perAttemptSecs),
		Mastery:  mastery.Update(prior.Mastery, correct, mastery.DefaultParams()),
		Ability:  ability.Update(prior.Ability, TierItemParams(tier), correct),
		Attempts: prior.Attempts + 1,
	}, nil
}

// TierItemParams returns the nominal IRT parameters of a lesson at the
// given tier, spacing tier difficulties evenly across the ability scale.
func TierItemParams(t progress.Tier) ability.ItemParams {
	p := ability.DefaultItemParams()
	switch t {
	case progress.TierEasy:
		p.Difficulty = -1.5
	case progress.TierMedium:
		p.Difficulty = -0.5
	case progress.TierHard:
		p.Difficulty = 0.5
	default:
		p.Difficulty = 1.5
	}
	return p
}
