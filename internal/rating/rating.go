// Package rating implements an Elo-style skill rating for students and
// questions. A student and the question they attempt are treated as two
// players; a correct answer is a win for the student.
package rating

import (
	"math"

	"github.com/tutorbase/timo/internal/progress"
)

const (
	// MinRating and MaxRating bound the Elo scale.
	MinRating = 400.0
	MaxRating = 2400.0

	// DefaultRating is the placement rating for new students and the
	// default rating for questions ingested without one.
	DefaultRating = 1200.0

	// DefaultKFactor is the base sensitivity of a single update.
	DefaultKFactor = 32.0

	// speedRefSecs is the response time at which the speed factor hits
	// zero. Answers at or beyond 2x this reference count as fully slow.
	speedRefSecs = 60.0
)

// Tier thresholds. The mapping is monotonic non-decreasing in rating.
const (
	easyCeiling   = 1100.0
	mediumCeiling = 1300.0
	hardCeiling   = 1500.0
)

// ExpectedScore returns the probability that a player at rating a beats
// an opponent at rating b under the Elo model.
func ExpectedScore(a, b float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (b-a)/400.0))
}

// UpdateRating applies one attempt outcome to the current rating using
// the default K-factor. The opponent is the attempted question's rating.
// Response time modulates the adjustment: fast correct answers gain more
// than slow ones, slow incorrect answers lose more than fast ones. The
// result is clamped to [MinRating, MaxRating].
func UpdateRating(current, opponent float64, correct bool, responseTimeSecs float64) float64 {
	return UpdateRatingK(current, opponent, correct, responseTimeSecs, DefaultKFactor)
}

// UpdateRatingK is UpdateRating with an explicit K-factor.
func UpdateRatingK(current, opponent float64, correct bool, responseTimeSecs, kFactor float64) float64 {
	current = clamp(current, MinRating, MaxRating)
	opponent = clamp(opponent, MinRating, MaxRating)

	expected := ExpectedScore(current, opponent)
	actual := 0.0
	if correct {
		actual = 1.0
	}

	k := kFactor * speedMultiplier(correct, responseTimeSecs)
	return clamp(current+k*(actual-expected), MinRating, MaxRating)
}

// speedMultiplier scales K between 0.75 and 1.25 based on response time.
// For correct answers the multiplier falls with time; for incorrect
// answers it rises, so slow mistakes cost more than quick ones.
func speedMultiplier(correct bool, responseTimeSecs float64) float64 {
	speed := clamp(1.0-responseTimeSecs/(2.0*speedRefSecs), 0, 1)
	if correct {
		return 0.75 + 0.5*speed
	}
	return 1.25 - 0.5*speed
}

// TierFor maps a rating onto a difficulty tier using fixed,
// non-overlapping thresholds.
func TierFor(r float64) progress.Tier {
	switch {
	case r <= easyCeiling:
		return progress.TierEasy
	case r <= mediumCeiling:
		return progress.TierMedium
	case r <= hardCeiling:
		return progress.TierHard
	default:
		return progress.TierOlympiad
	}
}

// BenchmarkRating returns the rating a typical question at the given
// tier carries, used as the opponent rating when only a tier is known.
func BenchmarkRating(t progress.Tier) float64 {
	switch t {
	case progress.TierEasy:
		return 1000
	case progress.TierMedium:
		return 1200
	case progress.TierHard:
		return 1400
	default:
		return 1600
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
