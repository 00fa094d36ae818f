package question

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/tutorbase/timo/internal/ability"
	"github.com/tutorbase/timo/internal/mastery"
	"github.com/tutorbase/timo/internal/progress"
	"github.com/tutorbase/timo/internal/rating"
)

// Per-tier default parameter buckets. Values are drawn around the tier's
// center so questions at a tier don't all collapse onto one point, but
// the draw is seeded from the question ID: the same question always gets
// the same defaults.
const (
	eloSpread        = 75.0
	irtDiffSpread    = 0.25
	discriminationLo = 0.8
	discriminationHi = 1.2
	pLearnLo         = 0.3
	pLearnHi         = 0.5
)

// DefaultParamsFor returns deterministic default parameters for a
// question at the given tier, keyed by the question's ID.
func DefaultParamsFor(questionID string, tier progress.Tier) Params {
	rng := seededRand(questionID)

	p := Params{
		EloRating: rating.BenchmarkRating(tier) + jitter(rng, eloSpread),
		BKT:       mastery.DefaultParams(),
		IRT:       ability.DefaultItemParams(),
	}
	p.BKT.PLearn = pLearnLo + rng.Float64()*(pLearnHi-pLearnLo)
	p.IRT.Discrimination = discriminationLo + rng.Float64()*(discriminationHi-discriminationLo)
	p.IRT.Difficulty = tierCenterDifficulty(tier) + jitter(rng, irtDiffSpread)
	return p
}

func tierCenterDifficulty(tier progress.Tier) float64 {
	switch tier {
	case progress.TierEasy:
		return -1.5
	case progress.TierMedium:
		return -0.5
	case progress.TierHard:
		return 0.5
	default:
		return 1.5
	}
}

// jitter returns a uniform draw in [-spread, +spread].
func jitter(rng *rand.Rand, spread float64) float64 {
	return (rng.Float64()*2 - 1) * spread
}

// seededRand builds a PCG source keyed off the question ID.
func seededRand(questionID string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(questionID))
	seed := h.Sum64()
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
