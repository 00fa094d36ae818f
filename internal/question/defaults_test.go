package question

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutorbase/timo/internal/progress"
)

func TestDefaultParamsDeterministic(t *testing.T) {
	a := DefaultParamsFor("q-123", progress.TierHard)
	b := DefaultParamsFor("q-123", progress.TierHard)
	assert.Equal(t, a, b, "same question ID must always yield the same defaults")

	c := DefaultParamsFor("q-456", progress.TierHard)
	assert.NotEqual(t, a, c, "different question IDs should not collapse onto one point")
}

func TestDefaultParamsStayInBuckets(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	for _, tier := range progress.AllTiers() {
		for _, id := range ids {
			p := DefaultParamsFor(id, tier)

			assert.NoError(t, ValidateParams(p), "tier %s id %s", tier, id)
			assert.InDelta(t, tierCenterDifficulty(tier), p.IRT.Difficulty, irtDiffSpread)
			assert.GreaterOrEqual(t, p.IRT.Discrimination, discriminationLo)
			assert.LessOrEqual(t, p.IRT.Discrimination, discriminationHi)
			assert.GreaterOrEqual(t, p.BKT.PLearn, pLearnLo)
			assert.LessOrEqual(t, p.BKT.PLearn, pLearnHi)
		}
	}
}

func TestDefaultEloTracksTier(t *testing.T) {
	// Tier centers are 200 apart and the jitter is 75, so bucket order
	// must survive the draw.
	easy := DefaultParamsFor("q", progress.TierEasy)
	olympiad := DefaultParamsFor("q", progress.TierOlympiad)
	assert.Less(t, easy.EloRating, olympiad.EloRating)
}
