package recommend

import (
	"math"
	"sort"

	"github.com/tutorbase/timo/internal/ability"
	"github.com/tutorbase/timo/internal/progress"
	"github.com/tutorbase/timo/internal/question"
)

const (
	// TargetSuccessProbability is the sweet spot for practice: hard
	// enough to stretch, easy enough to stay motivating.
	TargetSuccessProbability = 0.7

	// weakSubjectBoost nudges weak-subject questions up the ranking.
	weakSubjectBoost = 0.15
)

// RecommendQuestions orders candidates by fit for the student and
// returns up to count of them. Fit is closeness of the predicted success
// probability to the target, with a boost for weak subjects. Ties break
// on question ID so rankings are stable.
func RecommendQuestions(profile StudentProfile, candidates []question.Question, count int) []question.Question {
	type scored struct {
		q     question.Question
		score float64
	}

	ranked := make([]scored, 0, len(candidates))
	for _, q := range candidates {
		p := ability.ProbabilityCorrect(profile.Ability, q.Params.IRT)
		score := 1.0 - math.Abs(p-TargetSuccessProbability)
		if profile.WeakSubjects[q.Subject] {
			score += weakSubjectBoost
		}
		ranked = append(ranked, scored{q: q, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].q.ID < ranked[j].q.ID
	})

	if count < 0 {
		count = 0
	}
	if count > len(ranked) {
		count = len(ranked)
	}
	result := make([]question.Question, count)
	for i := 0; i < count; i++ {
		result[i] = ranked[i].q
	}
	return result
}

// PredictTier predicts how hard a question will feel to a student of the
// given ability: the tier whose band the question's relative difficulty
// falls into. A question one logit below the student's ability feels
// easy; one more than a logit above feels like olympiad material.
func PredictTier(studentAbility float64, params ability.ItemParams) progress.Tier {
	delta := params.Difficulty - studentAbility
	switch {
	case delta <= -1:
		return progress.TierEasy
	case delta <= 0:
		return progress.TierMedium
	case delta <= 1:
		return progress.TierHard
	default:
		return progress.TierOlympiad
	}
}
