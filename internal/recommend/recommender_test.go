package recommend

import (
	"testing"
	"time"

	"github.com/tutorbase/timo/internal/ability"
	"github.com/tutorbase/timo/internal/progress"
	"github.com/tutorbase/timo/internal/question"
)

func candidate(id string, subject progress.Subject, irtDifficulty float64) question.Question {
	return question.Question{
		ID:      id,
		Subject: subject,
		Params: question.Params{
			EloRating: 1200,
			IRT: ability.ItemParams{
				Discrimination: 1.0,
				Difficulty:     irtDifficulty,
				Guessing:       0.25,
			},
		},
	}
}

func TestRecommendPrefersTargetDifficulty(t *testing.T) {
	profile := StudentProfile{StudentID: "s1", Ability: 0}

	candidates := []question.Question{
		candidate("too-hard", progress.SubjectArithmetic, 3.5),
		candidate("too-easy", progress.SubjectArithmetic, -3.5),
		candidate("just-right", progress.SubjectArithmetic, -0.2),
	}

	got := RecommendQuestions(profile, candidates, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != "just-right" {
		t.Errorf("top recommendation = %s, want just-right", got[0].ID)
	}
}

func TestRecommendBoostsWeakSubjects(t *testing.T) {
	profile := StudentProfile{
		StudentID:    "s1",
		Ability:      0,
		WeakSubjects: map[progress.Subject]bool{progress.SubjectGeometry: true},
	}

	// Identical response curves; only the weak-subject boost differs.
	candidates := []question.Question{
		candidate("arith", progress.SubjectArithmetic, 0),
		candidate("geo", progress.SubjectGeometry, 0),
	}

	got := RecommendQuestions(profile, candidates, 2)
	if got[0].ID != "geo" {
		t.Errorf("top recommendation = %s, want geo (weak subject)", got[0].ID)
	}
}

func TestRecommendStableTieBreakAndCount(t *testing.T) {
	profile := StudentProfile{StudentID: "s1", Ability: 0}
	candidates := []question.Question{
		candidate("b", progress.SubjectArithmetic, 0),
		candidate("a", progress.SubjectArithmetic, 0),
		candidate("c", progress.SubjectArithmetic, 0),
	}

	got := RecommendQuestions(profile, candidates, 2)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("tie-break by ID failed: %v", ids(got))
	}

	// Count beyond the candidate pool is clamped.
	if got := RecommendQuestions(profile, candidates, 10); len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestPredictTierBands(t *testing.T) {
	tests := []struct {
		ability    float64
		difficulty float64
		want       progress.Tier
	}{
		{1.0, -0.5, progress.TierEasy},
		{1.0, 0.0, progress.TierEasy},
		{1.0, 0.5, progress.TierMedium},
		{1.0, 1.0, progress.TierMedium},
		{1.0, 1.5, progress.TierHard},
		{1.0, 2.0, progress.TierHard},
		{1.0, 2.5, progress.TierOlympiad},
		{-2.0, 0.0, progress.TierOlympiad},
	}

	for _, tt := range tests {
		params := ability.ItemParams{Discrimination: 1, Difficulty: tt.difficulty, Guessing: 0.25}
		got := PredictTier(tt.ability, params)
		if got != tt.want {
			t.Errorf("PredictTier(%v, b=%v) = %s, want %s", tt.ability, tt.difficulty, got, tt.want)
		}
	}
}

func TestProfileFrom(t *testing.T) {
	p := progress.NewLearningProgress("s1")

	prof := ProfileFrom(p)
	if prof.Rating != 1200 || prof.Ability != 0 {
		t.Errorf("empty progress should give placement values, got %+v", prof)
	}

	p.SetSignals(progress.SubjectArithmetic, progress.ModelSignals{Rating: 1400, Mastery: 0.9, Ability: 1.0})
	p.SetSignals(progress.SubjectGeometry, progress.ModelSignals{Rating: 1000, Mastery: 0.2, Ability: -0.5})
	p.RefreshWeakArea(progress.SubjectGeometry, 0.3, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	prof = ProfileFrom(p)
	if prof.Rating != 1200 {
		t.Errorf("rating = %v, want 1200 (mean of 1400 and 1000)", prof.Rating)
	}
	if prof.Ability != 0.25 {
		t.Errorf("ability = %v, want 0.25", prof.Ability)
	}
	if prof.MasteryBySubject[progress.SubjectArithmetic] != 0.9 {
		t.Errorf("mastery map not populated: %+v", prof.MasteryBySubject)
	}
	if !prof.WeakSubjects[progress.SubjectGeometry] {
		t.Error("geometry should be flagged weak")
	}
}

func ids(qs []question.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}
