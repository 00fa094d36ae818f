package difficulty

import (
	"errors"
	"testing"

	"github.com/tutorbase/timo/internal/mastery"
	"github.com/tutorbase/timo/internal/progress"
	"github.com/tutorbase/timo/internal/rating"
)

func TestSignalsAfterLessonFirstObservation(t *testing.T) {
	e := NewEngine(DefaultConfig())
	p := historyOf(progress.SubjectArithmetic, progress.TierMedium)

	sig, err := e.SignalsAfterLesson(p, completedLesson(progress.SubjectArithmetic, 0.9, 300))
	if err != nil {
		t.Fatalf("SignalsAfterLesson: %v", err)
	}

	// The first observation starts from the placement priors, so a
	// strong lesson moves every signal up from them.
	if sig.Rating <= rating.DefaultRating {
		t.Errorf("rating = %v, want > default after strong lesson", sig.Rating)
	}
	if sig.Mastery <= mastery.DefaultPrior {
		t.Errorf("mastery = %v, want > prior after strong lesson", sig.Mastery)
	}
	if sig.Ability <= 0 {
		t.Errorf("ability = %v, want > 0 after strong lesson", sig.Ability)
	}
	if sig.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", sig.Attempts)
	}
}

func TestSignalsAfterLessonAccumulates(t *testing.T) {
	e := NewEngine(DefaultConfig())
	p := historyOf(progress.SubjectArithmetic, progress.TierMedium)
	p.SetSignals(progress.SubjectArithmetic, progress.ModelSignals{
		Rating: 1300, Mastery: 0.6, Ability: 0.4, Attempts: 5,
	})

	sig, err := e.SignalsAfterLesson(p, completedLesson(progress.SubjectArithmetic, 0.2, 300))
	if err != nil {
		t.Fatal(err)
	}

	// A weak lesson counts as an incorrect aggregate attempt.
	if sig.Rating >= 1300 {
		t.Errorf("rating = %v, want < 1300 after weak lesson", sig.Rating)
	}
	if sig.Ability >= 0.4 {
		t.Errorf("ability = %v, want < 0.4 after weak lesson", sig.Ability)
	}
	if sig.Attempts != 6 {
		t.Errorf("attempts = %d, want 6", sig.Attempts)
	}
}

func TestSignalsRejectNonCompletedLesson(t *testing.T) {
	e := NewEngine(DefaultConfig())
	p := progress.NewLearningProgress("s1")
	l := progress.NewLesson("s1", progress.SubjectArithmetic)

	if _, err := e.SignalsAfterLesson(p, l); !errors.Is(err, ErrLessonNotCompleted) {
		t.Errorf("err = %v, want ErrLessonNotCompleted", err)
	}
}

func TestTierItemParamsOrdering(t *testing.T) {
	prev := -10.0
	for _, tier := range progress.AllTiers() {
		p := TierItemParams(tier)
		if p.Difficulty <= prev {
			t.Errorf("tier %s difficulty %v not above previous %v", tier, p.Difficulty, prev)
		}
		prev = p.Difficulty
	}
}
