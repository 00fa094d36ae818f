package difficulty

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tutorbase/timo/internal/progress"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// historyOf builds a progress record whose same-subject history ends at
// the given tiers, each an hour apart, ending one hour before t0.
func historyOf(subject progress.Subject, tiers ...progress.Tier) *progress.LearningProgress {
	p := progress.NewLearningProgress("s1")
	for i, tier := range tiers {
		completedAt := t0.Add(time.Duration(i-len(tiers)) * time.Hour)
		_ = p.AppendRecord(progress.LessonRecord{
			LessonID:      fmt.Sprintf("lesson-%d", i),
			Subject:       subject,
			CompletedAt:   completedAt,
			Accuracy:      0.7,
			ResultingTier: tier,
		})
	}
	return p
}

func completedLesson(subject progress.Subject, accuracy, timeSecs float64) *progress.Lesson {
	l := progress.NewLesson("s1", subject)
	l.Start()
	l.Complete(accuracy, timeSecs, t0)
	return l
}

func TestCalculateRejectsNonCompletedLesson(t *testing.T) {
	e := NewEngine(DefaultConfig())
	p := historyOf(progress.SubjectArithmetic, progress.TierMedium)

	for _, status := range []progress.LessonStatus{progress.StatusNotStarted, progress.StatusInProgress} {
		l := progress.NewLesson("s1", progress.SubjectArithmetic)
		l.Status = status
		_, err := e.CalculateAfterLesson(p, l)
		if !errors.Is(err, ErrLessonNotCompleted) {
			t.Errorf("status %s: err = %v, want ErrLessonNotCompleted", status, err)
		}
	}

	if _, err := e.CalculateAfterLesson(p, nil); !errors.Is(err, ErrLessonNotCompleted) {
		t.Errorf("nil lesson: err = %v, want ErrLessonNotCompleted", err)
	}
}

func TestCalculateDefaultTierOnEmptyHistory(t *testing.T) {
	e := NewEngine(DefaultConfig())
	p := progress.NewLearningProgress("s1")

	got, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectArithmetic, 1.0, 100))
	if err != nil {
		t.Fatalf("CalculateAfterLesson: %v", err)
	}
	if got != progress.TierMedium {
		t.Errorf("first-session tier = %s, want medium", got)
	}
}

func TestCalculateAccuracyBands(t *testing.T) {
	tests := []struct {
		name     string
		current  progress.Tier
		accuracy float64
		timeSecs float64
		want     progress.Tier
	}{
		{"promote on high accuracy", progress.TierMedium, 0.95, 400, progress.TierHard},
		{"promote at band edge", progress.TierMedium, 0.85, 400, progress.TierHard},
		{"demote on low accuracy", progress.TierHard, 0.3, 400, progress.TierMedium},
		{"demote at band edge", progress.TierHard, 0.4, 400, progress.TierMedium},
		{"hold in the middle band", progress.TierMedium, 0.6, 400, progress.TierMedium},
		{"hold just under promotion", progress.TierMedium, 0.84, 400, progress.TierMedium},
		{"slow completion dampens promotion", progress.TierMedium, 0.95, 800, progress.TierMedium},
		{"slow completion does not demote", progress.TierMedium, 0.6, 5000, progress.TierMedium},
		{"clamp at ceiling", progress.TierOlympiad, 1.0, 400, progress.TierOlympiad},
		{"clamp at floor", progress.TierEasy, 0.0, 400, progress.TierEasy},
	}

	e := NewEngine(DefaultConfig())
	for _, tt := range tests {
		p := historyOf(progress.SubjectArithmetic, tt.current)
		got, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectArithmetic, tt.accuracy, tt.timeSecs))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestCalculateNeverStepsMoreThanOne(t *testing.T) {
	e := NewEngine(DefaultConfig())
	for _, tier := range progress.AllTiers() {
		for _, accuracy := range []float64{0, 0.5, 1} {
			p := historyOf(progress.SubjectGeometry, tier)
			got, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectGeometry, accuracy, 100))
			if err != nil {
				t.Fatal(err)
			}
			if diff := int(got) - int(tier); diff < -1 || diff > 1 {
				t.Errorf("from %s with accuracy %v: jumped to %s", tier, accuracy, got)
			}
		}
	}
}

func TestWeakAreaCapsPromotion(t *testing.T) {
	e := NewEngine(DefaultConfig())

	p := historyOf(progress.SubjectGeometry, progress.TierMedium)
	p.WeakAreas[progress.SubjectGeometry] = progress.WeakArea{
		Subject:         progress.SubjectGeometry,
		ConceptScore:    0.3,
		LastPracticedAt: t0.Add(-24 * time.Hour),
	}

	// A perfect lesson still must not escalate past the current tier.
	got, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectGeometry, 1.0, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got != progress.TierMedium {
		t.Errorf("tier = %s, want medium (weak area active)", got)
	}

	// The cap never forces a demotion.
	got, err = e.CalculateAfterLesson(p, completedLesson(progress.SubjectGeometry, 0.2, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got != progress.TierEasy {
		t.Errorf("tier = %s, want easy (demotion unaffected by weak area)", got)
	}
}

func TestWeakAreaCapExpires(t *testing.T) {
	e := NewEngine(DefaultConfig())

	p := historyOf(progress.SubjectGeometry, progress.TierMedium)
	p.WeakAreas[progress.SubjectGeometry] = progress.WeakArea{
		Subject:         progress.SubjectGeometry,
		ConceptScore:    0.3,
		LastPracticedAt: t0.Add(-72 * time.Hour), // outside the 48h window
	}

	got, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectGeometry, 0.95, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got != progress.TierHard {
		t.Errorf("tier = %s, want hard (weak area stale)", got)
	}
}

func TestWeakAreaInOtherSubjectDoesNotCap(t *testing.T) {
	e := NewEngine(DefaultConfig())

	p := historyOf(progress.SubjectArithmetic, progress.TierMedium)
	p.WeakAreas[progress.SubjectGeometry] = progress.WeakArea{
		Subject:         progress.SubjectGeometry,
		ConceptScore:    0.1,
		LastPracticedAt: t0.Add(-time.Hour),
	}

	got, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectArithmetic, 0.95, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got != progress.TierHard {
		t.Errorf("tier = %s, want hard (weak area is in another subject)", got)
	}
}

func TestMasteryFloorGatesPromotion(t *testing.T) {
	e := NewEngine(DefaultConfig())

	p := historyOf(progress.SubjectArithmetic, progress.TierMedium)
	p.SetSignals(progress.SubjectArithmetic, progress.ModelSignals{
		Rating: 1250, Mastery: 0.2, Ability: 0.5, Attempts: 3,
	})

	got, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectArithmetic, 0.95, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got != progress.TierMedium {
		t.Errorf("tier = %s, want medium (mastery below promotion floor)", got)
	}

	// At or above the floor the promotion goes through.
	p.SetSignals(progress.SubjectArithmetic, progress.ModelSignals{
		Rating: 1250, Mastery: 0.6, Ability: 0.5, Attempts: 3,
	})
	got, err = e.CalculateAfterLesson(p, completedLesson(progress.SubjectArithmetic, 0.95, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got != progress.TierHard {
		t.Errorf("tier = %s, want hard (mastery above floor)", got)
	}
}

func TestOscillationDamping(t *testing.T) {
	e := NewEngine(DefaultConfig())

	// Medium -> Hard -> Medium zig-zags; the next step is suppressed.
	p := historyOf(progress.SubjectArithmetic,
		progress.TierMedium, progress.TierHard, progress.TierMedium)

	got, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectArithmetic, 0.95, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got != progress.TierMedium {
		t.Errorf("tier = %s, want medium (oscillation damped)", got)
	}

	// Demotions are damped too.
	got, err = e.CalculateAfterLesson(p, completedLesson(progress.SubjectArithmetic, 0.2, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got != progress.TierMedium {
		t.Errorf("tier = %s, want medium (oscillation damped)", got)
	}
}

func TestNoDampingOnSteadyClimb(t *testing.T) {
	e := NewEngine(DefaultConfig())

	// A monotonic trajectory is not oscillation.
	p := historyOf(progress.SubjectArithmetic,
		progress.TierEasy, progress.TierMedium, progress.TierHard)

	got, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectArithmetic, 0.95, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got != progress.TierOlympiad {
		t.Errorf("tier = %s, want olympiad", got)
	}
}

func TestNoDampingWithShortHistory(t *testing.T) {
	e := NewEngine(DefaultConfig())

	p := historyOf(progress.SubjectArithmetic, progress.TierHard, progress.TierMedium)

	got, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectArithmetic, 0.95, 100))
	if err != nil {
		t.Fatal(err)
	}
	if got != progress.TierHard {
		t.Errorf("tier = %s, want hard (window not filled)", got)
	}
}

func TestCalculateDoesNotMutateInputs(t *testing.T) {
	e := NewEngine(DefaultConfig())
	p := historyOf(progress.SubjectArithmetic, progress.TierMedium)
	before := len(p.History)

	_, err := e.CalculateAfterLesson(p, completedLesson(progress.SubjectArithmetic, 0.95, 100))
	if err != nil {
		t.Fatal(err)
	}
	if len(p.History) != before || len(p.WeakAreas) != 0 || len(p.Signals) != 0 {
		t.Error("engine mutated the progress record")
	}
}
