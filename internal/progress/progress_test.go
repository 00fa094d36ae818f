package progress

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func record(subject Subject, completedAt time.Time, tier Tier) LessonRecord {
	return LessonRecord{
		LessonID:      "lesson-" + completedAt.Format("150405"),
		Subject:       subject,
		CompletedAt:   completedAt,
		Accuracy:      0.8,
		ResultingTier: tier,
	}
}

func TestAppendRecordOrdering(t *testing.T) {
	p := NewLearningProgress("s1")

	if err := p.AppendRecord(record(SubjectArithmetic, t0, TierMedium)); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := p.AppendRecord(record(SubjectArithmetic, t0.Add(time.Hour), TierHard)); err != nil {
		t.Fatalf("in-order append: %v", err)
	}

	// Out-of-order records are rejected, history untouched.
	if err := p.AppendRecord(record(SubjectArithmetic, t0.Add(-time.Hour), TierEasy)); err == nil {
		t.Fatal("expected error appending out-of-order record")
	}
	if len(p.History) != 2 {
		t.Errorf("history length = %d, want 2", len(p.History))
	}
}

func TestLatestRecordFor(t *testing.T) {
	p := NewLearningProgress("s1")
	if p.LatestRecord() != nil {
		t.Error("empty history should have no latest record")
	}

	_ = p.AppendRecord(record(SubjectArithmetic, t0, TierMedium))
	_ = p.AppendRecord(record(SubjectGeometry, t0.Add(time.Hour), TierHard))

	if got := p.LatestRecordFor(SubjectArithmetic); got.ResultingTier != TierMedium {
		t.Errorf("arithmetic latest tier = %s, want medium", got.ResultingTier)
	}
	// A subject with no history falls back to the newest record overall.
	if got := p.LatestRecordFor(SubjectCombinatorics); got.ResultingTier != TierHard {
		t.Errorf("fallback latest tier = %s, want hard", got.ResultingTier)
	}
}

func TestRecentRecordsFor(t *testing.T) {
	p := NewLearningProgress("s1")
	tiers := []Tier{TierMedium, TierHard, TierMedium, TierHard}
	for i, tier := range tiers {
		_ = p.AppendRecord(record(SubjectArithmetic, t0.Add(time.Duration(i)*time.Hour), tier))
	}
	_ = p.AppendRecord(record(SubjectGeometry, t0.Add(5*time.Hour), TierEasy))

	got := p.RecentRecordsFor(SubjectArithmetic, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Chronological order, geometry record excluded.
	want := []Tier{TierHard, TierMedium, TierHard}
	for i, rec := range got {
		if rec.ResultingTier != want[i] {
			t.Errorf("recent[%d].ResultingTier = %s, want %s", i, rec.ResultingTier, want[i])
		}
	}
}

func TestRefreshWeakArea(t *testing.T) {
	p := NewLearningProgress("s1")

	p.RefreshWeakArea(SubjectGeometry, 0.2, t0)
	wa, ok := p.WeakAreaFor(SubjectGeometry)
	if !ok || wa.ConceptScore != 0.2 {
		t.Fatalf("first observation should seed score directly: %+v", wa)
	}

	// Later observations blend equally with the prior and replace the entry.
	p.RefreshWeakArea(SubjectGeometry, 0.6, t0.Add(time.Hour))
	wa, _ = p.WeakAreaFor(SubjectGeometry)
	if wa.ConceptScore != 0.4 {
		t.Errorf("blended score = %v, want 0.4", wa.ConceptScore)
	}
	if !wa.LastPracticedAt.Equal(t0.Add(time.Hour)) {
		t.Errorf("LastPracticedAt not refreshed: %v", wa.LastPracticedAt)
	}
	if len(p.WeakAreas) != 1 {
		t.Errorf("registry should hold one entry per subject, got %d", len(p.WeakAreas))
	}
}

func TestWeakSubjects(t *testing.T) {
	p := NewLearningProgress("s1")
	p.RefreshWeakArea(SubjectGeometry, 0.3, t0)
	p.RefreshWeakArea(SubjectArithmetic, 0.9, t0)

	weak := p.WeakSubjects(0.5)
	if len(weak) != 1 || weak[0] != SubjectGeometry {
		t.Errorf("WeakSubjects = %v, want [geometry]", weak)
	}
}

func TestApplyLesson(t *testing.T) {
	p := NewLearningProgress("s1")

	lesson := NewLesson("s1", SubjectArithmetic)
	lesson.Start()
	lesson.Complete(0.9, 400, t0)

	sig := ModelSignals{Rating: 1210, Mastery: 0.5, Ability: 0.1, Attempts: 1}
	if err := p.ApplyLesson(lesson, TierHard, sig); err != nil {
		t.Fatalf("ApplyLesson: %v", err)
	}

	if len(p.History) != 1 || p.History[0].ResultingTier != TierHard {
		t.Errorf("history not appended: %+v", p.History)
	}
	if _, ok := p.WeakAreaFor(SubjectArithmetic); !ok {
		t.Error("weak area not refreshed")
	}
	if got, _ := p.SignalsFor(SubjectArithmetic); got != sig {
		t.Errorf("signals = %+v, want %+v", got, sig)
	}

	// A non-completed lesson is never applied.
	pending := NewLesson("s1", SubjectArithmetic)
	if err := p.ApplyLesson(pending, TierMedium, sig); err == nil {
		t.Error("expected error applying non-completed lesson")
	}
}

func TestLessonComplete(t *testing.T) {
	l := NewLesson("s1", SubjectGeometry)
	if l.Status != StatusNotStarted || l.ID == "" {
		t.Fatalf("unexpected new lesson: %+v", l)
	}
	l.Start()
	if l.Status != StatusInProgress {
		t.Errorf("status = %s, want in-progress", l.Status)
	}
	l.Complete(1.7, 300, t0)
	if l.Accuracy != 1 {
		t.Errorf("accuracy not clamped: %v", l.Accuracy)
	}
	if l.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", l.Status)
	}
}
