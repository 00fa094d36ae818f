package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorbase/timo/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLoadProgressUnknownStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	p, err := repo.LoadProgress(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", p.StudentID)
	assert.Empty(t, p.History)
	assert.Empty(t, p.WeakAreas)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	p := progress.NewLearningProgress("alice")

	lesson := progress.NewLesson("alice", progress.SubjectArithmetic)
	lesson.Start()
	lesson.Complete(0.9, 420, t0)
	sig := progress.ModelSignals{Rating: 1230, Mastery: 0.55, Ability: 0.2, Attempts: 1}
	require.NoError(t, p.ApplyLesson(lesson, progress.TierHard, sig))

	require.NoError(t, repo.SaveProgress(ctx, "alice", p))

	got, err := repo.LoadProgress(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, got.History, 1)
	rec := got.History[0]
	assert.Equal(t, lesson.ID, rec.LessonID)
	assert.Equal(t, progress.SubjectArithmetic, rec.Subject)
	assert.Equal(t, progress.TierHard, rec.ResultingTier)
	assert.Equal(t, 0.9, rec.Accuracy)
	assert.True(t, rec.CompletedAt.Equal(t0))

	gotSig, ok := got.SignalsFor(progress.SubjectArithmetic)
	require.True(t, ok)
	assert.Equal(t, sig, gotSig)

	wa, ok := got.WeakAreaFor(progress.SubjectArithmetic)
	require.True(t, ok)
	assert.Equal(t, 0.9, wa.ConceptScore)
}

func TestSaveProgressAppendsOnlyNewRecords(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	p := progress.NewLearningProgress("bob")

	first := progress.NewLesson("bob", progress.SubjectGeometry)
	first.Start()
	first.Complete(0.5, 300, t0)
	require.NoError(t, p.ApplyLesson(first, progress.TierMedium, progress.ModelSignals{Rating: 1200, Mastery: 0.4, Attempts: 1}))
	require.NoError(t, repo.SaveProgress(ctx, "bob", p))

	// Save again with one more lesson; the first row must not duplicate.
	second := progress.NewLesson("bob", progress.SubjectGeometry)
	second.Start()
	second.Complete(0.9, 280, t0.Add(time.Hour))
	require.NoError(t, p.ApplyLesson(second, progress.TierHard, progress.ModelSignals{Rating: 1220, Mastery: 0.6, Attempts: 2}))
	require.NoError(t, repo.SaveProgress(ctx, "bob", p))

	got, err := repo.LoadProgress(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, got.History, 2)

	// Weak area and signals were replaced, not duplicated.
	assert.Len(t, got.WeakAreas, 1)
	sig, _ := got.SignalsFor(progress.SubjectGeometry)
	assert.Equal(t, 2, sig.Attempts)
}

func TestSaveProgressRejectsStaleCopy(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	p := progress.NewLearningProgress("carol")
	lesson := progress.NewLesson("carol", progress.SubjectArithmetic)
	lesson.Start()
	lesson.Complete(0.8, 300, t0)
	require.NoError(t, p.ApplyLesson(lesson, progress.TierMedium, progress.ModelSignals{Attempts: 1}))
	require.NoError(t, repo.SaveProgress(ctx, "carol", p))

	// An empty in-memory record is older than the stored history.
	stale := progress.NewLearningProgress("carol")
	err := repo.SaveProgress(ctx, "carol", stale)
	assert.Error(t, err)
}

func TestStudents(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	students, err := repo.Students(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, id := range []string{"dave", "erin"} {
		p := progress.NewLearningProgress(id)
		lesson := progress.NewLesson(id, progress.SubjectArithmetic)
		lesson.Start()
		lesson.Complete(0.7, 300, t0)
		require.NoError(t, p.ApplyLesson(lesson, progress.TierMedium, progress.ModelSignals{Attempts: 1}))
		require.NoError(t, repo.SaveProgress(ctx, id, p))
	}

	students, err = repo.Students(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"dave", "erin"}, students)
}
