package progress

import (
	"fmt"
	"time"
)

// LessonRecord is one entry in a student's lesson history. Records are
// append-only and ordered by completion time; once appended they are
// never mutated.
type LessonRecord struct {
	LessonID         string
	Subject          Subject
	CompletedAt      time.Time
	Accuracy         float64
	ResponseTimeSecs float64
	ResultingTier    Tier // tier decided for the *next* lesson in this subject
}

// WeakArea flags a subject the student has recently underperformed on.
// The registry keeps at most one entry per subject; a new observation
// replaces the prior one.
type WeakArea struct {
	Subject         Subject
	ConceptScore    float64 // 0.0-1.0, lower is weaker
	LastPracticedAt time.Time
}

// ModelSignals holds the per-subject estimator state persisted between
// lessons. The estimators themselves are stateless; updated values are
// written back here after each completed lesson.
type ModelSignals struct {
	Rating   float64
	Mastery  float64
	Ability  float64
	Attempts int
}

// LearningProgress is the per-student learning aggregate: the ordered
// lesson history, the weak-area registry, and the per-subject model
// signals. It is created once per student and mutated exactly once per
// completed lesson. Callers must serialize concurrent updates for the
// same student.
type LearningProgress struct {
	StudentID string
	History   []LessonRecord
	WeakAreas map[Subject]WeakArea
	Signals   map[Subject]ModelSignals
}

// NewLearningProgress creates an empty progress record for a student.
func NewLearningProgress(studentID string) *LearningProgress {
	return &LearningProgress{
		StudentID: studentID,
		WeakAreas: make(map[Subject]WeakArea),
		Signals:   make(map[Subject]ModelSignals),
	}
}

// AppendRecord appends a lesson record to the history. Records must
// arrive in completion order; an out-of-order record is rejected.
func (p *LearningProgress) AppendRecord(rec LessonRecord) error {
	if n := len(p.History); n > 0 && rec.CompletedAt.Before(p.History[n-1].CompletedAt) {
		return fmt.Errorf("lesson record %s completed at %s is older than history tail %s",
			rec.LessonID, rec.CompletedAt.Format(time.RFC3339),
			p.History[n-1].CompletedAt.Format(time.RFC3339))
	}
	p.History = append(p.History, rec)
	return nil
}

// LatestRecord returns the most recent lesson record, or nil if the
// history is empty.
func (p *LearningProgress) LatestRecord() *LessonRecord {
	if len(p.History) == 0 {
		return nil
	}
	return &p.History[len(p.History)-1]
}

// LatestRecordFor returns the most recent record for a subject, falling
// back to the most recent record overall when the subject has no history.
func (p *LearningProgress) LatestRecordFor(subject Subject) *LessonRecord {
	for i := len(p.History) - 1; i >= 0; i-- {
		if p.History[i].Subject == subject {
			return &p.History[i]
		}
	}
	return p.LatestRecord()
}

// RecentRecordsFor returns up to n most recent records for a subject,
// oldest first.
func (p *LearningProgress) RecentRecordsFor(subject Subject, n int) []LessonRecord {
	var recent []LessonRecord
	for i := len(p.History) - 1; i >= 0 && len(recent) < n; i-- {
		if p.History[i].Subject == subject {
			recent = append(recent, p.History[i])
		}
	}
	// Reverse into chronological order.
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent
}

// WeakAreaFor returns the weak-area entry for a subject, if present.
func (p *LearningProgress) WeakAreaFor(subject Subject) (WeakArea, bool) {
	wa, ok := p.WeakAreas[subject]
	return wa, ok
}

// RefreshWeakArea folds a new lesson accuracy into the subject's concept
// score. A first observation seeds the score directly; later ones blend
// equally with the prior so a single bad lesson doesn't erase a strong
// track record.
func (p *LearningProgress) RefreshWeakArea(subject Subject, accuracy float64, at time.Time) {
	if p.WeakAreas == nil {
		p.WeakAreas = make(map[Subject]WeakArea)
	}
	score := accuracy
	if prev, ok := p.WeakAreas[subject]; ok {
		score = 0.5*prev.ConceptScore + 0.5*accuracy
	}
	p.WeakAreas[subject] = WeakArea{
		Subject:         subject,
		ConceptScore:    score,
		LastPracticedAt: at,
	}
}

// SignalsFor returns the model signals for a subject, if any lesson in
// that subject has been observed.
func (p *LearningProgress) SignalsFor(subject Subject) (ModelSignals, bool) {
	sig, ok := p.Signals[subject]
	return sig, ok
}

// SetSignals stores updated model signals for a subject.
func (p *LearningProgress) SetSignals(subject Subject, sig ModelSignals) {
	if p.Signals == nil {
		p.Signals = make(map[Subject]ModelSignals)
	}
	p.Signals[subject] = sig
}

// ApplyLesson records a decided lesson outcome: appends the history
// record, refreshes the subject's weak-area entry, and stores the
// updated model signals. This is the single mutation per completed
// lesson; the difficulty engine itself never writes here.
func (p *LearningProgress) ApplyLesson(lesson *Lesson, nextTier Tier, sig ModelSignals) error {
	if lesson.Status != StatusCompleted {
		return fmt.Errorf("cannot apply lesson %s with status %q", lesson.ID, lesson.Status)
	}
	err := p.AppendRecord(LessonRecord{
		LessonID:         lesson.ID,
		Subject:          lesson.Subject,
		CompletedAt:      lesson.CompletedAt,
		Accuracy:         lesson.Accuracy,
		ResponseTimeSecs: lesson.ResponseTimeSecs,
		ResultingTier:    nextTier,
	})
	if err != nil {
		return err
	}
	p.RefreshWeakArea(lesson.Subject, lesson.Accuracy, lesson.CompletedAt)
	p.SetSignals(lesson.Subject, sig)
	return nil
}

// WeakSubjects returns subjects whose concept score is below the given
// threshold, in AllSubjects order.
func (p *LearningProgress) WeakSubjects(threshold float64) []Subject {
	var weak []Subject
	for _, s := range AllSubjects() {
		if wa, ok := p.WeakAreas[s]; ok && wa.ConceptScore < threshold {
			weak = append(weak, s)
		}
	}
	return weak
}
