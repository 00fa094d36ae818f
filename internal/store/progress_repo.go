package store

import (
	"context"
	"fmt"

	"github.com/tutorbase/timo/ent"
	"github.com/tutorbase/timo/ent/lessonrecord"
	"github.com/tutorbase/timo/ent/subjectsignal"
	"github.com/tutorbase/timo/ent/weakarea"
	"github.com/tutorbase/timo/internal/progress"
)

// ProgressRepo loads and saves per-student learning progress. Callers
// must serialize concurrent saves for the same student; the repo itself
// does not lock.
type ProgressRepo interface {
	// LoadProgress returns the student's progress record. A student
	// with no stored rows gets a fresh empty record, not an error.
	LoadProgress(ctx context.Context, studentID string) (*progress.LearningProgress, error)

	// SaveProgress writes the record back: new history records are
	// appended, weak areas and signals are replaced per subject.
	SaveProgress(ctx context.Context, studentID string, p *progress.LearningProgress) error

	// Students lists all student IDs with stored history.
	Students(ctx context.Context) ([]string, error)
}

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) LoadProgress(ctx context.Context, studentID string) (*progress.LearningProgress, error) {
	p := progress.NewLearningProgress(studentID)

	records, err := r.client.LessonRecord.Query().
		Where(lessonrecord.StudentID(studentID)).
		Order(ent.Asc(lessonrecord.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson records: %w", err)
	}
	for _, rec := range records {
		if err := p.AppendRecord(progress.LessonRecord{
			LessonID:         rec.LessonID,
			Subject:          progress.Subject(rec.Subject),
			CompletedAt:      rec.CompletedAt,
			Accuracy:         rec.Accuracy,
			ResponseTimeSecs: rec.ResponseTimeSecs,
			ResultingTier:    progress.TierFromString(rec.ResultingTier),
		}); err != nil {
			return nil, fmt.Errorf("rebuild history: %w", err)
		}
	}

	weakAreas, err := r.client.WeakArea.Query().
		Where(weakarea.StudentID(studentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query weak areas: %w", err)
	}
	for _, wa := range weakAreas {
		p.WeakAreas[progress.Subject(wa.Subject)] = progress.WeakArea{
			Subject:         progress.Subject(wa.Subject),
			ConceptScore:    wa.ConceptScore,
			LastPracticedAt: wa.LastPracticedAt,
		}
	}

	signals, err := r.client.SubjectSignal.Query().
		Where(subjectsignal.StudentID(studentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subject signals: %w", err)
	}
	for _, sig := range signals {
		p.Signals[progress.Subject(sig.Subject)] = progress.ModelSignals{
			Rating:   sig.Rating,
			Mastery:  sig.Mastery,
			Ability:  sig.Ability,
			Attempts: sig.Attempts,
		}
	}

	return p, nil
}

func (r *progressRepo) SaveProgress(ctx context.Context, studentID string, p *progress.LearningProgress) error {
	stored, err := r.client.LessonRecord.Query().
		Where(lessonrecord.StudentID(studentID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count lesson records: %w", err)
	}
	if stored > len(p.History) {
		return fmt.Errorf("stored history for %s has %d records, in-memory copy has %d: stale progress record",
			studentID, stored, len(p.History))
	}

	// History is append-only; write only the new tail.
	for _, rec := range p.History[stored:] {
		_, err := r.client.LessonRecord.Create().
			SetStudentID(studentID).
			SetLessonID(rec.LessonID).
			SetSubject(string(rec.Subject)).
			SetCompletedAt(rec.CompletedAt).
			SetAccuracy(rec.Accuracy).
			SetResponseTimeSecs(rec.ResponseTimeSecs).
			SetResultingTier(rec.ResultingTier.String()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("append lesson record %s: %w", rec.LessonID, err)
		}
	}

	for subject, wa := range p.WeakAreas {
		err := r.upsertWeakArea(ctx, studentID, subject, wa)
		if err != nil {
			return fmt.Errorf("save weak area %s: %w", subject, err)
		}
	}

	for subject, sig := range p.Signals {
		err := r.upsertSignal(ctx, studentID, subject, sig)
		if err != nil {
			return fmt.Errorf("save signals %s: %w", subject, err)
		}
	}

	return nil
}

func (r *progressRepo) upsertWeakArea(ctx context.Context, studentID string, subject progress.Subject, wa progress.WeakArea) error {
	existing, err := r.client.WeakArea.Query().
		Where(weakarea.StudentID(studentID), weakarea.Subject(string(subject))).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err = r.client.WeakArea.Create().
			SetStudentID(studentID).
			SetSubject(string(subject)).
			SetConceptScore(wa.ConceptScore).
			SetLastPracticedAt(wa.LastPracticedAt).
			Save(ctx)
		return err
	}
	if err != nil {
		return err
	}
	_, err = existing.Update().
		SetConceptScore(wa.ConceptScore).
		SetLastPracticedAt(wa.LastPracticedAt).
		Save(ctx)
	return err
}

func (r *progressRepo) upsertSignal(ctx context.Context, studentID string, subject progress.Subject, sig progress.ModelSignals) error {
	existing, err := r.client.SubjectSignal.Query().
		Where(subjectsignal.StudentID(studentID), subjectsignal.Subject(string(subject))).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err = r.client.SubjectSignal.Create().
			SetStudentID(studentID).
			SetSubject(string(subject)).
			SetRating(sig.Rating).
			SetMastery(sig.Mastery).
			SetAbility(sig.Ability).
			SetAttempts(sig.Attempts).
			Save(ctx)
		return err
	}
	if err != nil {
		return err
	}
	_, err = existing.Update().
		SetRating(sig.Rating).
		SetMastery(sig.Mastery).
		SetAbility(sig.Ability).
		SetAttempts(sig.Attempts).
		Save(ctx)
	return err
}

func (r *progressRepo) Students(ctx context.Context) ([]string, error) {
	ids, err := r.client.LessonRecord.Query().
		Unique(true).
		Select(lessonrecord.FieldStudentID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return ids, nil
}
