// Package difficulty decides how hard a student's next lesson should be.
// The engine runs at lesson boundaries only: it reads the student's
// accumulated learning progress, scores the just-completed lesson, and
// moves the difficulty tier at most one step. Accuracy is the dominant
// signal, refined by response time; promotion gates and an oscillation
// damper keep the trajectory stable.
package difficulty

import (
	"errors"
	"fmt"

	"github.com/tutorbase/timo/internal/progress"
)

// ErrLessonNotCompleted is returned when the lesson under evaluation is
// not in the completed state. Adaptation never runs mid-lesson.
var ErrLessonNotCompleted = errors.New("lesson not completed")

// Engine decides the next difficulty tier after each completed lesson.
// It holds no per-student state; construct one per process or per test
// and share it freely.
type Engine struct {
	cfg   Config
	gates []PromotionGate
}

// NewEngine creates an engine with the given config and the default
// promotion gates.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:   cfg,
		gates: DefaultGates(cfg),
	}
}

// NewEngineWithGates creates an engine with an explicit gate pipeline.
func NewEngineWithGates(cfg Config, gates []PromotionGate) *Engine {
	return &Engine{cfg: cfg, gates: gates}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// CalculateAfterLesson is the single decision entry point. Given a
// completed lesson and the student's learning progress it returns the
// tier for the next lesson. The caller persists the result back into
// the progress record; the engine never mutates its inputs.
//
// A student with no lesson history gets the configured default tier.
// A lesson that is not completed is rejected with ErrLessonNotCompleted.
func (e *Engine) CalculateAfterLesson(p *progress.LearningProgress, lesson *progress.Lesson) (progress.Tier, error) {
	if err := validateCompleted(lesson); err != nil {
		return e.cfg.DefaultTier, err
	}

	if p == nil || len(p.History) == 0 {
		return e.cfg.DefaultTier, nil
	}

	current := p.LatestRecordFor(lesson.Subject).ResultingTier
	step := e.baseStep(current, lesson)

	if step > 0 {
		for _, g := range e.gates {
			if !g.Allow(p, lesson) {
				step = 0
				break
			}
		}
	}

	if step != 0 && e.oscillating(p, lesson.Subject) {
		step = 0
	}

	switch {
	case step > 0:
		return current.Next(), nil
	case step < 0:
		return current.Prev(), nil
	default:
		return current, nil
	}
}

// baseStep derives the candidate step from accuracy, refined by response
// time at the promotion boundary: a disproportionately slow completion
// does not earn a promotion even at high accuracy.
func (e *Engine) baseStep(current progress.Tier, lesson *progress.Lesson) int {
	switch {
	case lesson.Accuracy >= e.cfg.HighAccuracy:
		if budget, ok := e.cfg.TimeBudgetSecs[current]; ok && budget > 0 &&
			lesson.ResponseTimeSecs > e.cfg.SlowFactor*budget {
			return 0
		}
		return 1
	case lesson.Accuracy <= e.cfg.LowAccuracy:
		return -1
	default:
		return 0
	}
}

// oscillating reports whether the student's recent tier trajectory in
// this subject alternates direction. When the last OscillationWindow
// records zig-zag (up, down, up, ...) the engine holds the tier for one
// invocation rather than feeding the swing.
func (e *Engine) oscillating(p *progress.LearningProgress, subject progress.Subject) bool {
	window := e.cfg.OscillationWindow
	if window < 2 {
		return false
	}
	recs := p.RecentRecordsFor(subject, window)
	if len(recs) < window {
		return false
	}

	prevDelta := 0
	for i := 1; i < len(recs); i++ {
		delta := int(recs[i].ResultingTier) - int(recs[i-1].ResultingTier)
		if delta == 0 {
			return false
		}
		if prevDelta != 0 && (delta > 0) == (prevDelta > 0) {
			return false
		}
		prevDelta = delta
	}
	return true
}

func validateCompleted(lesson *progress.Lesson) error {
	if lesson == nil {
		return fmt.Errorf("nil lesson: %w", ErrLessonNotCompleted)
	}
	if lesson.Status != progress.StatusCompleted {
		return fmt.Errorf("lesson %s has status %q: %w", lesson.ID, lesson.Status, ErrLessonNotCompleted)
	}
	return nil
}
