package difficulty

import (
	"github.com/tutorbase/timo/internal/progress"
)

// PromotionGate can veto a proposed tier promotion. Gates never force a
// promotion or demotion; they only cap a +1 step to 0.
// Implementations must be stateless and safe for concurrent use.
type PromotionGate interface {
	// Name returns a short identifier for this gate (for logging and
	// error messages), e.g. "weak-area", "mastery-floor".
	Name() string

	// Allow reports whether a promotion may proceed for this lesson.
	Allow(p *progress.LearningProgress, lesson *progress.Lesson) bool
}

// DefaultGates returns the promotion gates in priority order. The
// weak-area cap runs first: an actively weak subject blocks escalation
// regardless of what the estimators say.
func DefaultGates(cfg Config) []PromotionGate {
	return []PromotionGate{
		&WeakAreaGate{cfg: cfg},
		&MasteryGate{cfg: cfg},
	}
}

// WeakAreaGate blocks promotion while the lesson's subject has a
// recently practiced weak area below the score threshold. Difficulty
// must not escalate while the student is actively struggling with the
// subject, even after a perfect lesson.
type WeakAreaGate struct {
	cfg Config
}

func (g *WeakAreaGate) Name() string { return "weak-area" }

func (g *WeakAreaGate) Allow(p *progress.LearningProgress, lesson *progress.Lesson) bool {
	wa, ok := p.WeakAreaFor(lesson.Subject)
	if !ok {
		return true
	}
	if wa.ConceptScore >= g.cfg.WeakScoreThreshold {
		return true
	}
	// The registry entry predates this lesson; measure recency against
	// the lesson's own completion time so decisions stay deterministic.
	return lesson.CompletedAt.Sub(wa.LastPracticedAt) > g.cfg.WeakRecencyWindow
}

// MasteryGate blocks promotion until the subject's tracked mastery
// probability reaches the promotion floor. Subjects with no mastery
// signal yet are not gated.
type MasteryGate struct {
	cfg Config
}

func (g *MasteryGate) Name() string { return "mastery-floor" }

func (g *MasteryGate) Allow(p *progress.LearningProgress, lesson *progress.Lesson) bool {
	sig, ok := p.SignalsFor(lesson.Subject)
	if !ok {
		return true
	}
	return sig.Mastery >= g.cfg.MasteryPromotionFloor
}
