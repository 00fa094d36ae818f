package difficulty

import (
	"time"

	"github.com/tutorbase/timo/internal/progress"
)

const (
	// DefaultHighAccuracy is the accuracy at or above which a lesson
	// proposes a promotion.
	DefaultHighAccuracy = 0.85

	// DefaultLowAccuracy is the accuracy at or below which a lesson
	// proposes a demotion.
	DefaultLowAccuracy = 0.40

	// DefaultSlowFactor is the multiple of the tier time budget beyond
	// which a high-accuracy lesson no longer earns a promotion.
	DefaultSlowFactor = 1.5

	// DefaultWeakScoreThreshold is the concept score below which a weak
	// area blocks promotions in its subject.
	DefaultWeakScoreThreshold = 0.5

	// DefaultWeakRecencyWindow is how recently a weak area must have
	// been practiced for the promotion block to apply.
	DefaultWeakRecencyWindow = 48 * time.Hour

	// DefaultOscillationWindow is the number of recent same-subject
	// records inspected for tier thrashing.
	DefaultOscillationWindow = 3

	// DefaultMasteryPromotionFloor is the BKT mastery probability a
	// subject must have reached before a promotion is allowed, once a
	// mastery signal exists for it.
	DefaultMasteryPromotionFloor = 0.5
)

// Config holds the engine's decision thresholds.
type Config struct {
	HighAccuracy          float64
	LowAccuracy           float64
	SlowFactor            float64
	TimeBudgetSecs        map[progress.Tier]float64
	WeakScoreThreshold    float64
	WeakRecencyWindow     time.Duration
	OscillationWindow     int
	MasteryPromotionFloor float64
	// DefaultTier is returned for a student with no lesson history.
	DefaultTier progress.Tier
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		HighAccuracy:          DefaultHighAccuracy,
		LowAccuracy:           DefaultLowAccuracy,
		SlowFactor:            DefaultSlowFactor,
		TimeBudgetSecs:        DefaultTimeBudgets(),
		WeakScoreThreshold:    DefaultWeakScoreThreshold,
		WeakRecencyWindow:     DefaultWeakRecencyWindow,
		OscillationWindow:     DefaultOscillationWindow,
		MasteryPromotionFloor: DefaultMasteryPromotionFloor,
		DefaultTier:           progress.TierMedium,
	}
}

// DefaultTimeBudgets returns the per-tier lesson time budgets in seconds.
// A lesson finishing under its budget counts as fast for its tier.
func DefaultTimeBudgets() map[progress.Tier]float64 {
	return map[progress.Tier]float64{
		progress.TierEasy:     300,
		progress.TierMedium:   480,
		progress.TierHard:     600,
		progress.TierOlympiad: 900,
	}
}
