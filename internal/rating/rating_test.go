package rating

import (
	"testing"

	"github.com/tutorbase/timo/internal/progress"
)

func TestUpdateRatingOutcomeMonotonicity(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		opponent float64
		timeSecs float64
	}{
		{"equal ratings fast", 1200, 1200, 5},
		{"equal ratings slow", 1200, 1200, 200},
		{"underdog", 900, 1500, 30},
		{"favorite", 1500, 900, 30},
		{"floor", MinRating, 1200, 60},
		{"ceiling", MaxRating, 1200, 60},
	}

	for _, tt := range tests {
		correct := UpdateRating(tt.current, tt.opponent, true, tt.timeSecs)
		if correct < tt.current {
			t.Errorf("%s: correct answer decreased rating %.1f -> %.1f", tt.name, tt.current, correct)
		}
		incorrect := UpdateRating(tt.current, tt.opponent, false, tt.timeSecs)
		if incorrect > tt.current {
			t.Errorf("%s: incorrect answer increased rating %.1f -> %.1f", tt.name, tt.current, incorrect)
		}
	}
}

func TestUpdateRatingSpeedOrdering(t *testing.T) {
	// Fast correct answers must earn more than slow correct answers.
	fastGain := UpdateRating(1200, 1200, true, 5) - 1200
	slowGain := UpdateRating(1200, 1200, true, 110) - 1200
	if fastGain <= slowGain {
		t.Errorf("fast correct gain %.2f should exceed slow correct gain %.2f", fastGain, slowGain)
	}

	// Slow incorrect answers must lose more than fast incorrect answers.
	fastLoss := 1200 - UpdateRating(1200, 1200, false, 5)
	slowLoss := 1200 - UpdateRating(1200, 1200, false, 110)
	if slowLoss <= fastLoss {
		t.Errorf("slow incorrect loss %.2f should exceed fast incorrect loss %.2f", slowLoss, fastLoss)
	}
}

func TestUpdateRatingEvenMatchFastWin(t *testing.T) {
	got := UpdateRating(1200, 1200, true, 5)
	gain := got - 1200
	if gain <= 8 || gain > 20 {
		t.Errorf("even-match fast win gain = %.2f, want in (8, 20]", gain)
	}
}

func TestUpdateRatingStaysBounded(t *testing.T) {
	// Adversarial sequences must never escape the rating domain.
	r := DefaultRating
	for i := 0; i < 500; i++ {
		r = UpdateRating(r, MinRating, true, 0)
	}
	if r > MaxRating {
		t.Errorf("rating escaped ceiling: %.1f", r)
	}

	r = DefaultRating
	for i := 0; i < 500; i++ {
		r = UpdateRating(r, MaxRating, false, 1e9)
	}
	if r < MinRating {
		t.Errorf("rating escaped floor: %.1f", r)
	}

	// Out-of-domain inputs are clamped, not propagated.
	if got := UpdateRating(10000, 1200, false, 60); got > MaxRating {
		t.Errorf("out-of-domain input not clamped: %.1f", got)
	}
}

func TestExpectedScore(t *testing.T) {
	if got := ExpectedScore(1200, 1200); got != 0.5 {
		t.Errorf("ExpectedScore(1200, 1200) = %v, want 0.5", got)
	}
	if got := ExpectedScore(1600, 1200); got <= 0.5 {
		t.Errorf("higher-rated player expected score = %v, want > 0.5", got)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		rating float64
		want   progress.Tier
	}{
		{0, progress.TierEasy},
		{400, progress.TierEasy},
		{1100, progress.TierEasy},
		{1100.01, progress.TierMedium},
		{1300, progress.TierMedium},
		{1301, progress.TierHard},
		{1500, progress.TierHard},
		{1501, progress.TierOlympiad},
		{2400, progress.TierOlympiad},
		{99999, progress.TierOlympiad},
	}

	for _, tt := range tests {
		got := TierFor(tt.rating)
		if got != tt.want {
			t.Errorf("TierFor(%.2f) = %s, want %s", tt.rating, got, tt.want)
		}
	}
}

func TestTierForMonotonic(t *testing.T) {
	prev := TierFor(MinRating)
	for r := MinRating; r <= MaxRating; r += 10 {
		cur := TierFor(r)
		if cur < prev {
			t.Fatalf("TierFor not monotonic at %.0f: %s after %s", r, cur, prev)
		}
		prev = cur
	}
}
