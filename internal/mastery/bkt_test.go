package mastery

import (
	"math"
	"testing"
)

func TestUpdateStaysInUnitInterval(t *testing.T) {
	priors := []float64{-0.5, 0, 0.01, 0.3, 0.5, 0.8, 0.99, 1, 1.5}
	params := []Params{
		DefaultParams(),
		{PLearn: 0, PGuess: 0, PSlip: 0},
		{PLearn: 1, PGuess: 1, PSlip: 1},
		{PLearn: 0.1, PGuess: 0.9, PSlip: 0.05},
	}

	for _, prior := range priors {
		for _, p := range params {
			for _, correct := range []bool{true, false} {
				got := Update(prior, correct, p)
				if got < 0 || got > 1 {
					t.Errorf("Update(%v, %v, %+v) = %v, out of [0,1]", prior, correct, p, got)
				}
			}
		}
	}
}

func TestUpdateCorrectFromLowPrior(t *testing.T) {
	got := Update(0.3, true, DefaultParams())
	if got <= 0.3 {
		t.Errorf("posterior after correct answer = %v, want > 0.3", got)
	}
	// Evidence: 0.3*0.9 / (0.3*0.9 + 0.7*0.25) = 0.6067;
	// learning: 0.6067 + 0.3933*0.4 = 0.7640.
	want := 0.7640
	if math.Abs(got-want) > 0.001 {
		t.Errorf("posterior = %v, want %.4f", got, want)
	}
}

func TestUpdateIncorrectReducesEvidence(t *testing.T) {
	p := Params{PLearn: 0, PGuess: 0.25, PSlip: 0.1}
	got := Update(0.6, false, p)
	if got >= 0.6 {
		t.Errorf("with no learning step, incorrect answer should lower mastery: %v", got)
	}
}

func TestUpdateDegenerateDenominator(t *testing.T) {
	// prior=0 with pGuess=0 makes the correct-evidence denominator zero;
	// the update must not NaN.
	got := Update(0, true, Params{PLearn: 0.4, PGuess: 0, PSlip: 0})
	if math.IsNaN(got) {
		t.Fatal("Update returned NaN on degenerate denominator")
	}
	if got < 0 || got > 1 {
		t.Errorf("Update = %v, out of [0,1]", got)
	}
}

func TestIsMastered(t *testing.T) {
	// The boundary behavior must hold for any threshold in (0.7, 0.9].
	for _, threshold := range []float64{0.71, 0.75, DefaultThreshold, 0.85, 0.9} {
		if IsMastered(0.7, threshold) {
			t.Errorf("IsMastered(0.7, %v) = true, want false", threshold)
		}
		if !IsMastered(0.9, threshold) {
			t.Errorf("IsMastered(0.9, %v) = false, want true", threshold)
		}
	}

	// Threshold is inclusive.
	if !IsMastered(0.8, 0.8) {
		t.Error("IsMastered(0.8, 0.8) = false, want true")
	}
}
