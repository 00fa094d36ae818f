package ability

import (
	"math"
	"testing"
)

func TestProbabilityCorrectAtItemDifficulty(t *testing.T) {
	// At ability = difficulty the probability is exactly c + (1-c)/2.
	tests := []struct {
		a, b, c float64
		want    float64
	}{
		{1, 0, 0.25, 0.625},
		{2, 1.5, 0, 0.5},
		{0.8, -2, 0.5, 0.75},
	}

	for _, tt := range tests {
		p := ItemParams{
			Discrimination: tt.a,
			Difficulty:     tt.b,
			Guessing:       tt.c,
		}
		got := ProbabilityCorrect(p.Difficulty, p)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ProbabilityCorrect(b=%v, %+v) = %v, want %v", p.Difficulty, p, got, tt.want)
		}
	}
}

func TestProbabilityCorrectMonotonicAndBounded(t *testing.T) {
	p := DefaultItemParams()
	prev := -1.0
	for a := MinAbility; a <= MaxAbility; a += 0.1 {
		got := ProbabilityCorrect(a, p)
		if got <= prev {
			t.Fatalf("probability not strictly increasing at ability %v", a)
		}
		if got < p.Guessing || got >= 1 {
			t.Fatalf("probability %v at ability %v outside [c, 1)", got, a)
		}
		prev = got
	}
}

func TestUpdateDirection(t *testing.T) {
	p := DefaultItemParams()
	for _, start := range []float64{-3.9, -1, 0, 1, 3.9} {
		up := Update(start, p, true)
		if up <= start {
			t.Errorf("correct answer did not increase ability from %v: got %v", start, up)
		}
		down := Update(start, p, false)
		if down >= start {
			t.Errorf("incorrect answer did not decrease ability from %v: got %v", start, down)
		}
	}
}

func TestUpdateBounded(t *testing.T) {
	// A very hard item answered correctly over and over drives the
	// estimate up in large steps; it must stop at the ceiling.
	hard := ItemParams{Discrimination: 2.5, Difficulty: 4, Guessing: 0}
	a := 0.0
	for i := 0; i < 1000; i++ {
		a = Update(a, hard, true)
	}
	if a > MaxAbility {
		t.Errorf("ability escaped ceiling: %v", a)
	}

	// Likewise an easy item answered incorrectly must stop at the floor.
	easy := ItemParams{Discrimination: 2.5, Difficulty: -4, Guessing: 0}
	a = 0.0
	for i := 0; i < 1000; i++ {
		a = Update(a, easy, false)
	}
	if a < MinAbility {
		t.Errorf("ability escaped floor: %v", a)
	}
}

func TestUpdateRateScalesStep(t *testing.T) {
	p := DefaultItemParams()
	small := UpdateRate(0, p, true, 0.1)
	large := UpdateRate(0, p, true, 0.4)
	if large <= small {
		t.Errorf("larger learning rate should take a larger step: %v vs %v", large, small)
	}
}
