// Package ability implements a 3-parameter logistic Item Response Theory
// model: the probability a student of given ability answers a question
// correctly, and a single-step ability correction from one observed
// outcome.
package ability

import "math"

const (
	// MinAbility and MaxAbility bound the logistic ability scale.
	MinAbility = -4.0
	MaxAbility = 4.0

	// DefaultLearningRate scales the single-step ability correction.
	DefaultLearningRate = 0.2
)

// ItemParams describes one question's response curve.
type ItemParams struct {
	Discrimination float64 // a > 0, steepness of the curve
	Difficulty     float64 // b, ability at the curve's midpoint
	Guessing       float64 // c in [0,1), floor probability
}

// DefaultItemParams returns the parameters used for questions ingested
// without calibrated values.
func DefaultItemParams() ItemParams {
	return ItemParams{
		Discrimination: 1.0,
		Difficulty:     0.0,
		Guessing:       0.25,
	}
}

// ProbabilityCorrect returns the 3PL probability of a correct answer:
// c + (1-c) / (1 + exp(-a*(ability-b))). Monotonic increasing in
// ability; at ability = b the probability is c + (1-c)/2.
func ProbabilityCorrect(ability float64, p ItemParams) float64 {
	return p.Guessing + (1-p.Guessing)/(1+math.Exp(-p.Discrimination*(ability-p.Difficulty)))
}

// Update applies one observed outcome to the current ability estimate
// using the default learning rate. The correction moves ability toward
// agreement between predicted and observed outcomes; the result is
// clamped to [MinAbility, MaxAbility].
func Update(current float64, p ItemParams, correct bool) float64 {
	return UpdateRate(current, p, correct, DefaultLearningRate)
}

// UpdateRate is Update with an explicit learning rate.
func UpdateRate(current float64, p ItemParams, correct bool, learningRate float64) float64 {
	current = clamp(current, MinAbility, MaxAbility)

	actual := 0.0
	if correct {
		actual = 1.0
	}
	predicted := ProbabilityCorrect(current, p)

	next := current + learningRate*p.Discrimination*(actual-predicted)
	return clamp(next, MinAbility, MaxAbility)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
