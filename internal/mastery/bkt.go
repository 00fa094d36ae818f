// Package mastery implements Bayesian Knowledge Tracing: a two-state
// hidden Markov model of per-concept mastery, updated per attempt via
// Bayes' rule and then advanced by a learning-transition probability.
package mastery

// Params holds the BKT parameters for a concept.
type Params struct {
	// PLearn is the probability of transitioning to mastery after an
	// attempt while unmastered.
	PLearn float64
	// PGuess is the probability of answering correctly while unmastered.
	PGuess float64
	// PSlip is the probability of answering incorrectly while mastered.
	PSlip float64
}

// DefaultParams returns the parameter values used when a question does
// not supply its own.
func DefaultParams() Params {
	return Params{
		PLearn: 0.4,
		PGuess: 0.25,
		PSlip:  0.1,
	}
}

// DefaultThreshold is the mastery probability at which a concept counts
// as mastered.
const DefaultThreshold = 0.8

// DefaultPrior is the starting mastery probability for an unseen concept.
const DefaultPrior = 0.3

// Update applies one attempt outcome to the prior mastery probability.
// The evidence step conditions the prior on the observed outcome; the
// learning step then applies the transition probability. The result is
// always in [0,1].
func Update(prior float64, correct bool, p Params) float64 {
	prior = clamp01(prior)

	var evidence float64
	if correct {
		denom := prior*(1-p.PSlip) + (1-prior)*p.PGuess
		if denom <= 0 {
			evidence = prior
		} else {
			evidence = prior * (1 - p.PSlip) / denom
		}
	} else {
		denom := prior*p.PSlip + (1-prior)*(1-p.PGuess)
		if denom <= 0 {
			evidence = prior
		} else {
			evidence = prior * p.PSlip / denom
		}
	}

	return clamp01(evidence + (1-evidence)*p.PLearn)
}

// IsMastered reports whether a mastery probability meets the threshold.
func IsMastered(mastery, threshold float64) bool {
	return mastery >= threshold
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
