package progress

// Tier represents a lesson difficulty tier. Tiers form a linear chain
// Easy → Medium → Hard → Olympiad; transitions move along adjacent
// tiers only, via Next and Prev.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
	TierOlympiad
)

// AllTiers returns all tiers in ascending order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard, TierOlympiad}
}

// Next returns the tier one step up, saturating at Olympiad.
func (t Tier) Next() Tier {
	if t >= TierOlympiad {
		return TierOlympiad
	}
	return t + 1
}

// Prev returns the tier one step down, saturating at Easy.
func (t Tier) Prev() Tier {
	if t <= TierEasy {
		return TierEasy
	}
	return t - 1
}

// Valid reports whether t is one of the four defined tiers.
func (t Tier) Valid() bool {
	return t >= TierEasy && t <= TierOlympiad
}

// String returns the canonical string form of the tier.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	case TierOlympiad:
		return "olympiad"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	case TierOlympiad:
		return "Olympiad"
	default:
		return "Unknown"
	}
}

// TierFromString parses a tier string back to the Tier type.
// Unknown strings map to TierMedium, the placement default.
func TierFromString(s string) Tier {
	switch s {
	case "easy":
		return TierEasy
	case "medium":
		return TierMedium
	case "hard":
		return TierHard
	case "olympiad":
		return TierOlympiad
	default:
		return TierMedium
	}
}
