package progress

import "testing"

func TestTierAdjacency(t *testing.T) {
	tests := []struct {
		tier     Tier
		wantNext Tier
		wantPrev Tier
	}{
		{TierEasy, TierMedium, TierEasy},
		{TierMedium, TierHard, TierEasy},
		{TierHard, TierOlympiad, TierMedium},
		{TierOlympiad, TierOlympiad, TierHard},
	}

	for _, tt := range tests {
		if got := tt.tier.Next(); got != tt.wantNext {
			t.Errorf("%s.Next() = %s, want %s", tt.tier, got, tt.wantNext)
		}
		if got := tt.tier.Prev(); got != tt.wantPrev {
			t.Errorf("%s.Prev() = %s, want %s", tt.tier, got, tt.wantPrev)
		}
	}
}

func TestTierStringRoundTrip(t *testing.T) {
	for _, tier := range AllTiers() {
		if got := TierFromString(tier.String()); got != tier {
			t.Errorf("TierFromString(%q) = %s, want %s", tier.String(), got, tier)
		}
		if !tier.Valid() {
			t.Errorf("%s.Valid() = false", tier)
		}
	}

	// Unknown strings fall back to the placement default.
	if got := TierFromString("banana"); got != TierMedium {
		t.Errorf("TierFromString(unknown) = %s, want medium", got)
	}
}
