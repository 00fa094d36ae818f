package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorbase/timo/internal/progress"
)

func TestIngestValidPayload(t *testing.T) {
	raw := []byte(`{
		"id": "q-001",
		"subject": "arithmetic",
		"tier": "medium",
		"format": "open-ended",
		"text": "What is 17 + 25?",
		"answer": "42"
	}`)

	q, err := Ingest(raw)
	require.NoError(t, err)

	assert.Equal(t, "q-001", q.ID)
	assert.Equal(t, progress.SubjectArithmetic, q.Subject)
	assert.Equal(t, progress.TierMedium, q.Tier)
	assert.Equal(t, FormatOpenEnded, q.Format)

	// Defaults were filled in and satisfy the parameter contracts.
	assert.NoError(t, ValidateParams(q.Params))
	assert.InDelta(t, 1200, q.Params.EloRating, 75)
}

func TestIngestCalibratedParams(t *testing.T) {
	raw := []byte(`{
		"id": "q-002",
		"subject": "geometry",
		"tier": "hard",
		"format": "multiple-choice",
		"text": "How many diagonals does a hexagon have?",
		"answer": "9",
		"params": {
			"elo_rating": 1450,
			"irt": {"discrimination": 1.3, "difficulty": 0.8, "guessing": 0.2}
		}
	}`)

	q, err := Ingest(raw)
	require.NoError(t, err)

	assert.Equal(t, 1450.0, q.Params.EloRating)
	assert.Equal(t, 1.3, q.Params.IRT.Discrimination)
	// BKT was not supplied; the seeded default applies.
	assert.InDelta(t, 0.4, q.Params.BKT.PLearn, 0.1)
}

func TestIngestRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing answer", `{"id":"q","subject":"arithmetic","tier":"easy","format":"open-ended","text":"?"}`},
		{"unknown subject", `{"id":"q","subject":"calculus","tier":"easy","format":"open-ended","text":"?","answer":"1"}`},
		{"unknown tier", `{"id":"q","subject":"arithmetic","tier":"extreme","format":"open-ended","text":"?","answer":"1"}`},
		{"zero discrimination", `{"id":"q","subject":"arithmetic","tier":"easy","format":"open-ended","text":"?","answer":"1",
			"params":{"irt":{"discrimination":0,"difficulty":0,"guessing":0.25}}}`},
		{"guessing of one", `{"id":"q","subject":"arithmetic","tier":"easy","format":"open-ended","text":"?","answer":"1",
			"params":{"irt":{"discrimination":1,"difficulty":0,"guessing":1}}}`},
		{"stray field", `{"id":"q","subject":"arithmetic","tier":"easy","format":"open-ended","text":"?","answer":"1","extra":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Ingest([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestValidateParams(t *testing.T) {
	good := DefaultParamsFor("q", progress.TierMedium)
	assert.NoError(t, ValidateParams(good))

	bad := good
	bad.IRT.Discrimination = -1
	assert.Error(t, ValidateParams(bad))

	bad = good
	bad.BKT.PSlip = 1.5
	assert.Error(t, ValidateParams(bad))

	bad = good
	bad.EloRating = 3000
	assert.Error(t, ValidateParams(bad))
}
