package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/tutorbase/timo/internal/ability"
	"github.com/tutorbase/timo/internal/mastery"
	"github.com/tutorbase/timo/internal/progress"
	"github.com/tutorbase/timo/internal/rating"
)

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// rawQuestion mirrors the ingest payload shape.
type rawQuestion struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Tier    string `json:"tier"`
	Format  string `json:"format"`
	Text    string `json:"text"`
	Answer  string `json:"answer"`
	Params  *struct {
		EloRating *float64 `json:"elo_rating"`
		BKT       *struct {
			PLearn float64 `json:"p_learn"`
			PGuess float64 `json:"p_guess"`
			PSlip  float64 `json:"p_slip"`
		} `json:"bkt"`
		IRT *struct {
			Discrimination float64 `json:"discrimination"`
			Difficulty     float64 `json:"difficulty"`
			Guessing       float64 `json:"guessing"`
		} `json:"irt"`
	} `json:"params"`
}

// Ingest validates a raw question payload against the ingest schema and
// returns the question with its parameters resolved. Missing parameters
// are filled deterministically from the question's own ID, so repeated
// ingestion of the same payload always yields the same parameters.
func Ingest(raw []byte) (*Question, error) {
	compiled, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile ingest schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("question payload rejected: %w", err)
	}

	var rq rawQuestion
	if err := json.Unmarshal(raw, &rq); err != nil {
		return nil, fmt.Errorf("decode question: %w", err)
	}

	tier := progress.TierFromString(rq.Tier)
	q := &Question{
		ID:      rq.ID,
		Subject: progress.Subject(rq.Subject),
		Tier:    tier,
		Format:  Format(rq.Format),
		Text:    rq.Text,
		Answer:  rq.Answer,
		Params:  DefaultParamsFor(rq.ID, tier),
	}

	if rq.Params != nil {
		if rq.Params.EloRating != nil {
			q.Params.EloRating = *rq.Params.EloRating
		}
		if rq.Params.BKT != nil {
			q.Params.BKT = mastery.Params{
				PLearn: rq.Params.BKT.PLearn,
				PGuess: rq.Params.BKT.PGuess,
				PSlip:  rq.Params.BKT.PSlip,
			}
		}
		if rq.Params.IRT != nil {
			q.Params.IRT = ability.ItemParams{
				Discrimination: rq.Params.IRT.Discrimination,
				Difficulty:     rq.Params.IRT.Difficulty,
				Guessing:       rq.Params.IRT.Guessing,
			}
		}
	}

	if err := ValidateParams(q.Params); err != nil {
		return nil, fmt.Errorf("question %s: %w", q.ID, err)
	}
	return q, nil
}

// ValidateParams enforces the estimator contracts on item parameters.
// The estimators themselves never check these; ingestion is the boundary
// where violations are caught.
func ValidateParams(p Params) error {
	if p.IRT.Discrimination <= 0 {
		return fmt.Errorf("irt discrimination must be > 0, got %g", p.IRT.Discrimination)
	}
	if p.IRT.Guessing < 0 || p.IRT.Guessing >= 1 {
		return fmt.Errorf("irt guessing must be in [0,1), got %g", p.IRT.Guessing)
	}
	if p.EloRating < rating.MinRating || p.EloRating > rating.MaxRating {
		return fmt.Errorf("elo rating must be in [%g,%g], got %g", rating.MinRating, rating.MaxRating, p.EloRating)
	}
	for name, v := range map[string]float64{
		"p_learn": p.BKT.PLearn,
		"p_guess": p.BKT.PGuess,
		"p_slip":  p.BKT.PSlip,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("bkt %s must be in [0,1], got %g", name, v)
		}
	}
	return nil
}

// getCompiledSchema compiles the ingest schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal for a clean representation.
		defBytes, err := json.Marshal(ingestSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-ingest.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
