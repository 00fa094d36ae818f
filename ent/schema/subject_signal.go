package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubjectSignal persists the per-(student, subject) estimator state
// between lessons: Elo rating, BKT mastery probability, and IRT ability.
type SubjectSignal struct {
	ent.Schema
}

func (SubjectSignal) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty().Immutable(),
		field.String("subject").NotEmpty().Immutable(),
		field.Float("rating"),
		field.Float("mastery"),
		field.Float("ability"),
		field.Int("attempts"),
	}
}

func (SubjectSignal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "subject").Unique(),
	}
}
