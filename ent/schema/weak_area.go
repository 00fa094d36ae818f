package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WeakArea flags a subject a student has recently underperformed on.
// At most one row exists per (student, subject); a newer observation
// replaces the prior one.
type WeakArea struct {
	ent.Schema
}

func (WeakArea) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty().Immutable(),
		field.String("subject").NotEmpty().Immutable(),
		field.Float("concept_score").
			Comment("0.0-1.0, lower is weaker"),
		field.Time("last_practiced_at"),
	}
}

func (WeakArea) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "subject").Unique(),
	}
}
