package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonRecord is one appended entry in a student's lesson history.
// Rows are append-only: once written they are never updated.
type LessonRecord struct {
	ent.Schema
}

func (LessonRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty().Immutable(),
		field.String("lesson_id").NotEmpty().Unique().Immutable(),
		field.String("subject").NotEmpty().Immutable(),
		field.Time("completed_at").Immutable().
			Comment("UTC completion time; orders the history"),
		field.Float("accuracy").Immutable(),
		field.Float("response_time_secs").Immutable(),
		field.String("resulting_tier").NotEmpty().Immutable().
			Comment("Tier decided for the next lesson in this subject"),
	}
}

func (LessonRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "completed_at"),
		index.Fields("student_id", "subject"),
	}
}
