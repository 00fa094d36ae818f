// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LessonRecordsColumns holds the columns for the "lesson_records" table.
	LessonRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString, Unique: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "response_time_secs", Type: field.TypeFloat64},
		{Name: "resulting_tier", Type: field.TypeString},
	}
	// LessonRecordsTable holds the schema information for the "lesson_records" table.
	LessonRecordsTable = &schema.Table{
		Name:       "lesson_records",
		Columns:    LessonRecordsColumns,
		PrimaryKey: []*schema.Column{LessonRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonrecord_student_id_completed_at",
				Unique:  false,
				Columns: []*schema.Column{LessonRecordsColumns[1], LessonRecordsColumns[4]},
			},
			{
				Name:    "lessonrecord_student_id_subject",
				Unique:  false,
				Columns: []*schema.Column{LessonRecordsColumns[1], LessonRecordsColumns[3]},
			},
		},
	}
	// SubjectSignalsColumns holds the columns for the "subject_signals" table.
	SubjectSignalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "rating", Type: field.TypeFloat64},
		{Name: "mastery", Type: field.TypeFloat64},
		{Name: "ability", Type: field.TypeFloat64},
		{Name: "attempts", Type: field.TypeInt},
	}
	// SubjectSignalsTable holds the schema information for the "subject_signals" table.
	SubjectSignalsTable = &schema.Table{
		Name:       "subject_signals",
		Columns:    SubjectSignalsColumns,
		PrimaryKey: []*schema.Column{SubjectSignalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subjectsignal_student_id_subject",
				Unique:  true,
				Columns: []*schema.Column{SubjectSignalsColumns[1], SubjectSignalsColumns[2]},
			},
		},
	}
	// WeakAreasColumns holds the columns for the "weak_areas" table.
	WeakAreasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "concept_score", Type: field.TypeFloat64},
		{Name: "last_practiced_at", Type: field.TypeTime},
	}
	// WeakAreasTable holds the schema information for the "weak_areas" table.
	WeakAreasTable = &schema.Table{
		Name:       "weak_areas",
		Columns:    WeakAreasColumns,
		PrimaryKey: []*schema.Column{WeakAreasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weakarea_student_id_subject",
				Unique:  true,
				Columns: []*schema.Column{WeakAreasColumns[1], WeakAreasColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LessonRecordsTable,
		SubjectSignalsTable,
		WeakAreasTable,
	}
)

func init() {
}
