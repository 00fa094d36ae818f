// Code generated by ent, DO NOT EDIT.

package lessonrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonrecord type in the database.
	Label = "lesson_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldResponseTimeSecs holds the string denoting the response_time_secs field in the database.
	FieldResponseTimeSecs = "response_time_secs"
	// FieldResultingTier holds the string denoting the resulting_tier field in the database.
	FieldResultingTier = "resulting_tier"
	// Table holds the table name of the lessonrecord in the database.
	Table = "lesson_records"
)

// Columns holds all SQL columns for lessonrecord fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldLessonID,
	FieldSubject,
	FieldCompletedAt,
	FieldAccuracy,
	FieldResponseTimeSecs,
	FieldResultingTier,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// ResultingTierValidator is a validator for the "resulting_tier" field. It is called by the builders before save.
	ResultingTierValidator func(string) error
)

// OrderOption defines the ordering options for the LessonRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByResponseTimeSecs orders the results by the response_time_secs field.
func ByResponseTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeSecs, opts...).ToFunc()
}

// ByResultingTier orders the results by the resulting_tier field.
func ByResultingTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultingTier, opts...).ToFunc()
}
