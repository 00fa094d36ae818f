// Code generated by ent, DO NOT EDIT.

package weakarea

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the weakarea type in the database.
	Label = "weak_area"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldConceptScore holds the string denoting the concept_score field in the database.
	FieldConceptScore = "concept_score"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// Table holds the table name of the weakarea in the database.
	Table = "weak_areas"
)

// Columns holds all SQL columns for weakarea fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldSubject,
	FieldConceptScore,
	FieldLastPracticedAt,
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
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
)

// OrderOption defines the ordering options for the WeakArea queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByConceptScore orders the results by the concept_score field.
func ByConceptScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptScore, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}
