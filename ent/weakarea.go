// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorbase/timo/ent/weakarea"
)

// WeakArea is the model entity for the WeakArea schema.
type WeakArea struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// 0.0-1.0, lower is weaker
	ConceptScore float64 `json:"concept_score,omitempty"`
	// LastPracticedAt holds the value of the "last_practiced_at" field.
	LastPracticedAt time.Time `json:"last_practiced_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeakArea) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weakarea.FieldConceptScore:
			values[i] = new(sql.NullFloat64)
		case weakarea.FieldID:
			values[i] = new(sql.NullInt64)
		case weakarea.FieldStudentID, weakarea.FieldSubject:
			values[i] = new(sql.NullString)
		case weakarea.FieldLastPracticedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeakArea fields.
func (_m *WeakArea) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weakarea.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case weakarea.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case weakarea.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case weakarea.FieldConceptScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field concept_score", values[i])
			} else if value.Valid {
				_m.ConceptScore = value.Float64
			}
		case weakarea.FieldLastPracticedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced_at", values[i])
			} else if value.Valid {
				_m.LastPracticedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeakArea.
// This includes values selected through modifiers, order, etc.
func (_m *WeakArea) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WeakArea.
// Note that you need to call WeakArea.Unwrap() before calling this method if this WeakArea
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeakArea) Update() *WeakAreaUpdateOne {
	return NewWeakAreaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeakArea entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeakArea) Unwrap() *WeakArea {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WeakArea is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeakArea) String() string {
	var builder strings.Builder
	builder.WriteString("WeakArea(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("concept_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptScore))
	builder.WriteString(", ")
	builder.WriteString("last_practiced_at=")
	builder.WriteString(_m.LastPracticedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WeakAreas is a parsable slice of WeakArea.
type WeakAreas []*WeakArea
