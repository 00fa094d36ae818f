// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorbase/timo/ent/lessonrecord"
)

// LessonRecord is the model entity for the LessonRecord schema.
type LessonRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// UTC completion time; orders the history
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Accuracy holds the value of the "accuracy" field.
	Accuracy float64 `json:"accuracy,omitempty"`
	// ResponseTimeSecs holds the value of the "response_time_secs" field.
	ResponseTimeSecs float64 `json:"response_time_secs,omitempty"`
	// Tier decided for the next lesson in this subject
	ResultingTier string `json:"resulting_tier,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonrecord.FieldAccuracy, lessonrecord.FieldResponseTimeSecs:
			values[i] = new(sql.NullFloat64)
		case lessonrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case lessonrecord.FieldStudentID, lessonrecord.FieldLessonID, lessonrecord.FieldSubject, lessonrecord.FieldResultingTier:
			values[i] = new(sql.NullString)
		case lessonrecord.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonRecord fields.
func (_m *LessonRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonrecord.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case lessonrecord.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessonrecord.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case lessonrecord.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		case lessonrecord.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case lessonrecord.FieldResponseTimeSecs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_secs", values[i])
			} else if value.Valid {
				_m.ResponseTimeSecs = value.Float64
			}
		case lessonrecord.FieldResultingTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resulting_tier", values[i])
			} else if value.Valid {
				_m.ResultingTier = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonRecord.
// This includes values selected through modifiers, order, etc.
func (_m *LessonRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonRecord.
// Note that you need to call LessonRecord.Unwrap() before calling this method if this LessonRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonRecord) Update() *LessonRecordUpdateOne {
	return NewLessonRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonRecord) Unwrap() *LessonRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonRecord) String() string {
	var builder strings.Builder
	builder.WriteString("LessonRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("response_time_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTimeSecs))
	builder.WriteString(", ")
	builder.WriteString("resulting_tier=")
	builder.WriteString(_m.ResultingTier)
	builder.WriteByte(')')
	return builder.String()
}

// LessonRecords is a parsable slice of LessonRecord.
type LessonRecords []*LessonRecord
