// Code generated by ent, DO NOT EDIT.

package lessonrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tutorbase/timo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldStudentID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldLessonID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldSubject, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldAccuracy, v))
}

// ResponseTimeSecs applies equality check predicate on the "response_time_secs" field. It's identical to ResponseTimeSecsEQ.
func ResponseTimeSecs(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldResponseTimeSecs, v))
}

// ResultingTier applies equality check predicate on the "resulting_tier" field. It's identical to ResultingTierEQ.
func ResultingTier(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldResultingTier, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldContainsFold(FieldStudentID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldContainsFold(FieldLessonID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldContainsFold(FieldSubject, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLTE(FieldCompletedAt, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLTE(FieldAccuracy, v))
}

// ResponseTimeSecsEQ applies the EQ predicate on the "response_time_secs" field.
func ResponseTimeSecsEQ(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldResponseTimeSecs, v))
}

// ResponseTimeSecsNEQ applies the NEQ predicate on the "response_time_secs" field.
func ResponseTimeSecsNEQ(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNEQ(FieldResponseTimeSecs, v))
}

// ResponseTimeSecsIn applies the In predicate on the "response_time_secs" field.
func ResponseTimeSecsIn(vs ...float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldIn(FieldResponseTimeSecs, vs...))
}

// ResponseTimeSecsNotIn applies the NotIn predicate on the "response_time_secs" field.
func ResponseTimeSecsNotIn(vs ...float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNotIn(FieldResponseTimeSecs, vs...))
}

// ResponseTimeSecsGT applies the GT predicate on the "response_time_secs" field.
func ResponseTimeSecsGT(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGT(FieldResponseTimeSecs, v))
}

// ResponseTimeSecsGTE applies the GTE predicate on the "response_time_secs" field.
func ResponseTimeSecsGTE(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGTE(FieldResponseTimeSecs, v))
}

// ResponseTimeSecsLT applies the LT predicate on the "response_time_secs" field.
func ResponseTimeSecsLT(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLT(FieldResponseTimeSecs, v))
}

// ResponseTimeSecsLTE applies the LTE predicate on the "response_time_secs" field.
func ResponseTimeSecsLTE(v float64) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLTE(FieldResponseTimeSecs, v))
}

// ResultingTierEQ applies the EQ predicate on the "resulting_tier" field.
func ResultingTierEQ(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEQ(FieldResultingTier, v))
}

// ResultingTierNEQ applies the NEQ predicate on the "resulting_tier" field.
func ResultingTierNEQ(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNEQ(FieldResultingTier, v))
}

// ResultingTierIn applies the In predicate on the "resulting_tier" field.
func ResultingTierIn(vs ...string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldIn(FieldResultingTier, vs...))
}

// ResultingTierNotIn applies the NotIn predicate on the "resulting_tier" field.
func ResultingTierNotIn(vs ...string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldNotIn(FieldResultingTier, vs...))
}

// ResultingTierGT applies the GT predicate on the "resulting_tier" field.
func ResultingTierGT(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGT(FieldResultingTier, v))
}

// ResultingTierGTE applies the GTE predicate on the "resulting_tier" field.
func ResultingTierGTE(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldGTE(FieldResultingTier, v))
}

// ResultingTierLT applies the LT predicate on the "resulting_tier" field.
func ResultingTierLT(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLT(FieldResultingTier, v))
}

// ResultingTierLTE applies the LTE predicate on the "resulting_tier" field.
func ResultingTierLTE(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldLTE(FieldResultingTier, v))
}

// ResultingTierContains applies the Contains predicate on the "resulting_tier" field.
func ResultingTierContains(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldContains(FieldResultingTier, v))
}

// ResultingTierHasPrefix applies the HasPrefix predicate on the "resulting_tier" field.
func ResultingTierHasPrefix(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldHasPrefix(FieldResultingTier, v))
}

// ResultingTierHasSuffix applies the HasSuffix predicate on the "resulting_tier" field.
func ResultingTierHasSuffix(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldHasSuffix(FieldResultingTier, v))
}

// ResultingTierEqualFold applies the EqualFold predicate on the "resulting_tier" field.
func ResultingTierEqualFold(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldEqualFold(FieldResultingTier, v))
}

// ResultingTierContainsFold applies the ContainsFold predicate on the "resulting_tier" field.
func ResultingTierContainsFold(v string) predicate.LessonRecord {
	return predicate.LessonRecord(sql.FieldContainsFold(FieldResultingTier, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonRecord) predicate.LessonRecord {
	return predicate.LessonRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonRecord) predicate.LessonRecord {
	return predicate.LessonRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonRecord) predicate.LessonRecord {
	return predicate.LessonRecord(sql.NotPredicates(p))
}
