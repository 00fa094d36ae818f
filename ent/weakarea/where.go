// Code generated by ent, DO NOT EDIT.

package weakarea

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tutorbase/timo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEQ(FieldStudentID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEQ(FieldSubject, v))
}

// ConceptScore applies equality check predicate on the "concept_score" field. It's identical to ConceptScoreEQ.
func ConceptScore(v float64) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEQ(FieldConceptScore, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEQ(FieldLastPracticedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldContainsFold(FieldStudentID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldContainsFold(FieldSubject, v))
}

// ConceptScoreEQ applies the EQ predicate on the "concept_score" field.
func ConceptScoreEQ(v float64) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEQ(FieldConceptScore, v))
}

// ConceptScoreNEQ applies the NEQ predicate on the "concept_score" field.
func ConceptScoreNEQ(v float64) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldNEQ(FieldConceptScore, v))
}

// ConceptScoreIn applies the In predicate on the "concept_score" field.
func ConceptScoreIn(vs ...float64) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldIn(FieldConceptScore, vs...))
}

// ConceptScoreNotIn applies the NotIn predicate on the "concept_score" field.
func ConceptScoreNotIn(vs ...float64) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldNotIn(FieldConceptScore, vs...))
}

// ConceptScoreGT applies the GT predicate on the "concept_score" field.
func ConceptScoreGT(v float64) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldGT(FieldConceptScore, v))
}

// ConceptScoreGTE applies the GTE predicate on the "concept_score" field.
func ConceptScoreGTE(v float64) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldGTE(FieldConceptScore, v))
}

// ConceptScoreLT applies the LT predicate on the "concept_score" field.
func ConceptScoreLT(v float64) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldLT(FieldConceptScore, v))
}

// ConceptScoreLTE applies the LTE predicate on the "concept_score" field.
func ConceptScoreLTE(v float64) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldLTE(FieldConceptScore, v))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.WeakArea {
	return predicate.WeakArea(sql.FieldLTE(FieldLastPracticedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeakArea) predicate.WeakArea {
	return predicate.WeakArea(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeakArea) predicate.WeakArea {
	return predicate.WeakArea(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeakArea) predicate.WeakArea {
	return predicate.WeakArea(sql.NotPredicates(p))
}
