// Code generated by ent, DO NOT EDIT.

package subjectsignal

import (
	"entgo.io/ent/dialect/sql"
	"github.com/tutorbase/timo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldStudentID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldSubject, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldRating, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldMastery, v))
}

// Ability applies equality check predicate on the "ability" field. It's identical to AbilityEQ.
func Ability(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldAbility, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldAttempts, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldContainsFold(FieldStudentID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldContainsFold(FieldSubject, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLTE(FieldRating, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLTE(FieldMastery, v))
}

// AbilityEQ applies the EQ predicate on the "ability" field.
func AbilityEQ(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldAbility, v))
}

// AbilityNEQ applies the NEQ predicate on the "ability" field.
func AbilityNEQ(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNEQ(FieldAbility, v))
}

// AbilityIn applies the In predicate on the "ability" field.
func AbilityIn(vs ...float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldIn(FieldAbility, vs...))
}

// AbilityNotIn applies the NotIn predicate on the "ability" field.
func AbilityNotIn(vs ...float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNotIn(FieldAbility, vs...))
}

// AbilityGT applies the GT predicate on the "ability" field.
func AbilityGT(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGT(FieldAbility, v))
}

// AbilityGTE applies the GTE predicate on the "ability" field.
func AbilityGTE(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGTE(FieldAbility, v))
}

// AbilityLT applies the LT predicate on the "ability" field.
func AbilityLT(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLT(FieldAbility, v))
}

// AbilityLTE applies the LTE predicate on the "ability" field.
func AbilityLTE(v float64) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLTE(FieldAbility, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.FieldLTE(FieldAttempts, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubjectSignal) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubjectSignal) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubjectSignal) predicate.SubjectSignal {
	return predicate.SubjectSignal(sql.NotPredicates(p))
}
