// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/tutorbase/timo/ent/lessonrecord"
	"github.com/tutorbase/timo/ent/schema"
	"github.com/tutorbase/timo/ent/subjectsignal"
	"github.com/tutorbase/timo/ent/weakarea"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lessonrecordFields := schema.LessonRecord{}.Fields()
	_ = lessonrecordFields
	// lessonrecordDescStudentID is the schema descriptor for student_id field.
	lessonrecordDescStudentID := lessonrecordFields[0].Descriptor()
	// lessonrecord.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	lessonrecord.StudentIDValidator = lessonrecordDescStudentID.Validators[0].(func(string) error)
	// lessonrecordDescLessonID is the schema descriptor for lesson_id field.
	lessonrecordDescLessonID := lessonrecordFields[1].Descriptor()
	// lessonrecord.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonrecord.LessonIDValidator = lessonrecordDescLessonID.Validators[0].(func(string) error)
	// lessonrecordDescSubject is the schema descriptor for subject field.
	lessonrecordDescSubject := lessonrecordFields[2].Descriptor()
	// lessonrecord.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	lessonrecord.SubjectValidator = lessonrecordDescSubject.Validators[0].(func(string) error)
	// lessonrecordDescResultingTier is the schema descriptor for resulting_tier field.
	lessonrecordDescResultingTier := lessonrecordFields[6].Descriptor()
	// lessonrecord.ResultingTierValidator is a validator for the "resulting_tier" field. It is called by the builders before save.
	lessonrecord.ResultingTierValidator = lessonrecordDescResultingTier.Validators[0].(func(string) error)
	subjectsignalFields := schema.SubjectSignal{}.Fields()
	_ = subjectsignalFields
	// subjectsignalDescStudentID is the schema descriptor for student_id field.
	subjectsignalDescStudentID := subjectsignalFields[0].Descriptor()
	// subjectsignal.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	subjectsignal.StudentIDValidator = subjectsignalDescStudentID.Validators[0].(func(string) error)
	// subjectsignalDescSubject is the schema descriptor for subject field.
	subjectsignalDescSubject := subjectsignalFields[1].Descriptor()
	// subjectsignal.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	subjectsignal.SubjectValidator = subjectsignalDescSubject.Validators[0].(func(string) error)
	weakareaFields := schema.WeakArea{}.Fields()
	_ = weakareaFields
	// weakareaDescStudentID is the schema descriptor for student_id field.
	weakareaDescStudentID := weakareaFields[0].Descriptor()
	// weakarea.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	weakarea.StudentIDValidator = weakareaDescStudentID.Validators[0].(func(string) error)
	// weakareaDescSubject is the schema descriptor for subject field.
	weakareaDescSubject := weakareaFields[1].Descriptor()
	// weakarea.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	weakarea.SubjectValidator = weakareaDescSubject.Validators[0].(func(string) error)
}
