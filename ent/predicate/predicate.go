// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LessonRecord is the predicate function for lessonrecord builders.
type LessonRecord func(*sql.Selector)

// SubjectSignal is the predicate function for subjectsignal builders.
type SubjectSignal func(*sql.Selector)

// WeakArea is the predicate function for weakarea builders.
type WeakArea func(*sql.Selector)
