package progress

import (
	"time"

	"github.com/google/uuid"
)

// LessonStatus represents a lesson's position in its lifecycle.
type LessonStatus string

const (
	StatusNotStarted LessonStatus = "not-started"
	StatusInProgress LessonStatus = "in-progress"
	StatusCompleted  LessonStatus = "completed"
)

// Lesson is a single practice session under evaluation. Difficulty
// adaptation only ever looks at completed lessons; an in-progress
// lesson is never consulted.
type Lesson struct {
	ID               string
	StudentID        string
	Subject          Subject
	Accuracy         float64 // fraction of questions answered correctly, 0.0-1.0
	ResponseTimeSecs float64 // total time spent answering
	Status           LessonStatus
	CompletedAt      time.Time
}

// NewLesson creates a not-yet-started lesson for a student and subject.
func NewLesson(studentID string, subject Subject) *Lesson {
	return &Lesson{
		ID:        uuid.New().String(),
		StudentID: studentID,
		Subject:   subject,
		Status:    StatusNotStarted,
	}
}

// Start marks the lesson in progress.
func (l *Lesson) Start() {
	l.Status = StatusInProgress
}

// Complete records the lesson outcome and marks it completed.
// Accuracy is clamped to [0,1].
func (l *Lesson) Complete(accuracy, responseTimeSecs float64, at time.Time) {
	if accuracy < 0 {
		accuracy = 0
	}
	if accuracy > 1 {
		accuracy = 1
	}
	l.Accuracy = accuracy
	l.ResponseTimeSecs = responseTimeSecs
	l.Status = StatusCompleted
	l.CompletedAt = at
}
