package models

import "time"

// Report status values.
const (
	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
	ReportStatusResolved = "resolved"
)

// LessonReport represents a moderation report filed against a lesson.
// The document ID is "<lessonId>_<reporterUserId>", so the at-most-one-report
// invariant per (lesson, reporter) pair holds at the store level.
type LessonReport struct {
	ID                  string    `json:"id" firestore:"-"`
	LessonID            string    `json:"lessonId" firestore:"lessonId"`
	ReportedLessonTitle string    `json:"reportedLessonTitle,omitempty" firestore:"reportedLessonTitle"`
	ReporterUserID      string    `json:"reporterUserId" firestore:"reporterUserId"`
	ReportedUserEmail   string    `json:"reportedUserEmail,omitempty" firestore:"reportedUserEmail"`
	Reason              string    `json:"reason" firestore:"reason"`
	Status              string    `json:"status" firestore:"status"` // pending, reviewed or resolved
	CreatedAt           time.Time `json:"createdAt" firestore:"createdAt"`
}
