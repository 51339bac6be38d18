package models

import "time"

// SavedLesson is a marker document: its presence means the user has saved the
// lesson. The document ID is "<lessonId>_<userId>", toggled inside a Firestore
// transaction so concurrent double-toggles from the same user cannot produce
// duplicate rows.
type SavedLesson struct {
	ID        string    `json:"id" firestore:"-"`
	LessonID  string    `json:"lessonId" firestore:"lessonId"`
	UserID    string    `json:"userId" firestore:"userId"` // Auth UID of the saver
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
