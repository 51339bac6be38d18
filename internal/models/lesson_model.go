package models

import "time"

// Privacy values stored on a lesson document.
const (
	PrivacyPublic  = "Public"
	PrivacyPrivate = "Private"
)

// Lesson represents a single life-lesson post.
type Lesson struct {
	ID            string    `json:"id" firestore:"-"` // Firestore auto-generated document ID
	Email         string    `json:"email" firestore:"email"` // Owner's email
	CreatorID     string    `json:"creatorId" firestore:"creatorId"` // Owner's auth UID
	Title         string    `json:"title" firestore:"title"`
	Description   string    `json:"description" firestore:"description"`
	Category      string    `json:"category" firestore:"category"`
	EmotionalTone string    `json:"emotionalTone" firestore:"emotionalTone"`
	Image         string    `json:"image" firestore:"image"`
	AccessLevel   string    `json:"accessLevel" firestore:"accessLevel"`
	Privacy       string    `json:"privacy" firestore:"privacy"` // "Public" or "Private"
	LikedBy       []string  `json:"likedBy" firestore:"likedBy"` // Auth UIDs of users who liked this lesson
	LikesCount    int       `json:"likesCount" firestore:"likesCount"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}

// LessonPage is one page of a lesson listing plus its pagination metadata.
// TotalPages is ceil(Total/limit).
type LessonPage struct {
	Lessons    []*Lesson `json:"lessons"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}
