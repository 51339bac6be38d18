package db

import (
	"context"
	"time"

	"lifelessons-backend-go/internal/models"
)

// UserRepository defines the interface for user data storage operations.
// Documents are keyed by email.
type UserRepository interface {
	// Create inserts a user document. Returns ErrAlreadyExists if a document
	// for the same email is already present.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List returns users ordered by creation time descending. limit <= 0 means
	// no limit.
	List(ctx context.Context, limit int) ([]*models.User, error)
	ListCreatedAfter(ctx context.Context, since time.Time) ([]*models.User, error)
	SetRole(ctx context.Context, email, role string) error
	UpdateProfile(ctx context.Context, email string, fields map[string]interface{}) error
	SetPremium(ctx context.Context, email string, premium bool) error
	Count(ctx context.Context) (int, error)
}

// LessonRepository defines the interface for lesson data storage operations.
type LessonRepository interface {
	Create(ctx context.Context, lesson *models.Lesson) (string, error)
	GetByID(ctx context.Context, lessonID string) (*models.Lesson, error)
	// List returns lessons ordered by creation time descending, optionally
	// filtered by owner email. offset/limit of 0 mean unbounded.
	List(ctx context.Context, email string, offset, limit int) ([]*models.Lesson, error)
	Count(ctx context.Context, email string) (int, error)
	ListCreatedAfter(ctx context.Context, since time.Time) ([]*models.Lesson, error)
	Update(ctx context.Context, lessonID string, fields map[string]interface{}) error
	Delete(ctx context.Context, lessonID string) error
	// ToggleLike atomically flips userID's membership in the lesson's likedBy
	// set and adjusts likesCount in the same write. Returns the resulting
	// liked state.
	ToggleLike(ctx context.Context, lessonID, userID string) (bool, error)
}

// ReportRepository defines the interface for lesson-report storage operations.
// Documents are keyed by "<lessonId>_<reporterUserId>".
type ReportRepository interface {
	// Create inserts a report. Returns ErrAlreadyExists when the same reporter
	// has already reported the same lesson.
	Create(ctx context.Context, report *models.LessonReport) (string, error)
	List(ctx context.Context) ([]*models.LessonReport, error)
	UpdateStatus(ctx context.Context, reportID, status string) error
	Delete(ctx context.Context, reportID string) error
}

// SavedLessonRepository defines the interface for saved-lesson marker storage.
// Documents are keyed by "<lessonId>_<userId>".
type SavedLessonRepository interface {
	// Toggle removes the marker if present, inserts it if absent, atomically.
	// Returns the resulting saved state.
	Toggle(ctx context.Context, lessonID, userID string) (bool, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.SavedLesson, error)
	Delete(ctx context.Context, savedLessonID string) error
	CountByUserID(ctx context.Context, userID string) (int, error)
}

// PaymentRepository defines the interface for payment record storage.
// Documents are keyed by the gateway transaction ID.
type PaymentRepository interface {
	// Create inserts a payment record. Returns ErrAlreadyExists when the
	// transaction has already been recorded.
	Create(ctx context.Context, payment *models.Payment) error
	Count(ctx context.Context) (int, error)
}
