package core

import (
	"context"

	"lifelessons-backend-go/internal/models"
	"lifelessons-backend-go/internal/payments"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	// GetOrCreate returns the user for the request's email, creating it with
	// default role and premium flag on first sign-in. The boolean reports
	// whether a new document was created.
	GetOrCreate(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetRole returns the user's role, defaulting to "user" when no account
	// exists for the email.
	GetRole(ctx context.Context, email string) (string, error)
	// Search lists users ordered by creation time descending. With an empty
	// searchText the result is capped to a fixed page; otherwise a
	// case-insensitive substring match over displayName and email is applied.
	Search(ctx context.Context, searchText string) ([]*models.User, error)
	SetRole(ctx context.Context, email, role string) error
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error
}

// LessonService defines the interface for lesson-related operations.
type LessonService interface {
	Create(ctx context.Context, creatorID string, req models.CreateLessonRequest) (*models.Lesson, error)
	GetByID(ctx context.Context, lessonID string) (*models.Lesson, error)
	// List returns one page of lessons plus pagination metadata. email is an
	// optional owner filter; page and limit fall back to 1 and 8.
	List(ctx context.Context, email string, page, limit int) (*models.LessonPage, error)
	Update(ctx context.Context, lessonID string, req models.UpdateLessonRequest) error
	Delete(ctx context.Context, lessonID string) error
	// ToggleLike flips the user's like on the lesson and returns the resulting
	// liked state.
	ToggleLike(ctx context.Context, lessonID, userID string) (bool, error)
	// BannerImages returns the image URLs of the most recent lessons.
	BannerImages(ctx context.Context) ([]string, error)
}

// SavedLessonService defines the interface for save-toggle operations.
type SavedLessonService interface {
	Toggle(ctx context.Context, lessonID, userID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]*models.SavedLesson, error)
	Delete(ctx context.Context, savedLessonID string) error
}

// ReportService defines the interface for moderation-report operations.
type ReportService interface {
	Create(ctx context.Context, req models.CreateReportRequest) (*models.LessonReport, error)
	List(ctx context.Context) ([]*models.LessonReport, error)
	UpdateStatus(ctx context.Context, reportID, status string) error
	Delete(ctx context.Context, reportID string) error
}

// StatsService defines the read-only aggregation reports.
type StatsService interface {
	Dashboard(ctx context.Context, email, userID string) (*models.DashboardStats, error)
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	UserGrowth(ctx context.Context) ([]models.DateCount, error)
	TopContributors(ctx context.Context) ([]models.Contributor, error)
}

// BillingService defines the interface for checkout and payment recording.
type BillingService interface {
	CreateCheckoutSession(ctx context.Context, email string, price float64) (*payments.CheckoutSession, error)
	// ConfirmPayment verifies the checkout session with the gateway, records
	// the payment and flips the user's premium flag. At most one payment
	// record and one premium flip is ever produced per transaction; the
	// boolean reports whether this call was a duplicate.
	ConfirmPayment(ctx context.Context, email, sessionID string) (*models.Payment, bool, error)
}
