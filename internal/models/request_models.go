package models

// CreateUserRequest represents the request body for the first-sign-in user
// create. Creation is idempotent by email: posting the same email twice never
// creates a second document.
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// UpdateRoleRequest represents the request body for the admin role patch.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"` // "user" or "admin"
}

// UpdateProfileRequest represents the request body for the admin profile patch.
// Pointers distinguish "clear this field" from "field not provided".
type UpdateProfileRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	DisplayName *string `json:"displayName,omitempty"`
	PhotoURL    *string `json:"photoURL,omitempty"`
}

// CreateLessonRequest represents the request body for creating a lesson.
// Every field is required; a missing one is a validation error and nothing is
// inserted.
type CreateLessonRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Category      string `json:"category" binding:"required"`
	EmotionalTone string `json:"emotionalTone" binding:"required"`
	Image         string `json:"image" binding:"required"`
	AccessLevel   string `json:"accessLevel" binding:"required"`
	Privacy       string `json:"privacy" binding:"required"` // "Public" or "Private"
}

// UpdateLessonRequest represents the request body for the lesson field-replace
// patch. Pointers are used so only the provided fields are written.
type UpdateLessonRequest struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Category      *string `json:"category,omitempty"`
	EmotionalTone *string `json:"emotionalTone,omitempty"`
	Image         *string `json:"image,omitempty"`
	AccessLevel   *string `json:"accessLevel,omitempty"`
	Privacy       *string `json:"privacy,omitempty"`
	CreatedAt     *string `json:"createdAt,omitempty"` // RFC 3339; replaced verbatim when provided
}

// CreateReportRequest represents the request body for filing a lesson report.
type CreateReportRequest struct {
	LessonID            string `json:"lessonId" binding:"required"`
	ReportedLessonTitle string `json:"reportedLessonTitle,omitempty"`
	ReporterUserID      string `json:"reporterUserId" binding:"required"`
	ReportedUserEmail   string `json:"reportedUserEmail,omitempty"`
	Reason              string `json:"reason" binding:"required"`
}

// UpdateReportStatusRequest represents the request body for the moderation
// status patch. Only the status field is ever replaced.
type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required"` // pending, reviewed or resolved
}

// ToggleSaveRequest represents the request body for the save toggle. The
// acting user comes from the verified token, not the body.
type ToggleSaveRequest struct {
	LessonID string `json:"lessonId" binding:"required"`
}

// CreateCheckoutSessionRequest represents the request body for starting a
// checkout. Price is in whole currency units (e.g. dollars).
type CreateCheckoutSessionRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentSuccessRequest represents the request body for confirming a checkout
// session and recording the payment.
type PaymentSuccessRequest struct {
	Email     string `json:"email" binding:"required,email"`
	SessionID string `json:"sessionId" binding:"required"`
}
