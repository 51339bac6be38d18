package api

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message
	Details string `json:"details,omitempty"` // More specific details, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RoleResponse carries a role lookup result; the role is never empty.
type RoleResponse struct {
	Role string `json:"role"`
}

// ToggleLikeResponse reports the like state after a toggle.
type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

// ToggleSaveResponse reports the save state after a toggle.
type ToggleSaveResponse struct {
	Saved bool `json:"saved"`
}

// BannerImage is one banner entry: the lesson image with every identifying
// field suppressed.
type BannerImage struct {
	Image string `json:"image"`
}

// CheckoutSessionResponse returns the created gateway checkout session.
type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PaymentSuccessResponse acknowledges a confirmed payment. AlreadyRecorded is
// true when the transaction had been recorded by an earlier invocation.
type PaymentSuccessResponse struct {
	Message         string `json:"message"`
	TransactionID   string `json:"transactionId,omitempty"`
	AlreadyRecorded bool   `json:"alreadyRecorded"`
}
