package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifelessons-backend-go/internal/core"
	"lifelessons-backend-go/internal/models"
)

// BillingHandler handles checkout and payment-confirmation endpoints.
type BillingHandler struct {
	billingService core.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(bs core.BillingService) *BillingHandler {
	return &BillingHandler{billingService: bs}
}

// CreateCheckoutSession handles POST /create-checkout-session (authenticated).
// The session is tagged with the caller's email and priced from the request.
func (h *BillingHandler) CreateCheckoutSession(c *gin.Context) {
	email, ok := contextUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User email not found in context"})
		return
	}

	var req models.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	session, err := h.billingService.CreateCheckoutSession(c.Request.Context(), email, req.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CheckoutSessionResponse{ID: session.ID, URL: session.URL})
}

// PaymentSuccess handles POST /payment-success. For a given transaction at
// most one payment record and one premium flip is ever produced, no matter how
// many times this endpoint is invoked.
func (h *BillingHandler) PaymentSuccess(c *gin.Context) {
	var req models.PaymentSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	payment, alreadyRecorded, err := h.billingService.ConfirmPayment(c.Request.Context(), req.Email, req.SessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if alreadyRecorded {
		c.JSON(http.StatusOK, PaymentSuccessResponse{
			Message:         "payment already recorded",
			AlreadyRecorded: true,
		})
		return
	}
	c.JSON(http.StatusCreated, PaymentSuccessResponse{
		Message:       "payment recorded",
		TransactionID: payment.TransactionID,
	})
}
