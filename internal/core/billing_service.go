package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"lifelessons-backend-go/internal/db"
	"lifelessons-backend-go/internal/models"
	"lifelessons-backend-go/internal/payments"
)

// ErrPaymentNotCompleted is returned when payment-success is invoked for a
// checkout session the gateway does not report as paid.
var ErrPaymentNotCompleted = errors.New("checkout session is not paid")

// ErrGateway wraps failures talking to the payment gateway.
var ErrGateway = errors.New("payment gateway operation failed")

// billingService implements the BillingService interface against a payment
// gateway and the user/payment repositories.
type billingService struct {
	gateway     payments.Gateway
	userRepo    db.UserRepository
	paymentRepo db.PaymentRepository
}

// NewBillingService creates a new BillingService instance.
func NewBillingService(gateway payments.Gateway, userRepo db.UserRepository, paymentRepo db.PaymentRepository) BillingService {
	return &billingService{
		gateway:     gateway,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
	}
}

// CreateCheckoutSession opens a single-line-item checkout priced from the
// request, tagged with the caller's email.
func (s *billingService) CreateCheckoutSession(ctx context.Context, email string, price float64) (*payments.CheckoutSession, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	amountCents := int64(math.Round(price * 100))

	session, err := s.gateway.CreateCheckoutSession(ctx, email, amountCents)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return session, nil
}

// ConfirmPayment is the dedup contract for a transaction: the gateway session
// must be paid, the user must exist, and the payment record is a conditional
// insert keyed by transaction ID. The premium flip happens only on the
// invocation that actually inserted the record, so repeated calls for the
// same transaction are no-ops.
func (s *billingService) ConfirmPayment(ctx context.Context, email, sessionID string) (*models.Payment, bool, error) {
	session, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if !session.Paid() {
		return nil, false, fmt.Errorf("%w: session '%s' status '%s'", ErrPaymentNotCompleted, sessionID, session.PaymentStatus)
	}
	if session.TransactionID == "" {
		return nil, false, fmt.Errorf("%w: session '%s' has no transaction", ErrPaymentNotCompleted, sessionID)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, false, fmt.Errorf("%w: email '%s'", ErrUserNotFound, email)
		}
		return nil, false, fmt.Errorf("failed to load user '%s': %w", email, err)
	}

	payment := &models.Payment{
		Email:         email,
		TransactionID: session.TransactionID,
		Status:        session.PaymentStatus,
		Price:         float64(session.AmountTotal) / 100,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			// Duplicate invocation for a recorded transaction: no second
			// record, no second premium flip.
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("failed to record payment for transaction '%s': %w", session.TransactionID, err)
	}

	if err := s.userRepo.SetPremium(ctx, email, true); err != nil {
		return nil, false, fmt.Errorf("failed to set premium flag for '%s': %w", email, err)
	}
	return payment, false, nil
}
