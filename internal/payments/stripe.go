// Package payments wraps the Stripe checkout API behind a small gateway
// interface so the billing service can be exercised against a fake in tests.
package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// CheckoutSession is the gateway-neutral view of a checkout session.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string // "paid", "unpaid" or "no_payment_required"
	TransactionID string // The gateway's payment transaction (payment intent) ID
	AmountTotal   int64  // Smallest currency unit (cents)
	CustomerEmail string
}

// Paid reports whether the session's payment has completed.
func (s *CheckoutSession) Paid() bool {
	return s.PaymentStatus == string(stripe.CheckoutSessionPaymentStatusPaid)
}

// Gateway is the payment-gateway contract the billing service depends on.
type Gateway interface {
	// CreateCheckoutSession opens a payment-mode checkout for a single line
	// item priced in cents, tagged with the payer's email.
	CreateCheckoutSession(ctx context.Context, email string, amountCents int64) (*CheckoutSession, error)
	// GetCheckoutSession retrieves a previously created session.
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

const (
	checkoutCurrency    = "usd"
	checkoutProductName = "Premium Membership"
)

// stripeGateway implements Gateway against the Stripe checkout session API.
type stripeGateway struct {
	clientURL string
}

// NewStripeGateway configures the Stripe SDK with the secret key and returns a
// gateway whose redirect URLs are rooted at the client application's origin.
func NewStripeGateway(secretKey, clientURL string) (Gateway, error) {
	if secretKey == "" {
		return nil, errors.New("stripe secret key cannot be empty")
	}
	if clientURL == "" {
		return nil, errors.New("client URL cannot be empty")
	}
	stripe.Key = secretKey
	return &stripeGateway{clientURL: clientURL}, nil
}

// CreateCheckoutSession opens a one-time payment checkout session in a fixed
// currency, with the caller's email carried in the session metadata.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, email string, amountCents int64) (*CheckoutSession, error) {
	if amountCents <= 0 {
		return nil, errors.New("amount must be positive")
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(checkoutCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(checkoutProductName),
					},
					UnitAmount: stripe.Int64(amountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(g.clientURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(g.clientURL + "/payment-cancelled"),
		CustomerEmail: stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata("email", email)

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session create failed: %w", err)
	}
	return fromStripeSession(s), nil
}

// GetCheckoutSession retrieves a checkout session by ID.
func (g *stripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	if sessionID == "" {
		return nil, errors.New("sessionID cannot be empty")
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session retrieve failed: %w", err)
	}
	return fromStripeSession(s), nil
}

func fromStripeSession(s *stripe.CheckoutSession) *CheckoutSession {
	cs := &CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		CustomerEmail: s.CustomerEmail,
	}
	if s.PaymentIntent != nil {
		cs.TransactionID = s.PaymentIntent.ID
	}
	return cs
}
