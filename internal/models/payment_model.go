package models

import "time"

// Payment records a completed checkout exactly once. The document ID is the
// gateway transaction ID, so re-running the payment-success flow for the same
// transaction cannot record a second payment.
type Payment struct {
	ID            string    `json:"id" firestore:"-"` // Document ID (the transaction ID)
	Email         string    `json:"email" firestore:"email"`
	TransactionID string    `json:"transactionId" firestore:"transactionId"`
	Status        string    `json:"status" firestore:"status"` // Gateway payment status, e.g. "paid"
	Price         float64   `json:"price" firestore:"price"`   // Amount in the checkout currency
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}
