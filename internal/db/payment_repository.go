package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lifelessons-backend-go/internal/models"
)

const paymentsCollection = "payments"

// firestorePaymentRepository implements the PaymentRepository interface using
// Firestore. The gateway transaction ID is the document ID, so a transaction
// can be recorded at most once.
type firestorePaymentRepository struct {
	client *firestore.Client
}

// NewFirestorePaymentRepository creates a new instance of firestorePaymentRepository.
func NewFirestorePaymentRepository(client *firestore.Client) PaymentRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for PaymentRepository.")
	}
	return &firestorePaymentRepository{client: client}
}

// Create adds a payment record keyed by transaction ID. Returns
// ErrAlreadyExists when the transaction was already recorded, which the
// billing service treats as the dedup signal.
func (r *firestorePaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.TransactionID == "" {
		return errors.New("transactionID cannot be empty for Create operation")
	}
	payment.ID = payment.TransactionID
	_, err := r.client.Collection(paymentsCollection).Doc(payment.TransactionID).Create(ctx, payment)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("payment for transaction '%s' already recorded: %w", payment.TransactionID, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create payment for transaction '%s': %w", payment.TransactionID, err)
	}
	return nil
}

// Count returns the total number of payment records.
func (r *firestorePaymentRepository) Count(ctx context.Context) (int, error) {
	iter := r.client.Collection(paymentsCollection).Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to iterate payments for counting: %w", err)
		}
		count++
	}
	return count, nil
}
