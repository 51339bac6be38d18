package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lifelessons-backend-go/internal/models"
)

const usersCollection = "users"

// firestoreUserRepository implements the UserRepository interface using
// Firestore. The email address is the document ID.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

// Create adds a new user document keyed by email. Firestore's conditional
// Create makes idempotent-by-email sign-in a single atomic operation.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.Email == "" {
		return errors.New("user email cannot be empty for Create operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(user.Email).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("user with email '%s' already exists: %w", user.Email, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user with email '%s': %w", user.Email, err)
	}
	user.ID = user.Email
	return nil
}

// GetByEmail retrieves a user document by its email (the document ID).
func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for GetByEmail operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user with email '%s' not found: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with email '%s': %w", email, err)
	}

	var user models.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for email '%s': %w", email, err)
	}
	user.ID = docSnap.Ref.ID
	return &user, nil
}

// List returns users ordered by creation time descending. A limit <= 0 means
// no limit.
func (r *firestoreUserRepository) List(ctx context.Context, limit int) ([]*models.User, error) {
	query := r.client.Collection(usersCollection).OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.collectUsers(ctx, query)
}

// ListCreatedAfter returns users created at or after the given time, ordered
// by creation time descending.
func (r *firestoreUserRepository) ListCreatedAfter(ctx context.Context, since time.Time) ([]*models.User, error) {
	query := r.client.Collection(usersCollection).
		Where("createdAt", ">=", since).
		OrderBy("createdAt", firestore.Desc)
	return r.collectUsers(ctx, query)
}

func (r *firestoreUserRepository) collectUsers(ctx context.Context, query firestore.Query) ([]*models.User, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var users []*models.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}
		var user models.User
		if err := doc.DataTo(&user); err != nil {
			log.Printf("Error decoding user data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		user.ID = doc.Ref.ID
		users = append(users, &user)
	}
	return users, nil
}

// SetRole replaces the role field of the user with the given email.
func (r *firestoreUserRepository) SetRole(ctx context.Context, email, role string) error {
	return r.updateFields(ctx, email, []firestore.Update{{Path: "role", Value: role}})
}

// UpdateProfile replaces only the provided profile fields.
func (r *firestoreUserRepository) UpdateProfile(ctx context.Context, email string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	return r.updateFields(ctx, email, updates)
}

// SetPremium replaces the isPremium flag of the user with the given email.
func (r *firestoreUserRepository) SetPremium(ctx context.Context, email string, premium bool) error {
	return r.updateFields(ctx, email, []firestore.Update{{Path: "isPremium", Value: premium}})
}

func (r *firestoreUserRepository) updateFields(ctx context.Context, email string, updates []firestore.Update) error {
	if email == "" {
		return errors.New("email cannot be empty for update operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(email).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user with email '%s' not found: %w", email, ErrNotFound)
		}
		return fmt.Errorf("failed to update user with email '%s': %w", email, err)
	}
	return nil
}

// Count returns the total number of user documents by iterating document
// snapshots. Acceptable for this collection's size; aggregation queries would
// be the next step if it grows.
func (r *firestoreUserRepository) Count(ctx context.Context) (int, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to iterate users for counting: %w", err)
		}
		count++
	}
	return count, nil
}
