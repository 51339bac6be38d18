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

const lessonsCollection = "lessons"

// firestoreLessonRepository implements the LessonRepository interface using
// Firestore with auto-generated document IDs.
type firestoreLessonRepository struct {
	client *firestore.Client
}

// NewFirestoreLessonRepository creates a new instance of firestoreLessonRepository.
func NewFirestoreLessonRepository(client *firestore.Client) LessonRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for LessonRepository.")
	}
	return &firestoreLessonRepository{client: client}
}

// Create adds a new lesson document with an auto-generated ID. The ID is set
// on the model before the write.
func (r *firestoreLessonRepository) Create(ctx context.Context, lesson *models.Lesson) (string, error) {
	docRef := r.client.Collection(lessonsCollection).NewDoc()
	lesson.ID = docRef.ID
	if _, err := docRef.Create(ctx, lesson); err != nil {
		return "", fmt.Errorf("failed to create lesson: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a lesson document by its ID.
func (r *firestoreLessonRepository) GetByID(ctx context.Context, lessonID string) (*models.Lesson, error) {
	if lessonID == "" {
		return nil, errors.New("lessonID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(lessonsCollection).Doc(lessonID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("lesson with ID '%s' not found: %w", lessonID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get lesson with ID '%s': %w", lessonID, err)
	}

	var lesson models.Lesson
	if err := docSnap.DataTo(&lesson); err != nil {
		return nil, fmt.Errorf("failed to decode lesson data for ID '%s': %w", lessonID, err)
	}
	lesson.ID = docSnap.Ref.ID
	return &lesson, nil
}

// List returns lessons ordered by creation time descending. An empty email
// means no owner filter; offset/limit of 0 mean unbounded.
func (r *firestoreLessonRepository) List(ctx context.Context, email string, offset, limit int) ([]*models.Lesson, error) {
	query := r.client.Collection(lessonsCollection).Query
	if email != "" {
		query = query.Where("email", "==", email)
	}
	query = query.OrderBy("createdAt", firestore.Desc)
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.collectLessons(ctx, query)
}

// Count returns the number of lessons, optionally filtered by owner email.
func (r *firestoreLessonRepository) Count(ctx context.Context, email string) (int, error) {
	query := r.client.Collection(lessonsCollection).Query
	if email != "" {
		query = query.Where("email", "==", email)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to iterate lessons for counting: %w", err)
		}
		count++
	}
	return count, nil
}

// ListCreatedAfter returns lessons created at or after the given time, ordered
// by creation time descending.
func (r *firestoreLessonRepository) ListCreatedAfter(ctx context.Context, since time.Time) ([]*models.Lesson, error) {
	query := r.client.Collection(lessonsCollection).
		Where("createdAt", ">=", since).
		OrderBy("createdAt", firestore.Desc)
	return r.collectLessons(ctx, query)
}

func (r *firestoreLessonRepository) collectLessons(ctx context.Context, query firestore.Query) ([]*models.Lesson, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var lessons []*models.Lesson
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate lessons: %w", err)
		}
		var lesson models.Lesson
		if err := doc.DataTo(&lesson); err != nil {
			log.Printf("Error decoding lesson data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		lesson.ID = doc.Ref.ID
		lessons = append(lessons, &lesson)
	}
	return lessons, nil
}

// Update replaces only the provided fields of an existing lesson document.
func (r *firestoreLessonRepository) Update(ctx context.Context, lessonID string, fields map[string]interface{}) error {
	if lessonID == "" {
		return errors.New("lessonID cannot be empty for Update operation")
	}
	if len(fields) == 0 {
		return nil
	}
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := r.client.Collection(lessonsCollection).Doc(lessonID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("lesson with ID '%s' not found: %w", lessonID, ErrNotFound)
		}
		return fmt.Errorf("failed to update lesson with ID '%s': %w", lessonID, err)
	}
	return nil
}

// Delete removes a lesson document by ID.
func (r *firestoreLessonRepository) Delete(ctx context.Context, lessonID string) error {
	if lessonID == "" {
		return errors.New("lessonID cannot be empty for Delete operation")
	}
	// Existence check first so a delete of a missing lesson surfaces as not
	// found; Firestore deletes of absent documents succeed silently.
	if _, err := r.GetByID(ctx, lessonID); err != nil {
		return err
	}
	if _, err := r.client.Collection(lessonsCollection).Doc(lessonID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete lesson with ID '%s': %w", lessonID, err)
	}
	return nil
}

// ToggleLike flips userID's membership in likedBy and adjusts likesCount in a
// single transaction, so concurrent toggles from distinct users cannot corrupt
// the counter.
func (r *firestoreLessonRepository) ToggleLike(ctx context.Context, lessonID, userID string) (bool, error) {
	if lessonID == "" || userID == "" {
		return false, errors.New("lessonID and userID cannot be empty for ToggleLike operation")
	}
	docRef := r.client.Collection(lessonsCollection).Doc(lessonID)

	var liked bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("lesson with ID '%s' not found: %w", lessonID, ErrNotFound)
			}
			return err
		}

		var lesson models.Lesson
		if err := docSnap.DataTo(&lesson); err != nil {
			return fmt.Errorf("failed to decode lesson data for ID '%s': %w", lessonID, err)
		}

		alreadyLiked := false
		for _, id := range lesson.LikedBy {
			if id == userID {
				alreadyLiked = true
				break
			}
		}

		if alreadyLiked {
			liked = false
			return tx.Update(docRef, []firestore.Update{
				{Path: "likedBy", Value: firestore.ArrayRemove(userID)},
				{Path: "likesCount", Value: firestore.Increment(-1)},
			})
		}
		liked = true
		return tx.Update(docRef, []firestore.Update{
			{Path: "likedBy", Value: firestore.ArrayUnion(userID)},
			{Path: "likesCount", Value: firestore.Increment(1)},
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("failed to toggle like on lesson '%s': %w", lessonID, err)
	}
	return liked, nil
}
