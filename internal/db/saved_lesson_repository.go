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

const savedLessonsCollection = "savedLessons"

// savedLessonDocID builds the deterministic document ID for a save marker.
func savedLessonDocID(lessonID, userID string) string {
	return lessonID + "_" + userID
}

// firestoreSavedLessonRepository implements the SavedLessonRepository
// interface using Firestore.
type firestoreSavedLessonRepository struct {
	client *firestore.Client
}

// NewFirestoreSavedLessonRepository creates a new instance of firestoreSavedLessonRepository.
func NewFirestoreSavedLessonRepository(client *firestore.Client) SavedLessonRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for SavedLessonRepository.")
	}
	return &firestoreSavedLessonRepository{client: client}
}

// Toggle flips the save marker for (lessonID, userID) inside a transaction:
// delete if present, create if absent. The transaction closes the
// check-then-act race a read-then-write toggle would have.
func (r *firestoreSavedLessonRepository) Toggle(ctx context.Context, lessonID, userID string) (bool, error) {
	if lessonID == "" || userID == "" {
		return false, errors.New("lessonID and userID cannot be empty for Toggle operation")
	}
	docRef := r.client.Collection(savedLessonsCollection).Doc(savedLessonDocID(lessonID, userID))

	var saved bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				saved = true
				return tx.Create(docRef, &models.SavedLesson{
					LessonID:  lessonID,
					UserID:    userID,
					CreatedAt: time.Now().UTC(),
				})
			}
			return err
		}
		saved = false
		return tx.Delete(docRef)
	})
	if err != nil {
		return false, fmt.Errorf("failed to toggle saved lesson '%s' for user '%s': %w", lessonID, userID, err)
	}
	return saved, nil
}

// ListByUserID returns the user's save markers ordered by creation time
// descending.
func (r *firestoreSavedLessonRepository) ListByUserID(ctx context.Context, userID string) ([]*models.SavedLesson, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for ListByUserID operation")
	}
	iter := r.client.Collection(savedLessonsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var saves []*models.SavedLesson
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate saved lessons for user '%s': %w", userID, err)
		}
		var save models.SavedLesson
		if err := doc.DataTo(&save); err != nil {
			log.Printf("Error decoding saved lesson data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		save.ID = doc.Ref.ID
		saves = append(saves, &save)
	}
	return saves, nil
}

// Delete removes a save marker by its document ID.
func (r *firestoreSavedLessonRepository) Delete(ctx context.Context, savedLessonID string) error {
	if savedLessonID == "" {
		return errors.New("savedLessonID cannot be empty for Delete operation")
	}
	docSnap, err := r.client.Collection(savedLessonsCollection).Doc(savedLessonID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("saved lesson with ID '%s' not found: %w", savedLessonID, ErrNotFound)
		}
		return fmt.Errorf("failed to get saved lesson with ID '%s': %w", savedLessonID, err)
	}
	if _, err := docSnap.Ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete saved lesson with ID '%s': %w", savedLessonID, err)
	}
	return nil
}

// CountByUserID counts the user's save markers.
func (r *firestoreSavedLessonRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, errors.New("userID cannot be empty for CountByUserID operation")
	}
	iter := r.client.Collection(savedLessonsCollection).
		Where("userId", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to iterate saved lessons for counting (user '%s'): %w", userID, err)
		}
		count++
	}
	return count, nil
}
