package core

import (
	"context"
	"errors"
	"fmt"

	"lifelessons-backend-go/internal/db"
	"lifelessons-backend-go/internal/models"
)

// ErrSavedLessonNotFound is returned when a save marker is not found.
var ErrSavedLessonNotFound = errors.New("saved lesson not found")

// savedLessonService implements the SavedLessonService interface.
type savedLessonService struct {
	savedRepo db.SavedLessonRepository
}

// NewSavedLessonService creates a new SavedLessonService instance.
func NewSavedLessonService(savedRepo db.SavedLessonRepository) SavedLessonService {
	return &savedLessonService{savedRepo: savedRepo}
}

// Toggle flips the save marker for the user and lesson; the repository applies
// the flip atomically.
func (s *savedLessonService) Toggle(ctx context.Context, lessonID, userID string) (bool, error) {
	if lessonID == "" {
		return false, fmt.Errorf("%w: missing field 'lessonId'", ErrValidation)
	}
	saved, err := s.savedRepo.Toggle(ctx, lessonID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle save for lesson '%s': %w", lessonID, err)
	}
	return saved, nil
}

// ListForUser returns the caller's save markers.
func (s *savedLessonService) ListForUser(ctx context.Context, userID string) ([]*models.SavedLesson, error) {
	saves, err := s.savedRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved lessons for user '%s': %w", userID, err)
	}
	if saves == nil {
		saves = []*models.SavedLesson{}
	}
	return saves, nil
}

// Delete removes a save marker by its ID.
func (s *savedLessonService) Delete(ctx context.Context, savedLessonID string) error {
	if err := s.savedRepo.Delete(ctx, savedLessonID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrSavedLessonNotFound, savedLessonID)
		}
		return fmt.Errorf("failed to delete saved lesson '%s': %w", savedLessonID, err)
	}
	return nil
}
