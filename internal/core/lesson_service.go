package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifelessons-backend-go/internal/db"
	"lifelessons-backend-go/internal/models"
)

// ErrLessonNotFound is returned when a lesson is not found.
var ErrLessonNotFound = errors.New("lesson not found")

// ErrValidation marks a request rejected for missing or malformed fields.
// Wrap it with the offending field so handlers can expose the detail.
var ErrValidation = errors.New("validation error")

// Pagination defaults for the lesson listing.
const (
	defaultLessonPage  = 1
	defaultLessonLimit = 8
	bannerLessonCount  = 3
)

// lessonService implements the LessonService interface.
type lessonService struct {
	lessonRepo db.LessonRepository
}

// NewLessonService creates a new LessonService instance.
func NewLessonService(lessonRepo db.LessonRepository) LessonService {
	return &lessonService{lessonRepo: lessonRepo}
}

// Create validates the request, stamps server-side fields (creation time,
// zero like count, owning principal) and inserts the lesson.
func (s *lessonService) Create(ctx context.Context, creatorID string, req models.CreateLessonRequest) (*models.Lesson, error) {
	required := map[string]string{
		"email":         req.Email,
		"title":         req.Title,
		"description":   req.Description,
		"category":      req.Category,
		"emotionalTone": req.EmotionalTone,
		"image":         req.Image,
		"accessLevel":   req.AccessLevel,
		"privacy":       req.Privacy,
	}
	for field, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%w: missing field '%s'", ErrValidation, field)
		}
	}

	lesson := &models.Lesson{
		Email:         req.Email,
		CreatorID:     creatorID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		EmotionalTone: req.EmotionalTone,
		Image:         req.Image,
		AccessLevel:   req.AccessLevel,
		Privacy:       req.Privacy,
		LikedBy:       []string{},
		LikesCount:    0,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}
	return lesson, nil
}

// GetByID retrieves a lesson by ID.
func (s *lessonService) GetByID(ctx context.Context, lessonID string) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID '%s'", ErrLessonNotFound, lessonID)
		}
		return nil, fmt.Errorf("failed to get lesson '%s': %w", lessonID, err)
	}
	return lesson, nil
}

// List returns one page of lessons ordered by creation time descending,
// optionally filtered by owner email, with totalPages = ceil(total/limit).
func (s *lessonService) List(ctx context.Context, email string, page, limit int) (*models.LessonPage, error) {
	if page < 1 {
		page = defaultLessonPage
	}
	if limit < 1 {
		limit = defaultLessonLimit
	}

	total, err := s.lessonRepo.Count(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to count lessons: %w", err)
	}

	lessons, err := s.lessonRepo.List(ctx, email, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	if lessons == nil {
		lessons = []*models.Lesson{}
	}

	return &models.LessonPage{
		Lessons:    lessons,
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// Update replaces only the lesson fields present in the request.
func (s *lessonService) Update(ctx context.Context, lessonID string, req models.UpdateLessonRequest) error {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.EmotionalTone != nil {
		fields["emotionalTone"] = *req.EmotionalTone
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.AccessLevel != nil {
		fields["accessLevel"] = *req.AccessLevel
	}
	if req.Privacy != nil {
		fields["privacy"] = *req.Privacy
	}
	if req.CreatedAt != nil {
		createdAt, err := time.Parse(time.RFC3339, *req.CreatedAt)
		if err != nil {
			return fmt.Errorf("%w: createdAt must be RFC 3339", ErrValidation)
		}
		fields["createdAt"] = createdAt
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.lessonRepo.Update(ctx, lessonID, fields); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrLessonNotFound, lessonID)
		}
		return fmt.Errorf("failed to update lesson '%s': %w", lessonID, err)
	}
	return nil
}

// Delete removes a lesson by ID.
func (s *lessonService) Delete(ctx context.Context, lessonID string) error {
	if err := s.lessonRepo.Delete(ctx, lessonID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrLessonNotFound, lessonID)
		}
		return fmt.Errorf("failed to delete lesson '%s': %w", lessonID, err)
	}
	return nil
}

// ToggleLike flips the user's like on the lesson. The repository applies the
// set-membership flip and counter adjustment as one atomic store operation.
func (s *lessonService) ToggleLike(ctx context.Context, lessonID, userID string) (bool, error) {
	liked, err := s.lessonRepo.ToggleLike(ctx, lessonID, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, fmt.Errorf("%w: ID '%s'", ErrLessonNotFound, lessonID)
		}
		return false, fmt.Errorf("failed to toggle like on lesson '%s': %w", lessonID, err)
	}
	return liked, nil
}

// BannerImages returns the image field of the most recently created lessons,
// with every identifying field suppressed.
func (s *lessonService) BannerImages(ctx context.Context) ([]string, error) {
	lessons, err := s.lessonRepo.List(ctx, "", 0, bannerLessonCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list banner lessons: %w", err)
	}
	images := make([]string, 0, len(lessons))
	for _, lesson := range lessons {
		images = append(images, lesson.Image)
	}
	return images, nil
}
