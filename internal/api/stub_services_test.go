package api

import (
	"context"

	"lifelessons-backend-go/internal/models"
)

// Function-field stubs for the service interfaces. Tests assign only the
// methods the handler under test actually reaches.

type stubUserService struct {
	getOrCreate   func(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error)
	getByEmail    func(ctx context.Context, email string) (*models.User, error)
	getRole       func(ctx context.Context, email string) (string, error)
	search        func(ctx context.Context, searchText string) ([]*models.User, error)
	setRole       func(ctx context.Context, email, role string) error
	updateProfile func(ctx context.Context, req models.UpdateProfileRequest) error
}

func (s *stubUserService) GetOrCreate(ctx context.Context, req models.CreateUserRequest) (*models.User, bool, error) {
	return s.getOrCreate(ctx, req)
}

func (s *stubUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}

func (s *stubUserService) GetRole(ctx context.Context, email string) (string, error) {
	return s.getRole(ctx, email)
}

func (s *stubUserService) Search(ctx context.Context, searchText string) ([]*models.User, error) {
	return s.search(ctx, searchText)
}

func (s *stubUserService) SetRole(ctx context.Context, email, role string) error {
	return s.setRole(ctx, email, role)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	return s.updateProfile(ctx, req)
}

type stubLessonService struct {
	create       func(ctx context.Context, creatorID string, req models.CreateLessonRequest) (*models.Lesson, error)
	getByID      func(ctx context.Context, lessonID string) (*models.Lesson, error)
	list         func(ctx context.Context, email string, page, limit int) (*models.LessonPage, error)
	update       func(ctx context.Context, lessonID string, req models.UpdateLessonRequest) error
	delete       func(ctx context.Context, lessonID string) error
	toggleLike   func(ctx context.Context, lessonID, userID string) (bool, error)
	bannerImages func(ctx context.Context) ([]string, error)
}

func (s *stubLessonService) Create(ctx context.Context, creatorID string, req models.CreateLessonRequest) (*models.Lesson, error) {
	return s.create(ctx, creatorID, req)
}

func (s *stubLessonService) GetByID(ctx context.Context, lessonID string) (*models.Lesson, error) {
	return s.getByID(ctx, lessonID)
}

func (s *stubLessonService) List(ctx context.Context, email string, page, limit int) (*models.LessonPage, error) {
	return s.list(ctx, email, page, limit)
}

func (s *stubLessonService) Update(ctx context.Context, lessonID string, req models.UpdateLessonRequest) error {
	return s.update(ctx, lessonID, req)
}

func (s *stubLessonService) Delete(ctx context.Context, lessonID string) error {
	return s.delete(ctx, lessonID)
}

func (s *stubLessonService) ToggleLike(ctx context.Context, lessonID, userID string) (bool, error) {
	return s.toggleLike(ctx, lessonID, userID)
}

func (s *stubLessonService) BannerImages(ctx context.Context) ([]string, error) {
	return s.bannerImages(ctx)
}

type stubReportService struct {
	create       func(ctx context.Context, req models.CreateReportRequest) (*models.LessonReport, error)
	list         func(ctx context.Context) ([]*models.LessonReport, error)
	updateStatus func(ctx context.Context, reportID, status string) error
	delete       func(ctx context.Context, reportID string) error
}

func (s *stubReportService) Create(ctx context.Context, req models.CreateReportRequest) (*models.LessonReport, error) {
	return s.create(ctx, req)
}

func (s *stubReportService) List(ctx context.Context) ([]*models.LessonReport, error) {
	return s.list(ctx)
}

func (s *stubReportService) UpdateStatus(ctx context.Context, reportID, status string) error {
	return s.updateStatus(ctx, reportID, status)
}

func (s *stubReportService) Delete(ctx context.Context, reportID string) error {
	return s.delete(ctx, reportID)
}
