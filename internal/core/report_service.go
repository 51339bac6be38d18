package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifelessons-backend-go/internal/db"
	"lifelessons-backend-go/internal/models"
)

// ErrReportNotFound is returned when a report is not found.
var ErrReportNotFound = errors.New("report not found")

// ErrDuplicateReport is returned when the same reporter files a second report
// against the same lesson.
var ErrDuplicateReport = errors.New("report already exists for this lesson and reporter")

// ErrInvalidReportStatus is returned when a status patch carries a value
// outside the pending/reviewed/resolved enumeration.
var ErrInvalidReportStatus = errors.New("invalid report status")

// reportService implements the ReportService interface.
type reportService struct {
	reportRepo db.ReportRepository
}

// NewReportService creates a new ReportService instance.
func NewReportService(reportRepo db.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// Create validates and files a report with status "pending". Uniqueness per
// (lesson, reporter) is enforced by the store's conditional insert, not by a
// read-then-insert check.
func (s *reportService) Create(ctx context.Context, req models.CreateReportRequest) (*models.LessonReport, error) {
	if req.LessonID == "" {
		return nil, fmt.Errorf("%w: missing field 'lessonId'", ErrValidation)
	}
	if req.ReporterUserID == "" {
		return nil, fmt.Errorf("%w: missing field 'reporterUserId'", ErrValidation)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: missing field 'reason'", ErrValidation)
	}

	report := &models.LessonReport{
		LessonID:            req.LessonID,
		ReportedLessonTitle: req.ReportedLessonTitle,
		ReporterUserID:      req.ReporterUserID,
		ReportedUserEmail:   req.ReportedUserEmail,
		Reason:              req.Reason,
		Status:              models.ReportStatusPending,
		CreatedAt:           time.Now().UTC(),
	}
	if _, err := s.reportRepo.Create(ctx, report); err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: lesson '%s', reporter '%s'", ErrDuplicateReport, req.LessonID, req.ReporterUserID)
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

// List returns all reports for moderation.
func (s *reportService) List(ctx context.Context) ([]*models.LessonReport, error) {
	reports, err := s.reportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reports == nil {
		reports = []*models.LessonReport{}
	}
	return reports, nil
}

// UpdateStatus replaces only the report's status after constraining it to the
// enumeration.
func (s *reportService) UpdateStatus(ctx context.Context, reportID, status string) error {
	switch status {
	case models.ReportStatusPending, models.ReportStatusReviewed, models.ReportStatusResolved:
	default:
		return fmt.Errorf("%w: '%s'", ErrInvalidReportStatus, status)
	}
	if err := s.reportRepo.UpdateStatus(ctx, reportID, status); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrReportNotFound, reportID)
		}
		return fmt.Errorf("failed to update report '%s': %w", reportID, err)
	}
	return nil
}

// Delete removes a report by ID.
func (s *reportService) Delete(ctx context.Context, reportID string) error {
	if err := s.reportRepo.Delete(ctx, reportID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: ID '%s'", ErrReportNotFound, reportID)
		}
		return fmt.Errorf("failed to delete report '%s': %w", reportID, err)
	}
	return nil
}
