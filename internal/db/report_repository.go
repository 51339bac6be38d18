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

const reportsCollection = "lessonReports"

// reportDocID builds the deterministic document ID that enforces at most one
// report per (lesson, reporter) pair.
func reportDocID(lessonID, reporterUserID string) string {
	return lessonID + "_" + reporterUserID
}

// firestoreReportRepository implements the ReportRepository interface using
// Firestore.
type firestoreReportRepository struct {
	client *firestore.Client
}

// NewFirestoreReportRepository creates a new instance of firestoreReportRepository.
func NewFirestoreReportRepository(client *firestore.Client) ReportRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ReportRepository.")
	}
	return &firestoreReportRepository{client: client}
}

// Create adds a report document keyed by lesson and reporter. The conditional
// Create makes the duplicate check atomic instead of read-then-insert.
func (r *firestoreReportRepository) Create(ctx context.Context, report *models.LessonReport) (string, error) {
	if report.LessonID == "" || report.ReporterUserID == "" {
		return "", errors.New("lessonID and reporterUserID cannot be empty for Create operation")
	}
	docID := reportDocID(report.LessonID, report.ReporterUserID)
	report.ID = docID
	_, err := r.client.Collection(reportsCollection).Doc(docID).Create(ctx, report)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return "", fmt.Errorf("report for lesson '%s' by user '%s' already exists: %w",
				report.LessonID, report.ReporterUserID, ErrAlreadyExists)
		}
		return "", fmt.Errorf("failed to create report for lesson '%s': %w", report.LessonID, err)
	}
	return docID, nil
}

// List returns all reports ordered by creation time descending.
func (r *firestoreReportRepository) List(ctx context.Context) ([]*models.LessonReport, error) {
	iter := r.client.Collection(reportsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var reports []*models.LessonReport
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reports: %w", err)
		}
		var report models.LessonReport
		if err := doc.DataTo(&report); err != nil {
			log.Printf("Error decoding report data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		report.ID = doc.Ref.ID
		reports = append(reports, &report)
	}
	return reports, nil
}

// UpdateStatus replaces only the status field of an existing report.
func (r *firestoreReportRepository) UpdateStatus(ctx context.Context, reportID, newStatus string) error {
	if reportID == "" {
		return errors.New("reportID cannot be empty for UpdateStatus operation")
	}
	_, err := r.client.Collection(reportsCollection).Doc(reportID).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("report with ID '%s' not found: %w", reportID, ErrNotFound)
		}
		return fmt.Errorf("failed to update report with ID '%s': %w", reportID, err)
	}
	return nil
}

// Delete removes a report document by ID.
func (r *firestoreReportRepository) Delete(ctx context.Context, reportID string) error {
	if reportID == "" {
		return errors.New("reportID cannot be empty for Delete operation")
	}
	docSnap, err := r.client.Collection(reportsCollection).Doc(reportID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("report with ID '%s' not found: %w", reportID, ErrNotFound)
		}
		return fmt.Errorf("failed to get report with ID '%s': %w", reportID, err)
	}
	if _, err := docSnap.Ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete report with ID '%s': %w", reportID, err)
	}
	return nil
}
