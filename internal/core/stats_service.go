package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"lifelessons-backend-go/internal/db"
	"lifelessons-backend-go/internal/models"
)

const (
	trailingWindowDays  = 7
	topContributorCount = 5
	dateBucketLayout    = "2006-01-02"
)

// statsService implements the StatsService interface. Firestore has no
// server-side group-by, so every report fetches the relevant documents and
// folds them here.
type statsService struct {
	userRepo    db.UserRepository
	lessonRepo  db.LessonRepository
	reportRepo  db.ReportRepository
	savedRepo   db.SavedLessonRepository
	paymentRepo db.PaymentRepository
	now         func() time.Time
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(
	userRepo db.UserRepository,
	lessonRepo db.LessonRepository,
	reportRepo db.ReportRepository,
	savedRepo db.SavedLessonRepository,
	paymentRepo db.PaymentRepository,
) StatsService {
	return &statsService{
		userRepo:    userRepo,
		lessonRepo:  lessonRepo,
		reportRepo:  reportRepo,
		savedRepo:   savedRepo,
		paymentRepo: paymentRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Dashboard summarizes the caller's own activity: lesson totals, likes
// received, saved count and a trailing-7-day day-of-week histogram.
func (s *statsService) Dashboard(ctx context.Context, email, userID string) (*models.DashboardStats, error) {
	lessons, err := s.lessonRepo.List(ctx, email, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load lessons for dashboard: %w", err)
	}

	stats := &models.DashboardStats{}
	windowStart := s.windowStart()
	perDay := map[string]int{}
	for _, lesson := range lessons {
		stats.TotalLessons++
		switch lesson.Privacy {
		case models.PrivacyPublic:
			stats.PublicLessons++
		case models.PrivacyPrivate:
			stats.PrivateLessons++
		}
		stats.TotalLikes += lesson.LikesCount
		if !lesson.CreatedAt.Before(windowStart) {
			perDay[lesson.CreatedAt.UTC().Format(dateBucketLayout)]++
		}
	}
	stats.WeeklyActivity = s.weekdayBuckets(perDay)

	saved, err := s.savedRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count saved lessons for dashboard: %w", err)
	}
	stats.SavedLessons = saved

	return stats, nil
}

// AdminStats builds the global reporting snapshot: totals per collection,
// lessons grouped by visibility, reports grouped by status, and lessons
// created per day over the trailing window.
func (s *statsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	paymentCount, err := s.paymentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}
	lessons, err := s.lessonRepo.List(ctx, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load lessons for admin stats: %w", err)
	}
	reports, err := s.reportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reports for admin stats: %w", err)
	}

	stats := &models.AdminStats{
		TotalUsers:       userCount,
		TotalLessons:     len(lessons),
		TotalReports:     len(reports),
		TotalPayments:    paymentCount,
		LessonsByPrivacy: map[string]int{},
		ReportsByStatus:  map[string]int{},
	}

	windowStart := s.windowStart()
	perDate := map[string]int{}
	for _, lesson := range lessons {
		stats.LessonsByPrivacy[lesson.Privacy]++
		if !lesson.CreatedAt.Before(windowStart) {
			perDate[lesson.CreatedAt.UTC().Format(dateBucketLayout)]++
		}
	}
	stats.LessonsPerDay = s.dateBuckets(perDate)

	for _, report := range reports {
		stats.ReportsByStatus[report.Status]++
	}

	return stats, nil
}

// UserGrowth counts user sign-ups per calendar day over the trailing window.
func (s *statsService) UserGrowth(ctx context.Context) ([]models.DateCount, error) {
	users, err := s.userRepo.ListCreatedAfter(ctx, s.windowStart())
	if err != nil {
		return nil, fmt.Errorf("failed to load users for growth report: %w", err)
	}
	perDate := map[string]int{}
	for _, user := range users {
		perDate[user.CreatedAt.UTC().Format(dateBucketLayout)]++
	}
	return s.dateBuckets(perDate), nil
}

// TopContributors ranks owners by lesson count and joins each with the
// display profile from the users collection. Owners without an account row
// still appear, with profile fields empty.
func (s *statsService) TopContributors(ctx context.Context) ([]models.Contributor, error) {
	lessons, err := s.lessonRepo.List(ctx, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load lessons for contributors report: %w", err)
	}

	perEmail := map[string]int{}
	for _, lesson := range lessons {
		perEmail[lesson.Email]++
	}

	emails := make([]string, 0, len(perEmail))
	for email := range perEmail {
		emails = append(emails, email)
	}
	sort.Slice(emails, func(i, j int) bool {
		if perEmail[emails[i]] != perEmail[emails[j]] {
			return perEmail[emails[i]] > perEmail[emails[j]]
		}
		return emails[i] < emails[j]
	})
	if len(emails) > topContributorCount {
		emails = emails[:topContributorCount]
	}

	contributors := make([]models.Contributor, 0, len(emails))
	for _, email := range emails {
		contributor := models.Contributor{Email: email, LessonCount: perEmail[email]}
		user, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, db.ErrNotFound) {
				return nil, fmt.Errorf("failed to join contributor '%s': %w", email, err)
			}
		} else {
			contributor.DisplayName = user.DisplayName
			contributor.PhotoURL = user.PhotoURL
		}
		contributors = append(contributors, contributor)
	}
	return contributors, nil
}

// windowStart is the inclusive start of the trailing window: midnight UTC,
// trailingWindowDays-1 days before today, so the window always spans 7
// calendar days including today.
func (s *statsService) windowStart() time.Time {
	today := s.now().Truncate(24 * time.Hour)
	return today.AddDate(0, 0, -(trailingWindowDays - 1))
}

// weekdayBuckets orders the per-date counts into 7 chronological weekday
// buckets ending today, zero-filling days without activity.
func (s *statsService) weekdayBuckets(perDate map[string]int) []models.DayCount {
	buckets := make([]models.DayCount, 0, trailingWindowDays)
	start := s.windowStart()
	for i := 0; i < trailingWindowDays; i++ {
		day := start.AddDate(0, 0, i)
		buckets = append(buckets, models.DayCount{
			Day:   day.Weekday().String(),
			Count: perDate[day.Format(dateBucketLayout)],
		})
	}
	return buckets
}

// dateBuckets orders the per-date counts into 7 chronological calendar-day
// buckets ending today, zero-filling days without activity.
func (s *statsService) dateBuckets(perDate map[string]int) []models.DateCount {
	buckets := make([]models.DateCount, 0, trailingWindowDays)
	start := s.windowStart()
	for i := 0; i < trailingWindowDays; i++ {
		date := start.AddDate(0, 0, i).Format(dateBucketLayout)
		buckets = append(buckets, models.DateCount{Date: date, Count: perDate[date]})
	}
	return buckets
}
