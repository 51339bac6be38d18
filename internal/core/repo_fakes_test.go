package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"lifelessons-backend-go/internal/db"
	"lifelessons-backend-go/internal/models"
	"lifelessons-backend-go/internal/payments"
)

// In-memory repository fakes mirroring the Firestore repositories' contracts:
// deterministic document IDs, db.ErrNotFound / db.ErrAlreadyExists sentinels,
// createdAt-descending listings.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return fmt.Errorf("user '%s': %w", user.Email, db.ErrAlreadyExists)
	}
	user.ID = user.Email
	clone := *user
	r.users[user.Email] = &clone
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("user '%s': %w", email, db.ErrNotFound)
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) List(_ context.Context, limit int) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		users = append(users, &clone)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r *fakeUserRepo) ListCreatedAfter(ctx context.Context, since time.Time) ([]*models.User, error) {
	users, _ := r.List(ctx, 0)
	var matched []*models.User
	for _, u := range users {
		if !u.CreatedAt.Before(since) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (r *fakeUserRepo) SetRole(_ context.Context, email, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return fmt.Errorf("user '%s': %w", email, db.ErrNotFound)
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, email string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return fmt.Errorf("user '%s': %w", email, db.ErrNotFound)
	}
	if v, ok := fields["displayName"].(string); ok {
		user.DisplayName = v
	}
	if v, ok := fields["photoURL"].(string); ok {
		user.PhotoURL = v
	}
	return nil
}

func (r *fakeUserRepo) SetPremium(_ context.Context, email string, premium bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return fmt.Errorf("user '%s': %w", email, db.ErrNotFound)
	}
	user.IsPremium = premium
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

type fakeLessonRepo struct {
	mu      sync.Mutex
	lessons map[string]*models.Lesson
	seq     int
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: map[string]*models.Lesson{}}
}

func (r *fakeLessonRepo) Create(_ context.Context, lesson *models.Lesson) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	lesson.ID = fmt.Sprintf("lesson-%d", r.seq)
	clone := *lesson
	clone.LikedBy = append([]string(nil), lesson.LikedBy...)
	r.lessons[lesson.ID] = &clone
	return lesson.ID, nil
}

func (r *fakeLessonRepo) GetByID(_ context.Context, lessonID string) (*models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lesson, ok := r.lessons[lessonID]
	if !ok {
		return nil, fmt.Errorf("lesson '%s': %w", lessonID, db.ErrNotFound)
	}
	clone := *lesson
	clone.LikedBy = append([]string(nil), lesson.LikedBy...)
	return &clone, nil
}

func (r *fakeLessonRepo) List(_ context.Context, email string, offset, limit int) ([]*models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lessons []*models.Lesson
	for _, l := range r.lessons {
		if email != "" && l.Email != email {
			continue
		}
		clone := *l
		lessons = append(lessons, &clone)
	}
	sort.Slice(lessons, func(i, j int) bool { return lessons[i].CreatedAt.After(lessons[j].CreatedAt) })
	if offset > 0 {
		if offset >= len(lessons) {
			return nil, nil
		}
		lessons = lessons[offset:]
	}
	if limit > 0 && len(lessons) > limit {
		lessons = lessons[:limit]
	}
	return lessons, nil
}

func (r *fakeLessonRepo) Count(_ context.Context, email string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, l := range r.lessons {
		if email == "" || l.Email == email {
			count++
		}
	}
	return count, nil
}

func (r *fakeLessonRepo) ListCreatedAfter(ctx context.Context, since time.Time) ([]*models.Lesson, error) {
	lessons, _ := r.List(ctx, "", 0, 0)
	var matched []*models.Lesson
	for _, l := range lessons {
		if !l.CreatedAt.Before(since) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (r *fakeLessonRepo) Update(_ context.Context, lessonID string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lesson, ok := r.lessons[lessonID]
	if !ok {
		return fmt.Errorf("lesson '%s': %w", lessonID, db.ErrNotFound)
	}
	for path, value := range fields {
		switch path {
		case "title":
			lesson.Title = value.(string)
		case "description":
			lesson.Description = value.(string)
		case "category":
			lesson.Category = value.(string)
		case "emotionalTone":
			lesson.EmotionalTone = value.(string)
		case "image":
			lesson.Image = value.(string)
		case "accessLevel":
			lesson.AccessLevel = value.(string)
		case "privacy":
			lesson.Privacy = value.(string)
		case "createdAt":
			lesson.CreatedAt = value.(time.Time)
		}
	}
	return nil
}

func (r *fakeLessonRepo) Delete(_ context.Context, lessonID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lessons[lessonID]; !ok {
		return fmt.Errorf("lesson '%s': %w", lessonID, db.ErrNotFound)
	}
	delete(r.lessons, lessonID)
	return nil
}

func (r *fakeLessonRepo) ToggleLike(_ context.Context, lessonID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lesson, ok := r.lessons[lessonID]
	if !ok {
		return false, fmt.Errorf("lesson '%s': %w", lessonID, db.ErrNotFound)
	}
	for i, id := range lesson.LikedBy {
		if id == userID {
			lesson.LikedBy = append(lesson.LikedBy[:i], lesson.LikedBy[i+1:]...)
			lesson.LikesCount--
			return false, nil
		}
	}
	lesson.LikedBy = append(lesson.LikedBy, userID)
	lesson.LikesCount++
	return true, nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[string]*models.LessonReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[string]*models.LessonReport{}}
}

func (r *fakeReportRepo) Create(_ context.Context, report *models.LessonReport) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	docID := report.LessonID + "_" + report.ReporterUserID
	if _, ok := r.reports[docID]; ok {
		return "", fmt.Errorf("report '%s': %w", docID, db.ErrAlreadyExists)
	}
	report.ID = docID
	clone := *report
	r.reports[docID] = &clone
	return docID, nil
}

func (r *fakeReportRepo) List(_ context.Context) ([]*models.LessonReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var reports []*models.LessonReport
	for _, rep := range r.reports {
		clone := *rep
		reports = append(reports, &clone)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].CreatedAt.After(reports[j].CreatedAt) })
	return reports, nil
}

func (r *fakeReportRepo) UpdateStatus(_ context.Context, reportID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[reportID]
	if !ok {
		return fmt.Errorf("report '%s': %w", reportID, db.ErrNotFound)
	}
	report.Status = status
	return nil
}

func (r *fakeReportRepo) Delete(_ context.Context, reportID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[reportID]; !ok {
		return fmt.Errorf("report '%s': %w", reportID, db.ErrNotFound)
	}
	delete(r.reports, reportID)
	return nil
}

type fakeSavedLessonRepo struct {
	mu    sync.Mutex
	saves map[string]*models.SavedLesson
}

func newFakeSavedLessonRepo() *fakeSavedLessonRepo {
	return &fakeSavedLessonRepo{saves: map[string]*models.SavedLesson{}}
}

func (r *fakeSavedLessonRepo) Toggle(_ context.Context, lessonID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	docID := lessonID + "_" + userID
	if _, ok := r.saves[docID]; ok {
		delete(r.saves, docID)
		return false, nil
	}
	r.saves[docID] = &models.SavedLesson{
		ID:        docID,
		LessonID:  lessonID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	return true, nil
}

func (r *fakeSavedLessonRepo) ListByUserID(_ context.Context, userID string) ([]*models.SavedLesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var saves []*models.SavedLesson
	for _, s := range r.saves {
		if s.UserID == userID {
			clone := *s
			saves = append(saves, &clone)
		}
	}
	sort.Slice(saves, func(i, j int) bool { return saves[i].CreatedAt.After(saves[j].CreatedAt) })
	return saves, nil
}

func (r *fakeSavedLessonRepo) Delete(_ context.Context, savedLessonID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.saves[savedLessonID]; !ok {
		return fmt.Errorf("saved lesson '%s': %w", savedLessonID, db.ErrNotFound)
	}
	delete(r.saves, savedLessonID)
	return nil
}

func (r *fakeSavedLessonRepo) CountByUserID(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, s := range r.saves {
		if s.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*models.Payment{}}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[payment.TransactionID]; ok {
		return fmt.Errorf("payment '%s': %w", payment.TransactionID, db.ErrAlreadyExists)
	}
	payment.ID = payment.TransactionID
	clone := *payment
	r.payments[payment.TransactionID] = &clone
	return nil
}

func (r *fakePaymentRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payments), nil
}

// fakeGateway serves canned checkout sessions.
type fakeGateway struct {
	mu       sync.Mutex
	sessions map[string]*payments.CheckoutSession
	seq      int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: map[string]*payments.CheckoutSession{}}
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, email string, amountCents int64) (*payments.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	session := &payments.CheckoutSession{
		ID:            fmt.Sprintf("cs_test_%d", g.seq),
		URL:           fmt.Sprintf("https://checkout.example.com/%d", g.seq),
		PaymentStatus: "unpaid",
		TransactionID: fmt.Sprintf("pi_test_%d", g.seq),
		AmountTotal:   amountCents,
		CustomerEmail: email,
	}
	g.sessions[session.ID] = session
	return session, nil
}

func (g *fakeGateway) GetCheckoutSession(_ context.Context, sessionID string) (*payments.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	session, ok := g.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("checkout session '%s' not found", sessionID)
	}
	clone := *session
	return &clone, nil
}

func (g *fakeGateway) markPaid(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if session, ok := g.sessions[sessionID]; ok {
		session.PaymentStatus = "paid"
	}
}
