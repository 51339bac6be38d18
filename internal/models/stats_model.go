package models

// DayCount is one bucket of a day-of-week histogram.
type DayCount struct {
	Day   string `json:"day"` // Weekday name, e.g. "Monday"
	Count int    `json:"count"`
}

// DateCount is one bucket of a per-calendar-day series.
type DateCount struct {
	Date  string `json:"date"` // "2006-01-02"
	Count int    `json:"count"`
}

// DashboardStats is the authenticated caller's own activity summary.
type DashboardStats struct {
	TotalLessons   int        `json:"totalLessons"`
	PublicLessons  int        `json:"publicLessons"`
	PrivateLessons int        `json:"privateLessons"`
	TotalLikes     int        `json:"totalLikes"` // Likes received across the caller's lessons
	SavedLessons   int        `json:"savedLessons"`
	WeeklyActivity []DayCount `json:"weeklyActivity"` // Lessons created in the trailing 7 days, by weekday
}

// AdminStats is the global reporting snapshot for the admin dashboard.
type AdminStats struct {
	TotalUsers       int            `json:"totalUsers"`
	TotalLessons     int            `json:"totalLessons"`
	TotalReports     int            `json:"totalReports"`
	TotalPayments    int            `json:"totalPayments"`
	LessonsByPrivacy map[string]int `json:"lessonsByPrivacy"`
	ReportsByStatus  map[string]int `json:"reportsByStatus"`
	LessonsPerDay    []DateCount    `json:"lessonsPerDay"` // Trailing 7 days
}

// Contributor is one row of the top-contributors report: lesson count joined
// with the contributor's profile.
type Contributor struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
	LessonCount int    `json:"lessonCount"`
}
