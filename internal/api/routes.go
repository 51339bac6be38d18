package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifelessons-backend-go/internal/core"
	"lifelessons-backend-go/internal/db"
	"lifelessons-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes. Global middleware (logging,
// recovery, CORS) is applied to the router in main before this is called.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	userService core.UserService,
	lessonService core.LessonService,
	savedService core.SavedLessonService,
	reportService core.ReportService,
	statsService core.StatsService,
	billingService core.BillingService,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("Firebase Auth client is not initialized; routes cannot be secured.")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)
	adminMW := middleware.NewAdminMiddleware(userService)

	userHandler := NewUserHandler(userService)
	lessonHandler := NewLessonHandler(lessonService)
	savedHandler := NewSavedLessonHandler(savedService)
	reportHandler := NewReportHandler(reportService)
	statsHandler := NewStatsHandler(statsService)
	billingHandler := NewBillingHandler(billingService)

	// Users. Creation is public (called right after client-side sign-in);
	// the role and profile patches are admin-gated.
	users := router.Group("/users")
	{
		users.GET("", authMW.VerifyToken(), userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.PATCH("/profile", authMW.VerifyToken(), adminMW.RequireAdmin(), userHandler.UpdateUserProfile)
		users.GET("/:email", userHandler.GetUserByEmail)
		users.GET("/:email/role", userHandler.GetUserRole)
		users.PATCH("/:email/role", authMW.VerifyToken(), adminMW.RequireAdmin(), userHandler.UpdateUserRole)
	}

	// Lessons. Reads are public; every mutation requires authentication.
	lessons := router.Group("/lessons")
	{
		lessons.GET("", lessonHandler.ListLessons)
		lessons.POST("", authMW.VerifyToken(), lessonHandler.CreateLesson)
		lessons.GET("/banner", lessonHandler.Banner)
		lessons.GET("/:id", lessonHandler.GetLesson)
		lessons.PATCH("/:id", authMW.VerifyToken(), lessonHandler.UpdateLesson)
		lessons.DELETE("/:id", authMW.VerifyToken(), lessonHandler.DeleteLesson)
		lessons.PATCH("/:id/like", authMW.VerifyToken(), lessonHandler.ToggleLike)
	}

	// Saved lessons, all caller-scoped.
	saved := router.Group("/savedLessons", authMW.VerifyToken())
	{
		saved.POST("/toggle", savedHandler.ToggleSave)
		saved.GET("/users", savedHandler.ListSaved)
		saved.DELETE("/:id", savedHandler.DeleteSaved)
	}

	// Lesson reports. Filing is public; moderation is admin-gated.
	reports := router.Group("/lessonReports")
	{
		reports.POST("", reportHandler.CreateReport)
		reports.GET("", authMW.VerifyToken(), adminMW.RequireAdmin(), reportHandler.ListReports)
		reports.PATCH("/:id", authMW.VerifyToken(), adminMW.RequireAdmin(), reportHandler.UpdateReportStatus)
		reports.DELETE("/:id", authMW.VerifyToken(), adminMW.RequireAdmin(), reportHandler.DeleteReport)
	}

	// Reporting.
	router.GET("/dashboard", authMW.VerifyToken(), statsHandler.Dashboard)
	admin := router.Group("/admin", authMW.VerifyToken(), adminMW.RequireAdmin())
	{
		admin.GET("/stats", statsHandler.AdminStats)
		admin.GET("/growth/users", statsHandler.UserGrowth)
		admin.GET("/top-contributors", statsHandler.TopContributors)
	}

	// Payments. payment-success is public: the gateway session lookup is the
	// authentication.
	router.POST("/create-checkout-session", authMW.VerifyToken(), billingHandler.CreateCheckoutSession)
	router.POST("/payment-success", billingHandler.PaymentSuccess)

	// Liveness.
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Life Lessons backend is running."})
	})

	logger.Info("API routes configured successfully.")
}
