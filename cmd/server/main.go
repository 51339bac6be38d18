package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifelessons-backend-go/internal/api"
	"lifelessons-backend-go/internal/config"
	"lifelessons-backend-go/internal/core"
	"lifelessons-backend-go/internal/db"
	"lifelessons-backend-go/internal/middleware"
	"lifelessons-backend-go/internal/payments"
)

func main() {
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded.")

	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("Failed to initialize Firestore and Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized.")

	firestoreClient := db.GetFirestoreClient()
	if firestoreClient == nil {
		zapLogger.Fatal("Firestore client is nil after initialization.")
	}
	if db.GetFirebaseAuthClient() == nil {
		zapLogger.Fatal("Firebase Auth client is nil after initialization.")
	}

	// Repositories share the one process-scoped Firestore client.
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	lessonRepo := db.NewFirestoreLessonRepository(firestoreClient)
	reportRepo := db.NewFirestoreReportRepository(firestoreClient)
	savedRepo := db.NewFirestoreSavedLessonRepository(firestoreClient)
	paymentRepo := db.NewFirestorePaymentRepository(firestoreClient)
	zapLogger.Info("Repositories initialized.")

	stripeGateway, err := payments.NewStripeGateway(appConfig.StripeSecretKey, appConfig.ClientURL)
	if err != nil {
		zapLogger.Fatal("Failed to initialize Stripe gateway", zap.Error(err))
	}

	userService := core.NewUserService(userRepo)
	lessonService := core.NewLessonService(lessonRepo)
	savedService := core.NewSavedLessonService(savedRepo)
	reportService := core.NewReportService(reportRepo)
	statsService := core.NewStatsService(userRepo, lessonRepo, reportRepo, savedRepo, paymentRepo)
	billingService := core.NewBillingService(stripeGateway, userRepo, paymentRepo)
	zapLogger.Info("Core services initialized.")

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware(appConfig))

	api.SetupRoutes(
		router,
		zapLogger,
		userService,
		lessonService,
		savedService,
		reportService,
		statsService,
		billingService,
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
