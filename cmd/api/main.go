package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Application Layer
	appService "spotwatch/internal/application/service"

	// Infrastructure Layer
	"spotwatch/internal/infrastructure/database/sqlite"
	"spotwatch/internal/infrastructure/scheduler"
	pushClient "spotwatch/internal/infrastructure/webpush"

	// Interfaces Layer
	"spotwatch/internal/interfaces/api/handler"
	"spotwatch/internal/interfaces/api/router"

	// Packages
	"spotwatch/internal/pkg/config"
	appLogger "spotwatch/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, schedulerService appService.SchedulerService, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first
	log.Println("Stopping scheduler...")
	schedulerService.Stop()
	log.Println("Scheduler stopped.")

	// Close database connection
	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	// Shutdown HTTP server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	cfg, err := config.Load()
	if err != nil {
		appLog.Error("Failed to load configuration", err)
		os.Exit(1)
	}

	// --- Infrastructure ---
	db := sqlite.NewDB(cfg.DatabaseURL)
	spotRepo := sqlite.NewSpotRepository(db)
	subscriptionRepo := sqlite.NewSubscriptionRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	appLog.Info("Database and repositories initialized.")

	push := pushClient.NewClient(cfg, appLog)
	cronScheduler := scheduler.NewScheduler(appLog)

	// --- Application Services ---
	spotSvc := appService.NewSpotService(spotRepo, sessionRepo, appLog)
	subscriptionSvc := appService.NewSubscriptionService(subscriptionRepo, appLog)
	notificationSvc := appService.NewNotificationService(spotRepo, subscriptionRepo, sessionRepo, push, appLog)
	schedulerSvc := appService.NewSchedulerService(cronScheduler, notificationSvc, appLog)
	appLog.Info("Application services initialized.")

	// --- Daily Reminder Job ---
	if err := schedulerSvc.Start(cfg.ReminderCronSpec); err != nil {
		// Log the error but continue starting the server; the HTTP trigger
		// still works without the cron job.
		appLog.Error("Failed to schedule daily reminder run", err)
	}

	// --- API Handlers ---
	spotHandler := handler.NewSpotHandler(spotSvc, appLog)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionSvc, appLog)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	routerCfg := &router.Config{
		SpotHandler:         spotHandler,
		SubscriptionHandler: subscriptionHandler,
		NotificationHandler: notificationHandler,
		Logger:              appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, schedulerSvc, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
