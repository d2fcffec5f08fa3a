package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeview/config"
	"homeview/cron"
	"homeview/database"
	viewingRepo "homeview/database/repository/viewing"
	"homeview/handlers"
	"homeview/middleware"
	"homeview/routes"
	"homeview/services/notification"
	"homeview/services/scheduling"
	"homeview/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	viewings := viewingRepo.NewMongoViewingRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{}
	reminderScheduler := cron.NewReminderScheduler()

	wizardService := &scheduling.DefaultWizardService{
		Store:     scheduling.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Repo:      viewings,
		Reminders: reminderScheduler,
	}

	viewingHandler := handlers.NewViewingHandler(wizardService, logger)
	adminHandler := handlers.NewAdminHandler(viewings)

	routes.RegisterRoutes(router, viewingHandler, adminHandler)

	// Background workers and health monitoring.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
