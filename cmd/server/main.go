package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myhustle-backend/internal/analytics"
	httpapi "myhustle-backend/internal/api/http"
	"myhustle-backend/internal/config"
	"myhustle-backend/internal/jobs"
	"myhustle-backend/internal/logger"
	"myhustle-backend/internal/repository/firestoredb"
	"myhustle-backend/internal/scheduler"
	"myhustle-backend/internal/security"
	"myhustle-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting MyHustle Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firestore configuration", "project_id", cfg.Firebase.ProjectID)

	// Initialize Firestore
	ctx := context.Background()
	client, err := firestoredb.NewClient(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Error("Failed to connect to Firestore", "error", err)
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	store := firestoredb.NewStore(client)
	defer store.Close()
	logger.Info("Firestore connection established")

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	shopSvc := service.NewShopService(store.ShopRepository)
	catalogSvc := service.NewCatalogService(store.ProductRepository, store.ServiceRepository, store.ShopRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.ServiceRepository,
		store.ShopRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
	)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.ProductRepository,
		store.ServiceRepository,
		store.BookingRepository,
		store.ShopRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
	)
	analyticsSvc := service.NewAnalyticsService(
		store.BookingRepository,
		store.OrderRepository,
		analytics.DefaultPriceTable(),
		time.Duration(cfg.Analytics.FetchTimeoutSeconds)*time.Second,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Initialize Router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:          authSvc,
		Shops:         shopSvc,
		Catalog:       catalogSvc,
		Bookings:      bookingSvc,
		Orders:        orderSvc,
		Analytics:     analyticsSvc,
		Notifications: noteSvc,
	}, tokenManager)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(store, &jobs.Services{Email: emailSvc}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	cronScheduler.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
