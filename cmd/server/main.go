package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "bizsuite-booking-backend/internal/api/http"
	"bizsuite-booking-backend/internal/config"
	"bizsuite-booking-backend/internal/logger"
	"bizsuite-booking-backend/internal/repository/postgres"
	"bizsuite-booking-backend/internal/security"
	"bizsuite-booking-backend/internal/service"

	_ "github.com/lib/pq"
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
	logger.Info("Starting Booking Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)

	// Initialize Services
	notifier := service.NewNotifier(store.NotificationRepository, store.CustomerRepository, emailSvc)
	availabilitySvc := service.NewAvailabilityService(
		store.BookingRepository,
		store.ResourceRepository,
		store.AvailabilityTemplateRepository,
		cfg.Booking.SlotMinutes,
	)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.ResourceRepository,
		store.CustomerRepository,
		notifier,
	)
	statusSvc := service.NewResourceStatusService(store.ResourceRepository, store.BookingRepository)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)

	// Initialize HTTP handlers
	auth := httpapi.NewAuthMiddleware(tokenManager, store.TenantRepository)
	bookingHandler := httpapi.NewBookingHandler(bookingSvc)
	availabilityHandler := httpapi.NewAvailabilityHandler(availabilitySvc)
	resourceHandler := httpapi.NewResourceHandler(statusSvc)
	notificationHandler := httpapi.NewNotificationHandler(notificationSvc)

	router := httpapi.NewRouter(auth, bookingHandler, availabilityHandler, resourceHandler, notificationHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
