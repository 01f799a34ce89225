package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petbnb_backend/internal/auth"
	"petbnb_backend/internal/cache"
	"petbnb_backend/internal/config"
	"petbnb_backend/internal/email"
	"petbnb_backend/internal/geo"
	"petbnb_backend/internal/handlers"
	"petbnb_backend/internal/logger"
	"petbnb_backend/internal/middleware"
	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"
	"petbnb_backend/internal/routes"
	"petbnb_backend/internal/services"
	"petbnb_backend/internal/storage"
	"petbnb_backend/internal/validator"
	"petbnb_backend/internal/workers"
	"petbnb_backend/pkg/retry"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB := connectDatabase(cfg)

	// uuid_generate_v4 backs the primary key defaults.
	if err := gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		logger.Fatal("Failed to enable uuid-ossp extension", "error", err)
	}

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.CaregiverProfile{},
		&models.CaregiverService{},
		&models.Pet{},
		&models.Booking{},
		&models.Review{},
		&models.Message{},
		&models.VerificationToken{},
		&models.IDVerification{},
		&models.PaymentTransaction{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	stopWorkers := startWorkers(cfg, gormDB)
	defer stopWorkers()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}

func connectDatabase(cfg *config.Config) *gorm.DB {
	logger.Info("Connecting to database...")

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}

	err = retry.Do(context.Background(), 30*time.Second, func() error {
		return sqlDB.Ping()
	})
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}

	logger.Info("Database connected")
	return gormDB
}

// SetupRouter wires repositories, services and handlers into a gin
// engine. Tests call this directly against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:             cfg.Storage.Type,
		BasePath:         cfg.Storage.BasePath,
		BaseURL:          cfg.Storage.BaseURL,
		Bucket:           cfg.Storage.Bucket,
		Region:           cfg.Storage.Region,
		AccessKey:        cfg.Storage.AccessKey,
		SecretKey:        cfg.Storage.SecretKey,
		Endpoint:         cfg.Storage.Endpoint,
		CloudinaryURL:    cfg.Storage.CloudinaryURL,
		CloudinaryFolder: cfg.Storage.CloudinaryFolder,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	var searchCache *cache.Cache
	if cfg.Redis.Addr != "" {
		searchCache, err = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("Redis unavailable, search caching disabled", "error", err)
			searchCache = nil
		}
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	var geocoder geo.Geocoder
	if cfg.Geocoding.GoogleMapsAPIKey != "" {
		geocoder, err = geo.NewGoogleGeocoder(cfg.Geocoding.GoogleMapsAPIKey)
		if err != nil {
			logger.Warn("Geocoder unavailable, address geocoding disabled", "error", err)
			geocoder = nil
		}
	}

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, searchCache, tokens, geocoder)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	// Cloud backends serve their own URLs; local uploads need a route.
	if cfg.Storage.Type == "local" {
		ginRouter.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	return ginRouter
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	searchCache *cache.Cache,
	tokens *auth.TokenManager,
	geocoder geo.Geocoder,
) *services.ServiceContainer {
	emailProvider := buildEmailProvider(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	petRepo := repositories.NewPetRepository(gormDB)
	caregiverRepo := repositories.NewCaregiverRepository(gormDB)
	bookingRepo := repositories.NewBookingRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	messageRepo := repositories.NewMessageRepository(gormDB)
	verificationRepo := repositories.NewVerificationRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)

	return &services.ServiceContainer{
		AuthService: services.NewAuthService(
			userRepo, caregiverRepo, verificationRepo, emailProvider, tokens, geocoder,
			cfg.Frontend.BaseURL, cfg.OAuth.EmergentSessionURL,
		),
		PetService:       services.NewPetService(petRepo, userRepo, bookingRepo),
		CaregiverService: services.NewCaregiverService(caregiverRepo, userRepo, verificationRepo),
		BookingService:   services.NewBookingService(bookingRepo, petRepo, caregiverRepo, userRepo, emailProvider),
		SearchService:    services.NewSearchService(caregiverRepo, userRepo, searchCache),
		ReviewService:    services.NewReviewService(reviewRepo, bookingRepo, caregiverRepo),
		MessageService:   services.NewMessageService(messageRepo, bookingRepo),
		PaymentService:   services.NewPaymentService(paymentRepo, bookingRepo, cfg.Stripe.SecretKey, cfg.Stripe.Currency),
		UploadService:    services.NewUploadService(storageInstance, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes),
		StatsService:     services.NewStatsService(bookingRepo, petRepo, caregiverRepo, userRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, container.AuthService),
		VerifyPageHandler: handlers.NewVerifyPageHandler(container.AuthService),
		PetHandler:        handlers.NewPetHandler(baseHandler, container.PetService),
		CaregiverHandler:  handlers.NewCaregiverHandler(baseHandler, container.CaregiverService),
		BookingHandler:    handlers.NewBookingHandler(baseHandler, container.BookingService),
		SearchHandler:     handlers.NewSearchHandler(baseHandler, container.SearchService),
		ReviewHandler:     handlers.NewReviewHandler(baseHandler, container.ReviewService),
		MessageHandler:    handlers.NewMessageHandler(baseHandler, container.MessageService),
		PaymentHandler:    handlers.NewPaymentHandler(baseHandler, container.PaymentService),
		UploadHandler:     handlers.NewUploadHandler(baseHandler, container.UploadService),
		StatsHandler:      handlers.NewStatsHandler(baseHandler, container.StatsService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, outbound email disabled")
		return &MockEmailProvider{}
	}

	provider := email.NewGomailProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	}, email.NewTemplateManager())
	if err := provider.Validate(); err != nil {
		logger.Warn("Invalid SMTP configuration, outbound email disabled", "error", err)
		return &MockEmailProvider{}
	}
	return provider
}

func startWorkers(cfg *config.Config, gormDB *gorm.DB) func() {
	bookingRepo := repositories.NewBookingRepository(gormDB)
	userRepo := repositories.NewUserRepository(gormDB)
	caregiverRepo := repositories.NewCaregiverRepository(gormDB)
	verificationRepo := repositories.NewVerificationRepository(gormDB)
	emailProvider := buildEmailProvider(cfg)

	reminder := workers.NewReminderWorker(bookingRepo, userRepo, caregiverRepo, emailProvider, cfg.Workers.ReminderCron)
	if err := reminder.Start(); err != nil {
		logger.Fatal("Failed to start reminder worker", "error", err)
	}

	cleanup := workers.NewTokenCleanupWorker(verificationRepo, time.Duration(cfg.Workers.TokenCleanupInterval)*time.Minute)
	cleanup.Start()

	return func() {
		reminder.Stop()
		cleanup.Stop()
	}
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.FirstAdminEmail
	adminPassword := cfg.Admin.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:         adminEmail,
		PasswordHash:  hashedPassword,
		FirstName:     "Platform",
		LastName:      "Admin",
		Role:          models.UserRoleAdmin,
		IsActive:      true,
		EmailVerified: true,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
