package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"farm-market.backend/internal/config"
	"farm-market.backend/internal/infrastructure/images"
	"farm-market.backend/internal/infrastructure/jobs"
	"farm-market.backend/internal/infrastructure/notifications"
	"farm-market.backend/internal/infrastructure/repositories"
	"farm-market.backend/internal/infrastructure/vision"
	"farm-market.backend/internal/interfaces/http/handlers"
	"farm-market.backend/internal/interfaces/http/middleware"
	"farm-market.backend/internal/usecases"
	"farm-market.backend/pkg/jwt"
	"farm-market.backend/pkg/logger"
	"farm-market.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	farmerRepo := repositories.NewFarmerProfileRepository(db)
	companyRepo := repositories.NewCompanyProfileRepository(db)
	productRepo := repositories.NewProductRepository(db)
	decisionRepo := repositories.NewDecisionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize verification pipeline
	resolver := images.NewResolver(cfg.Uploads.BaseURL, cfg.Uploads.ProductImagesPath)
	visionClient := vision.NewClient(cfg.Verification.APIKey, cfg.Verification.Endpoint, cfg.Verification.Model, cfg.Verification.Timeout)
	engine := usecases.NewVerificationEngine(
		visionClient,
		resolver,
		cfg.Verification.APIKey != "",
		cfg.Verification.ConfidenceThreshold,
		cfg.Verification.Timeout,
	)

	// Initialize notification dispatch
	mailer := notifications.NewSMTPMailer(cfg.SMTP)
	dispatcher := jobs.NewNotificationDispatcher(mailer, 256)

	// Initialize usecases
	onboardingUsecase := usecases.NewOnboardingUsecase(userRepo, farmerRepo, companyRepo)
	identityUsecase := usecases.NewIdentityUsecase(userRepo, onboardingUsecase, uow, jwtService)
	productUsecase := usecases.NewProductUsecase(productRepo, farmerRepo, engine)
	decisionUsecase := usecases.NewDecisionUsecase(userRepo, farmerRepo, companyRepo, productRepo, decisionRepo, uow, dispatcher)
	gate := usecases.NewApprovalGate(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(identityUsecase, sessionStore)
	profileHandler := handlers.NewProfileHandler(onboardingUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	adminHandler := handlers.NewAdminHandler(decisionUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go dispatcher.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		productHandler: productHandler,
		adminHandler:   adminHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
		gate:           gate,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		dispatcher.Stop()
		cancel()
	}()

	// Start server
	log.Printf("Farm Market backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
