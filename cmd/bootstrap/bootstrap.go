package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/config"
	deliveryHttp "github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/http"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/http/handler"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/http/middleware"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/infrastructure/cache"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/infrastructure/database"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/infrastructure/messaging"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/infrastructure/objectstore"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/repository"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/service"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/usecase"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/pkg/jwt"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Consumer    *messaging.KafkaBundleConsumer
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply database migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize bronze object store (optional)
	var bronzeStore objectstore.BronzeStore
	if cfg.S3.Enabled {
		bronzeStore, err = objectstore.NewS3BronzeStore(context.Background(), cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize bronze store: %w", err)
		}
	}

	// Initialize all layers
	server, ingestUsecase := initializeServer(cfg, db, redisClient, bronzeStore)
	app.Server = server

	// Initialize Kafka consumer (optional)
	if cfg.Kafka.Enabled {
		log := logrus.StandardLogger()
		app.Consumer = messaging.NewKafkaBundleConsumer(cfg.Kafka, func(ctx context.Context, key, value []byte) error {
			_, err := ingestUsecase.IngestBundle(ctx, value, entity.TriggerKafka)
			return err
		}, log)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, bronzeStore objectstore.BronzeStore) (*http.Server, usecase.IngestUsecase) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	bronzeRepo := repository.NewBronzeResourceRepository()
	silverRepo := repository.NewSilverPatientRepository()
	runRepo := repository.NewPipelineRunRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditRepo)
	maskingService := service.NewMaskingService()
	qualityService := service.NewQualityService(log)
	generatorService := service.NewGeneratorService()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, cfg.Auth, jwtService, redisClient, auditService)
	ingestUsecase := usecase.NewIngestUsecase(db, log, cfg.Pipeline, bronzeRepo, runRepo, auditService, generatorService, bronzeStore)
	transformUsecase := usecase.NewTransformUsecase(db, log, cfg.Pipeline, redisClient, bronzeRepo, silverRepo, runRepo, maskingService, qualityService, auditService)
	stagingUsecase := usecase.NewStagingUsecase(db, log, cfg.Pipeline, redisClient, silverRepo)
	runUsecase := usecase.NewPipelineRunUsecase(db, log, runRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	pipelineHandler := handler.NewPipelineHandler(ingestUsecase, transformUsecase, runUsecase, customValidator)
	stagingHandler := handler.NewStagingHandler(stagingUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, pipelineHandler, stagingHandler, auditLogHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, ingestUsecase
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start Kafka consumer
	if app.Consumer != nil {
		app.Consumer.Start()
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Stop consuming new bundles first
	if app.Consumer != nil {
		app.Consumer.Stop()
	}

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
