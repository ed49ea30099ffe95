package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"family-records-api/config"
	deliveryHttp "family-records-api/internal/delivery/http"
	"family-records-api/internal/delivery/http/handler"
	"family-records-api/internal/delivery/http/middleware"
	"family-records-api/internal/infrastructure/cache"
	"family-records-api/internal/infrastructure/database"
	"family-records-api/internal/reminder"
	"family-records-api/internal/repository"
	"family-records-api/internal/service"
	"family-records-api/internal/usecase"
	"family-records-api/pkg/jwt"
	"family-records-api/pkg/validator"

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
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository()
	memberRepo := repository.NewFamilyMemberRepository()
	documentRepo := repository.NewDocumentRepository()
	vehicleRepo := repository.NewVehicleRepository()
	healthRepo := repository.NewHealthRecordRepository()
	reminderRepo := repository.NewReminderRepository()
	docTypeRepo := repository.NewDocumentTypeRepository()
	bloodGroupRepo := repository.NewBloodGroupRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	feedCache := service.NewFeedCacheService(redisClient, log, cfg.Reminder.FeedCacheTTL)

	// Reminder engine
	engine := reminder.NewEngine(reminder.Windows{
		DocumentDays: cfg.Reminder.DocumentWindowDays,
		VehicleDays:  cfg.Reminder.VehicleWindowDays,
		BirthdayDays: cfg.Reminder.BirthdayWindowDays,
	})

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient, auditService)
	memberUsecase := usecase.NewFamilyMemberUsecase(db, log, memberRepo, userRepo, auditService, feedCache)
	documentUsecase := usecase.NewDocumentUsecase(db, log, documentRepo, auditService, feedCache)
	vehicleUsecase := usecase.NewVehicleUsecase(db, log, vehicleRepo, auditService, feedCache)
	healthUsecase := usecase.NewHealthRecordUsecase(db, log, healthRepo, auditService, feedCache)
	reminderUsecase := usecase.NewReminderUsecase(db, log, engine, reminderRepo, documentRepo, vehicleRepo, healthRepo, memberRepo, auditService, feedCache)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, memberRepo, documentRepo, vehicleRepo, healthRepo, reminderUsecase)
	lookupUsecase := usecase.NewLookupUsecase(db, log, docTypeRepo, bloodGroupRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	memberHandler := handler.NewFamilyMemberHandler(memberUsecase, customValidator)
	documentHandler := handler.NewDocumentHandler(documentUsecase, customValidator)
	vehicleHandler := handler.NewVehicleHandler(vehicleUsecase, customValidator)
	healthHandler := handler.NewHealthRecordHandler(healthUsecase, customValidator)
	reminderHandler := handler.NewReminderHandler(reminderUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, customValidator)
	lookupHandler := handler.NewLookupHandler(lookupUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Router
	router := deliveryHttp.NewRouter(
		authHandler,
		memberHandler,
		documentHandler,
		vehicleHandler,
		healthHandler,
		reminderHandler,
		dashboardHandler,
		lookupHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
