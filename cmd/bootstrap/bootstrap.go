package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"encontrapsi/config"
	deliveryHttp "encontrapsi/internal/delivery/http"
	"encontrapsi/internal/delivery/http/handler"
	"encontrapsi/internal/delivery/http/middleware"
	"encontrapsi/internal/domain/entity"
	"encontrapsi/internal/flow"
	"encontrapsi/internal/gateway/mercadopago"
	"encontrapsi/internal/infrastructure/cache"
	"encontrapsi/internal/infrastructure/database"
	"encontrapsi/internal/metrics"
	"encontrapsi/internal/repository"
	"encontrapsi/internal/service"
	"encontrapsi/internal/usecase"
	"encontrapsi/pkg/jwt"
	"encontrapsi/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// checkoutRequestsPerMinute limits how often one client can open a
// subscription checkout.
const checkoutRequestsPerMinute = 10

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	rateLimiter *middleware.RateLimitMiddleware
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

	// Run migrations before opening the pooled connection
	if err := database.RunMigrations(database.MigrationURL(cfg.DB)); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

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

	// Initialize all layers
	server, rateLimiter, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server
	app.rateLimiter = rateLimiter

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *middleware.RateLimitMiddleware, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	psychologistRepo := repository.NewPsychologistRepository()
	questionRepo := repository.NewQuestionRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	subscriptionRepo := repository.NewSubscriptionRepository()
	notificationRepo := repository.NewNotificationRepository()

	// The scoring tally breaks if a question covers an approach twice or
	// misses one, so an invalid bank refuses to start.
	questions, err := questionRepo.FindAll(db)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load question bank: %w", err)
	}
	if err := entity.ValidateQuestionBank(questions); err != nil {
		return nil, nil, err
	}
	logrus.Infof("Question bank validated: %d questions", len(questions))

	// Initialize services
	scoringService := service.NewScoringService()
	directoryService := service.NewDirectoryService()
	attemptStore := service.NewRedisAttemptStore(redisClient, log)
	notificationService := service.NewNotificationService(db, log, notificationRepo)
	flowMachine := flow.NewMachine()
	flowStore := flow.NewRedisStore(redisClient, log)

	// Initialize payment gateway
	paymentGateway, err := mercadopago.NewClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize payment gateway: %w", err)
	}

	subscriptionAmount, err := decimal.NewFromString(cfg.MercadoPago.Amount)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid subscription amount %q: %w", cfg.MercadoPago.Amount, err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient)
	quizUsecase := usecase.NewQuizUsecase(db, log, questionRepo, scoringService, attemptStore, collector)
	directoryUsecase := usecase.NewDirectoryUsecase(db, log, psychologistRepo, directoryService, attemptStore, collector)
	psychologistUsecase := usecase.NewPsychologistUsecase(db, log, userRepo, psychologistRepo, subscriptionRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, psychologistRepo, notificationService, collector)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentGateway, psychologistRepo, subscriptionRepo, notificationService, collector, subscriptionAmount)
	flowUsecase := usecase.NewFlowUsecase(db, log, questionRepo, flowMachine, flowStore)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	quizHandler := handler.NewQuizHandler(quizUsecase, customValidator)
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase, customValidator)
	psychologistHandler := handler.NewPsychologistHandler(psychologistUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	flowHandler := handler.NewFlowHandler(flowUsecase, customValidator)
	therapyHandler := handler.NewTherapyHandler()
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(checkoutRequestsPerMinute)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		quizHandler,
		directoryHandler,
		psychologistHandler,
		appointmentHandler,
		paymentHandler,
		flowHandler,
		therapyHandler,
		notificationHandler,
		authMiddleware,
		corsMiddleware,
		rateLimitMiddleware,
		registry,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, rateLimitMiddleware, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
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
	if app.rateLimiter != nil {
		app.rateLimiter.Stop()
	}

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
