package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estatehub/config"
	deliveryHttp "estatehub/internal/delivery/http"
	"estatehub/internal/delivery/http/handler"
	"estatehub/internal/delivery/http/middleware"
	"estatehub/internal/delivery/http/view"
	domainRepo "estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/cache"
	"estatehub/internal/repository"
	"estatehub/internal/service"
	"estatehub/internal/usecase"
	"estatehub/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Sessions    domainRepo.SessionRepository
	Locks       *service.SessionLockService
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	log := logrus.StandardLogger()

	// Initialize session storage
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		app.Sessions = repository.NewRedisSessionRepository(redisClient, cfg.Session.TTL)
	default:
		app.Sessions = repository.NewMemorySessionRepository(cfg.Session.TTL, log)
	}
	logrus.Infof("Session store ready: backend=%s, ttl=%s", cfg.Session.Backend, cfg.Session.TTL)

	app.Locks = service.NewSessionLockService(log)

	// Initialize all layers
	server, err := initializeServer(cfg, log, app.Sessions, app.Locks)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, sessionRepo domainRepo.SessionRepository, locks *service.SessionLockService) (*http.Server, error) {
	clock := usecase.Clock(time.Now)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize templates
	renderer, err := view.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize repositories
	slotRepo := repository.NewSlotRepository()
	propertyRepo := repository.NewPropertyRepository()

	// Initialize usecases
	sessionAccessor := usecase.NewSessionAccessor(sessionRepo, locks, clock)
	sessionUsecase := usecase.NewSessionUsecase(log, sessionRepo, locks, clock)
	propertyUsecase := usecase.NewPropertyUsecase(propertyRepo)
	draftUsecase := usecase.NewDraftUsecase(log, sessionAccessor, slotRepo, clock)
	calendarUsecase := usecase.NewCalendarUsecase(log, sessionAccessor, slotRepo, clock)
	bookingUsecase := usecase.NewBookingUsecase(log, sessionAccessor, customValidator, clock)
	dashboardUsecase := usecase.NewDashboardUsecase(log, sessionAccessor, slotRepo, clock)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(log, propertyUsecase, dashboardUsecase, draftUsecase, calendarUsecase, bookingUsecase, customValidator, renderer)
	propertyHandler := handler.NewPropertyHandler(propertyUsecase)
	calendarHandler := handler.NewCalendarHandler(calendarUsecase)
	draftHandler := handler.NewDraftHandler(draftUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase)
	sessionHandler := handler.NewSessionHandler(sessionUsecase, cfg.Session.CookieName, cfg.Session.CookieSecure)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	sessionMiddleware := middleware.NewSessionMiddleware(sessionUsecase, log, cfg.Session.CookieName, cfg.Session.CookieSecure, cfg.Session.TTL)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		pageHandler,
		propertyHandler,
		calendarHandler,
		draftHandler,
		bookingHandler,
		sessionHandler,
		corsMiddleware,
		sessionMiddleware,
		loggingMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
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

// Close stops background workers and closes the session store
func (app *App) Close() {
	if app.Locks != nil {
		app.Locks.Stop()
	}

	if app.Sessions != nil {
		if err := app.Sessions.Close(); err != nil {
			logrus.Errorf("Failed to close session store: %v", err)
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
