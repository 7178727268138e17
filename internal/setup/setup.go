package setup

import (
	"context"

	"github.com/harborlight/harborlight/internal/database"
	"github.com/harborlight/harborlight/internal/redis"
	"github.com/harborlight/harborlight/internal/setup/config"
	"go.uber.org/zap"
)

// App bundles all core dependencies and services needed by the application.
// Each field represents a major subsystem that needs initialization and cleanup.
type App struct {
	Config       *config.Config  // Application configuration
	Logger       *zap.Logger     // Main application logger
	DBLogger     *zap.Logger     // Database-specific logger
	DB           database.Client // Database connection pool
	RedisManager *redis.Manager  // Redis connection manager
}

// InitializeApp bootstraps all application dependencies in the correct order,
// ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context, logDir string) (*App, error) {
	// Load app configuration
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logger, dbLogger, err := GetLoggers(logDir, cfg.Common.Debug.LogLevel, cfg.Common.Debug.MaxLogsToKeep)
	if err != nil {
		return nil, err
	}

	// Redis manager provides connection pools for the triage queue and caches
	redisManager := redis.NewManager(&cfg.Common.Redis, logger)

	// Initialize database with migrations
	db, err := database.NewConnection(ctx, &cfg.Common.PostgreSQL, dbLogger, true)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:       cfg,
		Logger:       logger,
		DBLogger:     dbLogger,
		DB:           db,
		RedisManager: redisManager,
	}, nil
}

// Cleanup ensures graceful shutdown of all components in reverse initialization
// order. Logs but does not fail on individual component errors.
func (app *App) Cleanup(_ context.Context) {
	if err := app.DB.Close(); err != nil {
		app.Logger.Error("Failed to close database connection", zap.Error(err))
	}

	app.RedisManager.Close()

	_ = app.Logger.Sync()
	_ = app.DBLogger.Sync()
}
