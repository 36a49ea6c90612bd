package setup

import (
	"context"
	"log/slog"
	"time"

	"meow-notes/app"
	"meow-notes/config"
	"meow-notes/database"
	"meow-notes/session"
)

// sessionCleanupInterval is how often expired sessions are swept
const sessionCleanupInterval = time.Hour

// InitDatabase opens the SQLite database and applies the schema
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies. The session
// cleanup routine stops when ctx is cancelled.
func InitApp(ctx context.Context, db *database.DB, logger *slog.Logger) *app.App {
	sessionStore := session.NewStore(config.AppConfig.SessionTTL)
	logger.Info("session store initialized", "ttl", config.AppConfig.SessionTTL)

	sessionStore.StartCleanupRoutine(ctx, sessionCleanupInterval)
	logger.Info("session cleanup routine started")

	application := app.New(db, sessionStore, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
