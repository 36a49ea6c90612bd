package app

import (
	"log/slog"

	"meow-notes/database"
	"meow-notes/pkg/password"
	"meow-notes/services"
	"meow-notes/session"
	"meow-notes/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB           *database.DB
	Repo         *database.Repository
	SessionStore *session.Store
	AuthService  *services.AuthService
	NoteService  *services.NoteService
	Validator    *validator.Validator
	Logger       *slog.Logger
}

// New creates a new App instance with all dependencies
func New(db *database.DB, sessionStore *session.Store, logger *slog.Logger) *App {
	repo := database.NewRepository(db)

	return &App{
		DB:           db,
		Repo:         repo,
		SessionStore: sessionStore,
		AuthService:  services.NewAuthService(repo, sessionStore, password.New()),
		NoteService:  services.NewNoteService(repo, sessionStore),
		Validator:    validator.New(),
		Logger:       logger,
	}
}
