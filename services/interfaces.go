package services

import (
	"context"

	"meow-notes/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetUserByName(ctx context.Context, username string) ([]models.User, error)
	GetIDByUser(ctx context.Context, username string) (int64, error)
	CreateUser(ctx context.Context, username, passwordDigest string) (string, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	GetNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error)
	GetNoteByID(ctx context.Context, ownerID, noteID int64) ([]models.Note, error)
	CreateNote(ctx context.Context, ownerID int64, title string, tags []string, content string) (string, error)
	UpdateNote(ctx context.Context, ownerID, noteID int64, title string, tags []string, content string) (string, error)
	DeleteNoteByID(ctx context.Context, ownerID, noteID int64) (string, error)
	Search(ctx context.Context, ownerID int64, term string, fields []string) ([]models.Note, error)
}

// PasswordHasher hashes and checks passwords
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(digest, plain string) bool
}

// SessionStore defines the interface for session management
type SessionStore interface {
	Create(username string) (*models.Session, error)
	Get(sessionID string) (*models.Session, error)
	Update(session *models.Session) error
	Delete(sessionID string) error
}
