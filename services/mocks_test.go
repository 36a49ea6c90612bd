package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"meow-notes/models"
)

// ==================== MOCKS ====================

// MockUserRepository is a mock implementation of UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

// Ensure MockUserRepository implements UserRepository interface
var _ UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) GetUserByName(ctx context.Context, username string) ([]models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetIDByUser(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, username, passwordDigest string) (string, error) {
	args := m.Called(ctx, username, passwordDigest)
	return args.String(0), args.Error(1)
}

// MockNoteRepository is a mock implementation of NoteRepository interface
type MockNoteRepository struct {
	mock.Mock
}

// Ensure MockNoteRepository implements NoteRepository interface
var _ NoteRepository = (*MockNoteRepository)(nil)

func (m *MockNoteRepository) GetNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) GetNoteByID(ctx context.Context, ownerID, noteID int64) ([]models.Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) CreateNote(ctx context.Context, ownerID int64, title string, tags []string, content string) (string, error) {
	args := m.Called(ctx, ownerID, title, tags, content)
	return args.String(0), args.Error(1)
}

func (m *MockNoteRepository) UpdateNote(ctx context.Context, ownerID, noteID int64, title string, tags []string, content string) (string, error) {
	args := m.Called(ctx, ownerID, noteID, title, tags, content)
	return args.String(0), args.Error(1)
}

func (m *MockNoteRepository) DeleteNoteByID(ctx context.Context, ownerID, noteID int64) (string, error) {
	args := m.Called(ctx, ownerID, noteID)
	return args.String(0), args.Error(1)
}

func (m *MockNoteRepository) Search(ctx context.Context, ownerID int64, term string, fields []string) ([]models.Note, error) {
	args := m.Called(ctx, ownerID, term, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

// MockSessionStore is a mock implementation of SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

// Ensure MockSessionStore implements SessionStore interface
var _ SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(username string) (*models.Session, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Get(sessionID string) (*models.Session, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Update(session *models.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionStore) Delete(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

// fakeHasher prefixes the password so tests can tell digests from plaintext
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Verify(digest, plain string) bool { return digest == "hashed:"+plain }

func userContext(id int64, username, sessionID string) models.RequestContext {
	return models.RequestContext{UserID: &id, Username: username, SessionID: sessionID}
}
