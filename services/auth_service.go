package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"meow-notes/database"
	"meow-notes/models"
)

// AuthService handles login, logout and resolving the caller of a request
type AuthService struct {
	users    UserRepository
	sessions SessionStore
	hasher   PasswordHasher
}

// NewAuthService creates a new auth service
func NewAuthService(users UserRepository, sessions SessionStore, hasher PasswordHasher) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

// LoginResult contains the session and what happened during login
type LoginResult struct {
	Session *models.Session
	Created bool
	Message string
}

// Login signs a user in, registering the account on first use of a username.
func (as *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	username = strings.ToLower(username)

	users, err := as.users.GetUserByName(ctx, username)
	if err != nil {
		return nil, err
	}

	result := &LoginResult{}
	if len(users) > 0 {
		if !as.hasher.Verify(users[0].PasswordDigest, password) {
			return nil, ErrWrongPassword
		}
		result.Message = fmt.Sprintf("Welcome back, %s!", username)
	} else {
		digest, err := as.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		msg, err := as.users.CreateUser(ctx, username, digest)
		if errors.Is(err, database.ErrConstraintViolation) {
			return nil, fmt.Errorf("%w: %s", ErrUsernameTaken, msg)
		}
		if err != nil {
			return nil, err
		}
		slog.Info("user registered", "username", username)
		result.Created = true
		result.Message = msg
	}

	sess, err := as.sessions.Create(username)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	result.Session = sess
	return result, nil
}

// Logout ends the session
func (as *AuthService) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return as.sessions.Delete(sessionID)
}

// Resolve builds the request context for a session id. Unknown or expired
// sessions, and sessions whose user no longer exists, resolve to an
// anonymous context.
func (as *AuthService) Resolve(ctx context.Context, sessionID string) (models.RequestContext, error) {
	if sessionID == "" {
		return models.RequestContext{}, nil
	}

	sess, err := as.sessions.Get(sessionID)
	if err != nil {
		return models.RequestContext{}, err
	}
	if sess == nil {
		return models.RequestContext{}, nil
	}

	userID, err := as.users.GetIDByUser(ctx, sess.Username)
	if errors.Is(err, database.ErrNotFound) {
		_ = as.sessions.Delete(sessionID)
		return models.RequestContext{}, nil
	}
	if err != nil {
		return models.RequestContext{}, err
	}

	if err := as.sessions.Update(sess); err != nil {
		return models.RequestContext{}, err
	}

	return models.RequestContext{
		UserID:    &userID,
		Username:  sess.Username,
		SessionID: sess.ID,
	}, nil
}
