package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meow-notes/models"
	"meow-notes/query"
)

// ==================== USER OPERATIONS ====================

// GetUserByName returns the users whose stored name equals username exactly.
func (r *Repository) GetUserByName(ctx context.Context, username string) ([]models.User, error) {
	rows, err := r.read(ctx, query.SelectWhere, UsersTable, query.Where(username, colUsername))
	if err != nil {
		return nil, err
	}
	return parseUsers(rows)
}

func (r *Repository) GetUserByID(ctx context.Context, userID int64) ([]models.User, error) {
	rows, err := r.read(ctx, query.SelectWhere, UsersTable, query.Where(userID, colID))
	if err != nil {
		return nil, err
	}
	return parseUsers(rows)
}

// GetIDByUser resolves a username to its id.
func (r *Repository) GetIDByUser(ctx context.Context, username string) (int64, error) {
	users, err := r.GetUserByName(ctx, username)
	if err != nil {
		return 0, err
	}
	if len(users) == 0 {
		return 0, ErrNotFound
	}
	return users[0].ID, nil
}

// CreateUser stores a new user under the lower-cased username.
func (r *Repository) CreateUser(ctx context.Context, username, passwordDigest string) (string, error) {
	username = strings.ToLower(username)

	err := r.write(ctx, query.Insert, UsersTable,
		query.Data(username, colUsername),
		query.Data(passwordDigest, colPassword),
	)
	if errors.Is(err, ErrConstraintViolation) {
		return "Oh no! That username already exists! Choose another (or enter the correct password).", err
	}
	if err != nil {
		return "User was unable to be created! Error: " + err.Error(), err
	}
	return fmt.Sprintf("Welcome! An account for %s was created!", username), nil
}

// DeleteUserByID removes a user and, through the foreign key, their notes.
func (r *Repository) DeleteUserByID(ctx context.Context, userID int64) (string, error) {
	if err := r.write(ctx, query.DeleteWhere, UsersTable, query.Where(userID, colID)); err != nil {
		return "User was unable to be deleted! Error: " + err.Error(), err
	}
	return fmt.Sprintf("User with id '%d' was deleted.", userID), nil
}

func parseUsers(rows []Row) ([]models.User, error) {
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		user, err := ParseUser(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
