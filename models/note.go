package models

import "time"

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	PasswordDigest string `json:"-"`
}

// Note is a stored note. DisplayDate is derived from CreatedAt on read and
// never persisted.
type Note struct {
	ID          int64    `json:"id"`
	OwnerID     int64    `json:"owner_id"`
	CreatedAt   string   `json:"created_at"`
	DisplayDate string   `json:"display_date"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Content     string   `json:"content"`
}

type Session struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	LastNoteID int64     `json:"last_note_id,omitempty"`
	LastSearch string    `json:"last_search,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// RequestContext carries the caller's identity into every service call.
// UserID is nil for anonymous requests.
type RequestContext struct {
	UserID    *int64
	Username  string
	SessionID string
}

func (rc RequestContext) Authenticated() bool {
	return rc.UserID != nil
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64,username"`
	Password string `json:"password" validate:"required,max=256"`
}

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"max=200"`
	Tags    string `json:"tags" validate:"max=500,tags"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title" validate:"max=200"`
	Tags    string `json:"tags" validate:"max=500,tags"`
	Content string `json:"content"`
}

type SearchRequest struct {
	Term string `json:"term" validate:"required,max=200"`
}

type FilterRequest struct {
	Fields []string `json:"fields" validate:"dive,searchfield"`
}
