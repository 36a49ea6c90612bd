package database

import (
	"context"
	"fmt"
	"time"

	"meow-notes/models"
	"meow-notes/query"
)

// ==================== NOTE OPERATIONS ====================

// SearchFields are the note columns a search may look in.
var SearchFields = []string{colTitle, colTags, colContent}

// GetNotesByOwner returns all of a user's notes, oldest first.
func (r *Repository) GetNotesByOwner(ctx context.Context, ownerID int64) ([]models.Note, error) {
	rows, err := r.read(ctx, query.SelectWhere, NotesTable, query.Where(ownerID, colOwnerID))
	if err != nil {
		return nil, err
	}
	return ProcessNotes(rows)
}

// GetNoteByID returns the note as a one-element slice, or an empty slice
// when the user has no note with that id.
func (r *Repository) GetNoteByID(ctx context.Context, ownerID, noteID int64) ([]models.Note, error) {
	rows, err := r.read(ctx, query.SelectWhere, NotesTable,
		query.Where(ownerID, colOwnerID),
		query.Where(noteID, colID),
	)
	if err != nil {
		return nil, err
	}
	return ProcessNotes(rows)
}

func (r *Repository) CreateNote(ctx context.Context, ownerID int64, title string, tags []string, content string) (string, error) {
	createdAt := time.Now().Format(CreatedAtLayout)

	err := r.write(ctx, query.Insert, NotesTable,
		query.Data(ownerID, colOwnerID),
		query.Data(createdAt, colCreated),
		query.Data(title, colTitle),
		query.Data(JoinTags(tags), colTags),
		query.Data(content, colContent),
	)
	if err != nil {
		return "Note was unable to be created! Error: " + err.Error(), err
	}
	return fmt.Sprintf("Note with title '%s' was created.", title), nil
}

// UpdateNote replaces title, tags and content. created_at is never touched.
func (r *Repository) UpdateNote(ctx context.Context, ownerID, noteID int64, title string, tags []string, content string) (string, error) {
	err := r.write(ctx, query.UpdateWhere, NotesTable,
		query.Where(ownerID, colOwnerID),
		query.Where(noteID, colID),
		query.Data(title, colTitle),
		query.Data(JoinTags(tags), colTags),
		query.Data(content, colContent),
	)
	if err != nil {
		return "Note was unable to be modified! Error: " + err.Error(), err
	}
	return fmt.Sprintf("Note with title '%s' was modified.", title), nil
}

func (r *Repository) DeleteNoteByID(ctx context.Context, ownerID, noteID int64) (string, error) {
	err := r.write(ctx, query.DeleteWhere, NotesTable,
		query.Where(ownerID, colOwnerID),
		query.Where(noteID, colID),
	)
	if err != nil {
		return "Note was unable to be deleted! Error: " + err.Error(), err
	}
	return fmt.Sprintf("Note with id '%d' was deleted.", noteID), nil
}
