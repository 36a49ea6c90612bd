package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"meow-notes/export"
	"meow-notes/models"
)

// searchFields are the fields a filter may select.
var searchFields = []string{"title", "tags", "content"}

// NoteService handles business logic for notes
type NoteService struct {
	repo     NoteRepository
	sessions SessionStore
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository, sessions SessionStore) *NoteService {
	return &NoteService{
		repo:     repo,
		sessions: sessions,
	}
}

// Dashboard is the landing view for a signed-in user
type Dashboard struct {
	Message string        `json:"message"`
	Notes   []models.Note `json:"notes"`
}

// SearchResult is a search or filter outcome. Notes are in no particular order.
type SearchResult struct {
	Term   string        `json:"term"`
	Fields []string      `json:"fields"`
	Count  int           `json:"count"`
	Notes  []models.Note `json:"notes"`
}

func owner(rc models.RequestContext) (int64, error) {
	if !rc.Authenticated() {
		return 0, ErrUnauthorized
	}
	return *rc.UserID, nil
}

// Dashboard lists the user's notes oldest first
func (ns *NoteService) Dashboard(ctx context.Context, rc models.RequestContext) (*Dashboard, error) {
	ownerID, err := owner(rc)
	if err != nil {
		return nil, err
	}

	notes, err := ns.repo.GetNotesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Message: fmt.Sprintf("Hello %s! Here are your notes.", rc.Username),
		Notes:   notes,
	}, nil
}

// Get retrieves one of the user's notes
func (ns *NoteService) Get(ctx context.Context, rc models.RequestContext, noteID int64) (*models.Note, error) {
	ownerID, err := owner(rc)
	if err != nil {
		return nil, err
	}

	notes, err := ns.repo.GetNoteByID(ctx, ownerID, noteID)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, ErrNoteNotFound
	}
	return &notes[0], nil
}

// View retrieves a note and remembers it as the last one viewed. A zero
// noteID reopens the last viewed note.
func (ns *NoteService) View(ctx context.Context, rc models.RequestContext, noteID int64) (*models.Note, error) {
	if _, err := owner(rc); err != nil {
		return nil, err
	}

	sess, err := ns.sessions.Get(rc.SessionID)
	if err != nil {
		return nil, err
	}

	if noteID == 0 {
		if sess == nil || sess.LastNoteID == 0 {
			return nil, ErrNoteNotFound
		}
		noteID = sess.LastNoteID
	} else if sess != nil {
		sess.LastNoteID = noteID
		if err := ns.sessions.Update(sess); err != nil {
			return nil, err
		}
	}

	return ns.Get(ctx, rc, noteID)
}

// Export renders a note for download and returns its file name
func (ns *NoteService) Export(ctx context.Context, rc models.RequestContext, noteID int64) (templ.Component, string, error) {
	note, err := ns.Get(ctx, rc, noteID)
	if err != nil {
		return nil, "", err
	}
	return export.Note(*note), export.FileName(note.ID), nil
}

// Create stores a new note. tags is a comma-separated list.
func (ns *NoteService) Create(ctx context.Context, rc models.RequestContext, title, tags, content string) (string, error) {
	ownerID, err := owner(rc)
	if err != nil {
		return "", err
	}
	return ns.repo.CreateNote(ctx, ownerID, title, ParseTags(tags), content)
}

// Update replaces a note's title, tags and content
func (ns *NoteService) Update(ctx context.Context, rc models.RequestContext, noteID int64, title, tags, content string) (string, error) {
	ownerID, err := owner(rc)
	if err != nil {
		return "", err
	}
	return ns.repo.UpdateNote(ctx, ownerID, noteID, title, ParseTags(tags), content)
}

// Delete removes a note
func (ns *NoteService) Delete(ctx context.Context, rc models.RequestContext, noteID int64) (string, error) {
	ownerID, err := owner(rc)
	if err != nil {
		return "", err
	}
	return ns.repo.DeleteNoteByID(ctx, ownerID, noteID)
}

// Search looks for term in every field and remembers the term, lower-cased,
// for later filtering.
func (ns *NoteService) Search(ctx context.Context, rc models.RequestContext, term string) (*SearchResult, error) {
	ownerID, err := owner(rc)
	if err != nil {
		return nil, err
	}

	sess, err := ns.sessions.Get(rc.SessionID)
	if err != nil {
		return nil, err
	}
	if sess != nil {
		sess.LastSearch = strings.ToLower(term)
		if err := ns.sessions.Update(sess); err != nil {
			return nil, err
		}
	}

	return ns.search(ctx, ownerID, term, searchFields)
}

// ClearSearch forgets the last search term, so a filter needs a new search
func (ns *NoteService) ClearSearch(rc models.RequestContext) error {
	if _, err := owner(rc); err != nil {
		return err
	}

	sess, err := ns.sessions.Get(rc.SessionID)
	if err != nil {
		return err
	}
	if sess == nil || sess.LastSearch == "" {
		return nil
	}
	sess.LastSearch = ""
	return ns.sessions.Update(sess)
}

// Filter repeats the last search restricted to fields
func (ns *NoteService) Filter(ctx context.Context, rc models.RequestContext, fields []string) (*SearchResult, error) {
	ownerID, err := owner(rc)
	if err != nil {
		return nil, err
	}

	for _, f := range fields {
		if !isSearchField(f) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidField, f)
		}
	}

	sess, err := ns.sessions.Get(rc.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.LastSearch == "" {
		return nil, ErrNoSearchTerm
	}

	if len(fields) == 0 {
		return &SearchResult{Term: sess.LastSearch, Fields: []string{}, Notes: []models.Note{}}, nil
	}
	return ns.search(ctx, ownerID, sess.LastSearch, fields)
}

func (ns *NoteService) search(ctx context.Context, ownerID int64, term string, fields []string) (*SearchResult, error) {
	notes, err := ns.repo.Search(ctx, ownerID, term, fields)
	if err != nil {
		return nil, err
	}
	return &SearchResult{
		Term:   term,
		Fields: fields,
		Count:  len(notes),
		Notes:  notes,
	}, nil
}

// ParseTags splits a comma-separated tag list, trimming blanks and dropping
// empty entries.
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func isSearchField(field string) bool {
	for _, f := range searchFields {
		if f == field {
			return true
		}
	}
	return false
}
