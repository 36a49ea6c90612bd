package database

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"meow-notes/models"
)

const (
	// CreatedAtLayout is how note creation timestamps are stored.
	CreatedAtLayout = "2006-01-02T15:04:05.000000"

	// displayDateLayout prints the month number where the minutes belong
	// ("May 05, 16:05" at 16:15 in May). Stored output depends on it.
	displayDateLayout = "Jan 02, 15:01"
)

// ParseUser maps a users row: id, username, password digest.
func ParseUser(row Row) (models.User, error) {
	if len(row) < 3 {
		return models.User{}, fmt.Errorf("user row has %d columns, want 3", len(row))
	}
	id, err := asInt64(row[0])
	if err != nil {
		return models.User{}, fmt.Errorf("user id: %w", err)
	}
	return models.User{
		ID:             id,
		Username:       asString(row[1]),
		PasswordDigest: asString(row[2]),
	}, nil
}

// ParseNote maps a notes row: id, owner id, created at, title, tags, content.
func ParseNote(row Row) (models.Note, error) {
	if len(row) < 6 {
		return models.Note{}, fmt.Errorf("note row has %d columns, want 6", len(row))
	}
	id, err := asInt64(row[0])
	if err != nil {
		return models.Note{}, fmt.Errorf("note id: %w", err)
	}
	ownerID, err := asInt64(row[1])
	if err != nil {
		return models.Note{}, fmt.Errorf("note owner id: %w", err)
	}

	createdAt := asString(row[2])
	displayDate, err := DisplayDate(createdAt)
	if err != nil {
		return models.Note{}, fmt.Errorf("note %d: %w", id, err)
	}

	return models.Note{
		ID:          id,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
		DisplayDate: displayDate,
		Title:       asString(row[3]),
		Tags:        SplitTags(asString(row[4])),
		Content:     asString(row[5]),
	}, nil
}

// ProcessNotes maps rows to notes ordered by creation time, oldest first.
func ProcessNotes(rows []Row) ([]models.Note, error) {
	notes, err := parseNotes(rows)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt < notes[j].CreatedAt
	})
	return notes, nil
}

func parseNotes(rows []Row) ([]models.Note, error) {
	notes := make([]models.Note, 0, len(rows))
	for _, row := range rows {
		note, err := ParseNote(row)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// DisplayDate renders a stored creation timestamp for the UI.
func DisplayDate(createdAt string) (string, error) {
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, createdAt); err == nil {
			return t.Format(displayDateLayout), nil
		}
	}
	return "", fmt.Errorf("unparseable timestamp %q", createdAt)
}

// JoinTags is the stored form of a tag list.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// SplitTags reverses JoinTags. An empty string holds no tags.
func SplitTags(stored string) []string {
	if stored == "" {
		return []string{}
	}
	return strings.Split(stored, ",")
}

func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case []byte:
		return strconv.ParseInt(string(n), 10, 64)
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(s)
	}
}
