package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"meow-notes/models"
)

// FileName is the attachment name for a downloaded note.
func FileName(noteID int64) string {
	return fmt.Sprintf("note_%d.txt", noteID)
}

// Text is the plain-text export of a note.
func Text(n models.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", n.Title)
	fmt.Fprintf(&b, "Tags: %s\n", strings.Join(n.Tags, ", "))
	fmt.Fprintf(&b, "Created: %s\n", n.DisplayDate)
	b.WriteString("\n")
	b.WriteString(n.Content)
	if !strings.HasSuffix(n.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// Note renders the plain-text export as a templ component.
func Note(n models.Note) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, Text(n))
		return err
	})
}
