package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"meow-notes/app"
	"meow-notes/middleware"
	"meow-notes/models"
	"meow-notes/services"
)

// noteError maps service errors shared by the note handlers
func noteError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return unauthorized(c, "Not logged in")
	case errors.Is(err, services.ErrNoteNotFound):
		return notFound(c, "Note not found")
	default:
		return serverErrorWithDetails(c, message, err)
	}
}

// Dashboard lists the caller's notes, oldest first
func Dashboard(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dash, err := a.NoteService.Dashboard(c.UserContext(), middleware.GetRequestContext(c))
		if err != nil {
			return noteError(c, err, "Failed to fetch notes")
		}
		return success(c, fiber.Map{
			"message": dash.Message,
			"notes":   dash.Notes,
		})
	}
}

// ViewNote shows one note. Without an id it reopens the last viewed note.
func ViewNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var noteID int64
		if raw := c.Query("id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return badRequest(c, "id must be a positive integer")
			}
			noteID = id
		}

		note, err := a.NoteService.View(c.UserContext(), middleware.GetRequestContext(c), noteID)
		if err != nil {
			return noteError(c, err, "Failed to fetch note")
		}
		return success(c, fiber.Map{"note": note})
	}
}

// DownloadNote sends a note as a plain-text attachment
func DownloadNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := noteIDParam(c)
		if !ok {
			return badRequest(c, "id must be a positive integer")
		}

		component, filename, err := a.NoteService.Export(c.UserContext(), middleware.GetRequestContext(c), noteID)
		if err != nil {
			return noteError(c, err, "Failed to export note")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		c.Set(fiber.HeaderContentDisposition, "attachment;filename="+filename)
		return component.Render(c.UserContext(), c.Response().BodyWriter())
	}
}

// CreateNote stores a new note for the caller
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		msg, err := a.NoteService.Create(c.UserContext(), middleware.GetRequestContext(c), req.Title, req.Tags, req.Content)
		if err != nil {
			return noteError(c, err, msg)
		}
		return created(c, fiber.Map{"message": msg})
	}
}

// UpdateNote replaces a note's title, tags and content
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := noteIDParam(c)
		if !ok {
			return badRequest(c, "id must be a positive integer")
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		msg, err := a.NoteService.Update(c.UserContext(), middleware.GetRequestContext(c), noteID, req.Title, req.Tags, req.Content)
		if err != nil {
			return noteError(c, err, msg)
		}
		return success(c, fiber.Map{"message": msg})
	}
}

// DeleteNote removes one of the caller's notes
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, ok := noteIDParam(c)
		if !ok {
			return badRequest(c, "id must be a positive integer")
		}

		msg, err := a.NoteService.Delete(c.UserContext(), middleware.GetRequestContext(c), noteID)
		if err != nil {
			return noteError(c, err, msg)
		}
		return success(c, fiber.Map{"message": msg})
	}
}
