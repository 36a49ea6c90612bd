package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"meow-notes/app"
	"meow-notes/middleware"
	"meow-notes/models"
	"meow-notes/services"
)

// Search looks for a term in every field of the caller's notes
func Search(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SearchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		result, err := a.NoteService.Search(c.UserContext(), middleware.GetRequestContext(c), req.Term)
		if err != nil {
			return noteError(c, err, "Search failed")
		}
		return success(c, fiber.Map{"result": result})
	}
}

// FilterSearch repeats the last search restricted to the given fields
func FilterSearch(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.FilterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		result, err := a.NoteService.Filter(c.UserContext(), middleware.GetRequestContext(c), req.Fields)
		switch {
		case errors.Is(err, services.ErrNoSearchTerm):
			return badRequest(c, "Search for something first")
		case errors.Is(err, services.ErrInvalidField):
			return badRequest(c, err.Error())
		case err != nil:
			return noteError(c, err, "Filter failed")
		}
		return success(c, fiber.Map{"result": result})
	}
}

// ClearSearch forgets the caller's last search term
func ClearSearch(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.NoteService.ClearSearch(middleware.GetRequestContext(c)); err != nil {
			return noteError(c, err, "Failed to clear search")
		}
		return success(c, fiber.Map{"message": "Search cleared."})
	}
}
