package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"meow-notes/app"
	"meow-notes/config"
	"meow-notes/middleware"
	"meow-notes/models"
	"meow-notes/services"
)

// Login signs the user in, registering the username on first use
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if req.Username == "" || req.Password == "" {
			return badRequest(c, "Username or password empty")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		result, err := a.AuthService.Login(c.UserContext(), req.Username, req.Password)
		switch {
		case errors.Is(err, services.ErrEmptyCredentials):
			return badRequest(c, "Username or password empty")
		case errors.Is(err, services.ErrWrongPassword):
			return unauthorized(c, "The password was wrong for the existing user. Try again or choose another username.")
		case errors.Is(err, services.ErrUsernameTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case err != nil:
			return serverErrorWithDetails(c, "Login failed", err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     config.AppConfig.SessionCookieName,
			Value:    result.Session.ID,
			Expires:  time.Now().Add(config.AppConfig.SessionTTL),
			HTTPOnly: true,
			Secure:   config.AppConfig.Env == "production",
			SameSite: "Lax",
			Path:     "/",
		})

		status := fiber.StatusOK
		if result.Created {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(fiber.Map{
			"success":  true,
			"created":  result.Created,
			"message":  result.Message,
			"username": result.Session.Username,
		})
	}
}

// Logout ends the session and clears the cookie
func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookieName := config.AppConfig.SessionCookieName
		if err := a.AuthService.Logout(c.Cookies(cookieName)); err != nil {
			return serverErrorWithDetails(c, "Logout failed", err)
		}
		c.ClearCookie(cookieName)
		return success(c, fiber.Map{"message": "You've been logged out."})
	}
}

// Me returns the signed-in user
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc := middleware.GetRequestContext(c)
		if !rc.Authenticated() {
			return unauthorized(c, "Not logged in")
		}
		return success(c, fiber.Map{
			"user": fiber.Map{
				"id":       *rc.UserID,
				"username": rc.Username,
			},
		})
	}
}
