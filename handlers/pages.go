package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"meow-notes/middleware"
)

// Landing tells the caller whether they are signed in
func Landing(c *fiber.Ctx) error {
	rc := middleware.GetRequestContext(c)
	if !rc.Authenticated() {
		return c.JSON(fiber.Map{
			"name":          "meow-notes",
			"authenticated": false,
			"message":       "Log in or pick a username to register.",
		})
	}
	return c.JSON(fiber.Map{
		"name":          "meow-notes",
		"authenticated": true,
		"username":      rc.Username,
	})
}

func ServerTime(c *fiber.Ctx) error {
	timezone := c.Query("timezone", "UTC")

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	now := time.Now().In(loc)

	return c.JSON(fiber.Map{
		"timestamp": now.Unix(),
		"timezone":  timezone,
		"iso":       now.Format(time.RFC3339),
	})
}
