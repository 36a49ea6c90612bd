package middleware

import (
	"github.com/gofiber/fiber/v2"

	"meow-notes/database"
)

// UnitOfWork binds one lazily opened database connection to each request
// and releases it when the handler chain returns. Requests that never touch
// storage never take a connection.
func UnitOfWork(db *database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uow := db.NewUnitOfWork()
		defer uow.Close()

		c.SetUserContext(database.WithUnitOfWork(c.UserContext(), uow))
		return c.Next()
	}
}
