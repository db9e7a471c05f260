package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "centralcelular_backend/internals/databases"
)

var startedAt = time.Now()

// BaseRoutes exposes the unauthenticated health endpoint.
func BaseRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		status := fiber.StatusOK
		if dbStatus == "down" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
