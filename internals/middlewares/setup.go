package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the base middleware chain. Auth is attached per
// route group, not globally.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestLogger())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
