package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/features/users/auth/controller"
	"centralcelular_backend/internals/middlewares"
	authMw "centralcelular_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public auth endpoints plus the authenticated
// /auth/me and /auth/logout.
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	r := app.Group("/auth")
	r.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	r.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	r.Post("/otp/request", middlewares.OtpRateLimiter(), ctrl.RequestOtp)
	r.Post("/otp/verify", middlewares.LoginRateLimiter(), ctrl.VerifyOtp)
	r.Post("/refresh", ctrl.Refresh)

	protected := authMw.AuthMiddleware(db)
	r.Post("/logout", protected, ctrl.Logout)
	r.Get("/me", protected, ctrl.Me)
}
