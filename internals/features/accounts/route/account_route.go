package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/constants"
	"centralcelular_backend/internals/features/accounts/controller"
	authMw "centralcelular_backend/internals/middlewares/auth"
)

func AccountRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAccountController(db)

	r := api.Group("/account")
	r.Get("/", ctrl.ObterAccount)

	adminOnly := authMw.OnlyRoles(constants.RoleAdmin)
	r.Patch("/", adminOnly, ctrl.AtualizarAccount)
	r.Patch("/desativar", adminOnly, ctrl.DesativarAccount)
}
