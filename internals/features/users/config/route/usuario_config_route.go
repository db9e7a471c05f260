package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/features/users/config/controller"
)

func UsuarioConfigRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUsuarioConfigController(db)

	r := api.Group("/me/config")
	r.Get("/", ctrl.ObterConfig)
	r.Patch("/", ctrl.AtualizarConfig)
}
