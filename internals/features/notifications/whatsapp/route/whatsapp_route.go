package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/constants"
	"centralcelular_backend/internals/features/notifications/whatsapp/controller"
	authMw "centralcelular_backend/internals/middlewares/auth"
)

func WhatsAppRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWhatsAppController(db)

	adminOnly := authMw.OnlyRoles(constants.RoleAdmin)

	r := api.Group("/whatsapp/connection")
	r.Get("/", ctrl.ObterConexao)
	r.Put("/", adminOnly, ctrl.Conectar)
	r.Delete("/", adminOnly, ctrl.Desconectar)
}
