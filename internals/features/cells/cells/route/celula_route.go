package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/constants"
	"centralcelular_backend/internals/features/cells/cells/controller"
	authMw "centralcelular_backend/internals/middlewares/auth"
)

func CelulaRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCelulaController(db)

	r := router.Group("/celulas")
	r.Get("/", ctrl.ListarCelulas)
	r.Get("/:id", ctrl.ObterCelula)

	// directory mutations are admin/supervisor work
	adminOnly := authMw.OnlyRoles(constants.RoleAdmin, constants.RoleSupervisor)
	r.Post("/", adminOnly, ctrl.CriarCelula)
	r.Patch("/:id", adminOnly, ctrl.AtualizarCelula)
	r.Patch("/:id/ativo", adminOnly, ctrl.AtivarCelula)

	router.Get("/regioes", ctrl.ListarRegioes)
}
