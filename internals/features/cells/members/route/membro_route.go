// internals/features/cells/members/route/membro_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/constants"
	"centralcelular_backend/internals/features/cells/members/controller"
	authMw "centralcelular_backend/internals/middlewares/auth"
)

func MembroRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMembroController(db)

	membros := api.Group("/celulas/:id/membros")
	membros.Get("/", ctrl.ListarMembros)
	membros.Get("/aniversariantes", ctrl.ListarAniversariantes)
	membros.Post("/", ctrl.AdicionarMembro)
	membros.Patch("/:membroId", ctrl.AtualizarMembro)
	membros.Patch("/:membroId/ativo", ctrl.AtivarMembro)

	// hard delete purges presence history, admins only
	membros.Delete("/:membroId/hard",
		authMw.OnlyRoles(constants.RoleAdmin), ctrl.ExcluirMembro)
}
