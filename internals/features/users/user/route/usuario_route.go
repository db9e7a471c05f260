package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/constants"
	"centralcelular_backend/internals/features/users/user/controller"
	authMw "centralcelular_backend/internals/middlewares/auth"
)

func UsuarioRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUsuarioController(db)

	r := api.Group("/usuarios")
	r.Get("/", ctrl.ListarUsuarios)
	r.Get("/:id", ctrl.ObterUsuario)

	adminOnly := authMw.OnlyRoles(constants.RoleAdmin)
	r.Post("/", adminOnly, ctrl.CriarUsuario)
	r.Patch("/:id", adminOnly, ctrl.AtualizarUsuario)
	r.Patch("/:id/ativo", adminOnly, ctrl.AtivarUsuario)
}
