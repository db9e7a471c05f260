package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/features/reports/controller"
)

// RelatorioRoutes mounts the report lifecycle and presence ledger under
// an authenticated group. Submission authorization (leader-of-celula or
// admin) is enforced inside the service, not by route role gates.
func RelatorioRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRelatorioController(db)

	r := router.Group("/relatorios")
	r.Get("/", ctrl.ListarRelatorios)
	r.Post("/", ctrl.CriarRelatorio)
	r.Get("/:id", ctrl.ObterRelatorio)
	r.Patch("/:id", ctrl.AtualizarRelatorio)
	r.Post("/:id/enviar", ctrl.EnviarRelatorio)

	r.Get("/:id/presencas", ctrl.ListarPresencas)
	r.Post("/:id/presencas", ctrl.RegistrarPresenca)
	r.Post("/:id/presencas/bulk", ctrl.RegistrarPresencasBulk)
}
