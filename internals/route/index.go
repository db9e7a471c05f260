// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accountRoute "centralcelular_backend/internals/features/accounts/route"
	celulaRoute "centralcelular_backend/internals/features/cells/cells/route"
	membroRoute "centralcelular_backend/internals/features/cells/members/route"
	whatsappRoute "centralcelular_backend/internals/features/notifications/whatsapp/route"
	relatorioRoute "centralcelular_backend/internals/features/reports/route"
	statsRoute "centralcelular_backend/internals/features/stats/route"
	authRoute "centralcelular_backend/internals/features/users/auth/route"
	configRoute "centralcelular_backend/internals/features/users/config/route"
	usuarioRoute "centralcelular_backend/internals/features/users/user/route"
	authMw "centralcelular_backend/internals/middlewares/auth"
)

// SetupRoutes mounts everything. /auth and /health are public; the rest
// of the API sits behind the JWT middleware under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authMw.AuthMiddleware(db))

	accountRoute.AccountRoutes(api, db)
	usuarioRoute.UsuarioRoutes(api, db)
	configRoute.UsuarioConfigRoutes(api, db)

	celulaRoute.CelulaRoutes(api, db)
	membroRoute.MembroRoutes(api, db)

	relatorioRoute.RelatorioRoutes(api, db)
	statsRoute.StatsRoutes(api, db)

	whatsappRoute.WhatsAppRoutes(api, db)
}
