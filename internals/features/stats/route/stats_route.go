package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/features/stats/controller"
)

func StatsRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStatsController(db)

	r := router.Group("/estatisticas")
	r.Get("/celulas/:celulaId", ctrl.EstatisticasCelula)
	r.Get("/ranking", ctrl.RankingLideres)
}
