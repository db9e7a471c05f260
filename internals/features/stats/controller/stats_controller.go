// internals/features/stats/controller/stats_controller.go
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	celulaModel "centralcelular_backend/internals/features/cells/cells/model"
	membroModel "centralcelular_backend/internals/features/cells/members/model"
	relatorioModel "centralcelular_backend/internals/features/reports/model"
	"centralcelular_backend/internals/features/stats/dto"
	"centralcelular_backend/internals/features/stats/service"
	helper "centralcelular_backend/internals/helpers"
)

// StatsController loads submitted reports with their presencas and
// membership denominators, then hands everything to the pure engine in
// the service package. It writes nothing.
type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

/* ===================== PER-CELULA STATS ===================== */
// GET /estatisticas/celulas/:celulaId?mes=&ano=
func (ctrl *StatsController) EstatisticasCelula(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	celulaID, err := uuid.Parse(c.Params("celulaId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid celula ID")
	}

	var celula celulaModel.CelulaModel
	if err := ctrl.DB.
		Where("celula_id = ? AND celula_account_id = ?", celulaID, accountID).
		First(&celula).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Celula not found")
	}

	q := ctrl.DB.Model(&relatorioModel.RelatorioModel{}).
		Where("relatorio_celula_id = ?", celulaID)
	if mes := c.Query("mes"); mes != "" {
		m, err := strconv.Atoi(mes)
		if err != nil || m < 1 || m > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "mes must be 1..12")
		}
		q = q.Where("relatorio_mes = ?", m)
	}
	if ano := c.Query("ano"); ano != "" {
		a, err := strconv.Atoi(ano)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid ano")
		}
		q = q.Where("relatorio_ano = ?", a)
	}

	var relatorios []relatorioModel.RelatorioModel
	if err := q.
		Order("relatorio_ano DESC, relatorio_mes DESC").
		Find(&relatorios).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load relatorios")
	}
	if len(relatorios) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No relatorios matched the given criteria")
	}

	var activeMembers int64
	if err := ctrl.DB.Model(&membroModel.MembroModel{}).
		Where("membro_celula_id = ? AND membro_ativo = ?", celulaID, true).
		Count(&activeMembers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count membros")
	}

	rows := make([]dto.CelulaStatsResponse, 0, len(relatorios))
	byPeriod := make(map[[2]int]float64, len(relatorios))
	for _, r := range relatorios {
		var presencas []relatorioModel.PresencaModel
		if err := ctrl.DB.
			Where("presenca_relatorio_id = ?", r.RelatorioID).
			Find(&presencas).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load presencas")
		}

		freq := service.ComputeGroupFrequency(int(activeMembers), presencas)
		rows = append(rows, dto.CelulaStatsResponse{
			RelatorioID:     r.RelatorioID,
			CelulaID:        celula.CelulaID,
			CelulaNome:      celula.CelulaNome,
			Mes:             r.RelatorioMes,
			Ano:             r.RelatorioAno,
			TotalMembros:    freq.TotalMembros,
			PresencasCelula: freq.PresencasCelula,
			PresencasCulto:  freq.PresencasCulto,
			Percentual:      freq.Percentual,
		})
		byPeriod[[2]int{r.RelatorioAno, r.RelatorioMes}] = freq.Percentual
	}

	// growth vs. the preceding calendar period, where that period exists
	for i := range rows {
		prevAno, prevMes := rows[i].Ano, rows[i].Mes-1
		if prevMes == 0 {
			prevMes = 12
			prevAno--
		}
		if prior, ok := byPeriod[[2]int{prevAno, prevMes}]; ok {
			rows[i].Crescimento = service.ComputePeriodGrowth(rows[i].Percentual, prior)
		}
	}

	return helper.JsonOK(c, "Celula statistics", rows)
}

/* ===================== LEADER RANKING ===================== */
// GET /estatisticas/ranking?mes=&ano=&somente_enviados=
func (ctrl *StatsController) RankingLideres(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	mes, err := strconv.Atoi(c.Query("mes"))
	if err != nil || mes < 1 || mes > 12 {
		return fiber.NewError(fiber.StatusBadRequest, "mes must be 1..12")
	}
	ano, err := strconv.Atoi(c.Query("ano"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ano")
	}

	type reportRow struct {
		RelatorioID uuid.UUID `gorm:"column:relatorio_id"`
		CelulaID    uuid.UUID `gorm:"column:celula_id"`
		LiderID     uuid.UUID `gorm:"column:celula_lider_id"`
		LiderNome   string    `gorm:"column:usuario_nome"`
	}
	q := ctrl.DB.Table("relatorios").
		Select("relatorios.relatorio_id, celulas.celula_id, celulas.celula_lider_id, usuarios.usuario_nome").
		Joins("JOIN celulas ON celulas.celula_id = relatorios.relatorio_celula_id").
		Joins("JOIN usuarios ON usuarios.usuario_id = celulas.celula_lider_id").
		Where("celulas.celula_account_id = ? AND celulas.celula_deleted_at IS NULL", accountID).
		Where("relatorios.relatorio_mes = ? AND relatorios.relatorio_ano = ?", mes, ano)
	if c.Query("somente_enviados") == "true" {
		q = q.Where("relatorios.relatorio_data_envio IS NOT NULL")
	}

	var reports []reportRow
	if err := q.Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load relatorios")
	}
	if len(reports) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No relatorios found for the given period")
	}

	inputs := make([]service.LeaderReportInput, 0, len(reports))
	for _, r := range reports {
		var activeMembers int64
		if err := ctrl.DB.Model(&membroModel.MembroModel{}).
			Where("membro_celula_id = ? AND membro_ativo = ?", r.CelulaID, true).
			Count(&activeMembers).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count membros")
		}

		var presencas []relatorioModel.PresencaModel
		if err := ctrl.DB.
			Where("presenca_relatorio_id = ?", r.RelatorioID).
			Find(&presencas).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load presencas")
		}
		freq := service.ComputeGroupFrequency(int(activeMembers), presencas)

		inputs = append(inputs, service.LeaderReportInput{
			LiderID:         r.LiderID,
			LiderNome:       r.LiderNome,
			TotalMembros:    int(activeMembers),
			PresencasCelula: freq.PresencasCelula,
			PresencasCulto:  freq.PresencasCulto,
		})
	}

	return helper.JsonOK(c, "Leader ranking", service.ComputeLeaderRanking(inputs))
}
