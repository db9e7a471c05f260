// internals/features/reports/controller/relatorio_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	membroModel "centralcelular_backend/internals/features/cells/members/model"
	"centralcelular_backend/internals/features/reports/dto"
	"centralcelular_backend/internals/features/reports/model"
	"centralcelular_backend/internals/features/reports/service"
	helper "centralcelular_backend/internals/helpers"
)

type RelatorioController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewRelatorioController(db *gorm.DB) *RelatorioController {
	return &RelatorioController{DB: db, Service: service.New(db)}
}

var validate = validator.New()

// domainError maps a service error to the JSON error shape.
func domainError(c *fiber.Ctx, err error) error {
	return helper.JsonError(c, service.HTTPStatus(err), err.Error())
}

/* ===================== LIST ===================== */
// GET /relatorios?celula=&mes=&ano=
func (ctrl *RelatorioController) ListarRelatorios(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.FilterRelatorioRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	// tenant scope through the celula join
	q := ctrl.DB.Model(&model.RelatorioModel{}).
		Joins("JOIN celulas ON celulas.celula_id = relatorios.relatorio_celula_id").
		Where("celulas.celula_account_id = ? AND celulas.celula_deleted_at IS NULL", accountID)

	if req.CelulaID != nil {
		q = q.Where("relatorios.relatorio_celula_id = ?", *req.CelulaID)
	}
	if req.Mes != nil {
		q = q.Where("relatorios.relatorio_mes = ?", *req.Mes)
	}
	if req.Ano != nil {
		q = q.Where("relatorios.relatorio_ano = ?", *req.Ano)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list relatorios")
	}

	var rows []model.RelatorioModel
	if err := q.
		Order("relatorios.relatorio_ano DESC, relatorios.relatorio_mes DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list relatorios")
	}

	out := make([]dto.RelatorioResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromRelatorioModel(r))
	}
	return helper.JsonList(c, "Relatorios listed", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== DETAIL ===================== */
// GET /relatorios/:id
func (ctrl *RelatorioController) ObterRelatorio(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	relatorioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid relatorio ID")
	}

	presencas, err := ctrl.Service.ListPresences(relatorioID, accountID)
	if err != nil {
		return domainError(c, err)
	}

	var relatorio model.RelatorioModel
	if err := ctrl.DB.Where("relatorio_id = ?", relatorioID).First(&relatorio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Relatorio not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load relatorio")
	}

	var membros []membroModel.MembroModel
	if err := ctrl.DB.
		Where("membro_celula_id = ? AND membro_ativo = ?", relatorio.RelatorioCelulaID, true).
		Order("membro_nome ASC").
		Find(&membros).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load membros")
	}

	return helper.JsonOK(c, "Relatorio found", fiber.Map{
		"relatorio": dto.FromRelatorioModel(relatorio),
		"membros":   membros,
		"presencas": dto.FromPresencaModels(presencas),
	})
}

/* ===================== ENSURE (idempotent create) ===================== */
// POST /relatorios
func (ctrl *RelatorioController) CriarRelatorio(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CriarRelatorioRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	relatorio, err := ctrl.Service.EnsureReport(req.RelatorioCelulaID, req.RelatorioMes, req.RelatorioAno, accountID, req.RelatorioObservacoes)
	if err != nil {
		return domainError(c, err)
	}

	return helper.JsonOK(c, "Relatorio ready", dto.FromRelatorioModel(*relatorio))
}

/* ===================== UPDATE NOTES ===================== */
// PATCH /relatorios/:id
func (ctrl *RelatorioController) AtualizarRelatorio(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	relatorioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid relatorio ID")
	}

	var req dto.AtualizarRelatorioRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	relatorio, err := ctrl.Service.UpdateNotes(relatorioID, req.RelatorioObservacoes, accountID)
	if err != nil {
		return domainError(c, err)
	}
	return helper.JsonUpdated(c, "Relatorio updated", dto.FromRelatorioModel(*relatorio))
}

/* ===================== SUBMIT ===================== */
// POST /relatorios/:id/enviar
func (ctrl *RelatorioController) EnviarRelatorio(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	relatorioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid relatorio ID")
	}

	var req dto.EnviarRelatorioRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
		}
		if err := validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	relatorio, err := ctrl.Service.Submit(relatorioID, userID, role, accountID, dto.ToBulkEntries(req.Entries))
	if err != nil {
		return domainError(c, err)
	}
	return helper.JsonOK(c, "Relatorio submitted", dto.FromRelatorioModel(*relatorio))
}
