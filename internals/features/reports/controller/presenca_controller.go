// internals/features/reports/controller/presenca_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"centralcelular_backend/internals/features/reports/dto"
	helper "centralcelular_backend/internals/helpers"
)

/* ===================== RECORD (upsert) ===================== */
// POST /relatorios/:id/presencas
func (ctrl *RelatorioController) RegistrarPresenca(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	relatorioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid relatorio ID")
	}

	var req dto.RegistrarPresencaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	presenca, err := ctrl.Service.RecordPresence(
		relatorioID, req.PresencaMembroID, req.PresencaSemana,
		req.PresencaCelula, req.PresencaCulto, req.PresencaObservacoes,
		accountID,
	)
	if err != nil {
		return domainError(c, err)
	}
	return helper.JsonOK(c, "Presenca recorded", dto.FromPresencaModel(*presenca))
}

/* ===================== BULK SNAPSHOT ===================== */
// POST /relatorios/:id/presencas/bulk
func (ctrl *RelatorioController) RegistrarPresencasBulk(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	relatorioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid relatorio ID")
	}

	var req dto.BulkPresencaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Service.BulkRecordPresence(relatorioID, dto.ToBulkEntries(req.Entries), accountID); err != nil {
		return domainError(c, err)
	}
	return helper.JsonOK(c, "Presencas recorded", fiber.Map{"count": len(req.Entries)})
}

/* ===================== LIST ===================== */
// GET /relatorios/:id/presencas
func (ctrl *RelatorioController) ListarPresencas(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "Presencas listed", dto.FromPresencaModels(presencas))
}
