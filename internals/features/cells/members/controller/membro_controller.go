// internals/features/cells/members/controller/membro_controller.go
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	celulaModel "centralcelular_backend/internals/features/cells/cells/model"
	"centralcelular_backend/internals/features/cells/members/dto"
	"centralcelular_backend/internals/features/cells/members/model"
	presencaModel "centralcelular_backend/internals/features/reports/model"
	helper "centralcelular_backend/internals/helpers"
)

type MembroController struct {
	DB *gorm.DB
}

func NewMembroController(db *gorm.DB) *MembroController {
	return &MembroController{DB: db}
}

var validate = validator.New()

// celulaForAccount scopes every member operation to the caller's tenant.
func (ctrl *MembroController) celulaForAccount(celulaID, accountID uuid.UUID) (*celulaModel.CelulaModel, error) {
	var celula celulaModel.CelulaModel
	err := ctrl.DB.
		Where("celula_id = ? AND celula_account_id = ?", celulaID, accountID).
		First(&celula).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Celula not found")
	}
	if err != nil {
		return nil, err
	}
	return &celula, nil
}

func (ctrl *MembroController) membroInCelula(celulaID, membroID uuid.UUID) (*model.MembroModel, error) {
	var membro model.MembroModel
	err := ctrl.DB.
		Where("membro_id = ? AND membro_celula_id = ?", membroID, celulaID).
		First(&membro).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Membro not found in this celula")
	}
	if err != nil {
		return nil, err
	}
	return &membro, nil
}

/* ===================== LIST ===================== */
// GET /celulas/:id/membros?ativo=
func (ctrl *MembroController) ListarMembros(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	celulaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid celula ID")
	}
	if _, err := ctrl.celulaForAccount(celulaID, accountID); err != nil {
		return err
	}

	q := ctrl.DB.Where("membro_celula_id = ?", celulaID)
	if ativo := c.Query("ativo"); ativo != "" {
		q = q.Where("membro_ativo = ?", ativo == "true")
	}

	var membros []model.MembroModel
	if err := q.Order("membro_nome ASC").Find(&membros).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list membros")
	}
	return helper.JsonOK(c, "Membros listed", membros)
}

/* ===================== UPCOMING BIRTHDAYS ===================== */
// GET /celulas/:id/membros/aniversariantes?dias=
//
// Active membros whose birthday (month/day) falls within the next N
// days. The matching runs in Go so it works the same on every driver.
func (ctrl *MembroController) ListarAniversariantes(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	celulaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid celula ID")
	}
	if _, err := ctrl.celulaForAccount(celulaID, accountID); err != nil {
		return err
	}

	dias, err := strconv.Atoi(c.Query("dias", "7"))
	if err != nil || dias < 0 || dias > 60 {
		return fiber.NewError(fiber.StatusBadRequest, "dias must be 0..60")
	}

	var membros []model.MembroModel
	if err := ctrl.DB.
		Where("membro_celula_id = ? AND membro_ativo = true AND membro_data_nascimento IS NOT NULL", celulaID).
		Order("membro_nome ASC").
		Find(&membros).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list membros")
	}

	now := time.Now()
	out := make([]model.MembroModel, 0, len(membros))
	for i := range membros {
		nasc := *membros[i].MembroDataNascimento
		for d := 0; d <= dias; d++ {
			day := now.AddDate(0, 0, d)
			if nasc.Month() == day.Month() && nasc.Day() == day.Day() {
				out = append(out, membros[i])
				break
			}
		}
	}
	return helper.JsonOK(c, "Upcoming birthdays", out)
}

/* ===================== CREATE ===================== */
// POST /celulas/:id/membros
func (ctrl *MembroController) AdicionarMembro(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	celulaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid celula ID")
	}
	if _, err := ctrl.celulaForAccount(celulaID, accountID); err != nil {
		return err
	}

	var req dto.CriarMembroRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.MembroEmail != nil {
		var count int64
		if err := ctrl.DB.Model(&model.MembroModel{}).
			Where("membro_celula_id = ? AND membro_email = ?", celulaID, *req.MembroEmail).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check membro email")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "A membro with this email already exists in this celula")
		}
	}

	membro := req.ToModel(celulaID)
	if err := ctrl.DB.Create(&membro).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create membro")
	}
	return helper.JsonCreated(c, "Membro created", membro)
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /celulas/:id/membros/:membroId
func (ctrl *MembroController) AtualizarMembro(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	celulaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid celula ID")
	}
	membroID, err := uuid.Parse(c.Params("membroId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid membro ID")
	}
	if _, err := ctrl.celulaForAccount(celulaID, accountID); err != nil {
		return err
	}
	membro, err := ctrl.membroInCelula(celulaID, membroID)
	if err != nil {
		return err
	}

	var req dto.AtualizarMembroRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.MembroNome != nil {
		membro.MembroNome = *req.MembroNome
	}
	if req.MembroTelefone != nil {
		membro.MembroTelefone = req.MembroTelefone
	}
	if req.MembroEmail != nil {
		membro.MembroEmail = req.MembroEmail
	}
	if req.MembroDataNascimento != nil {
		membro.MembroDataNascimento = req.MembroDataNascimento
	}
	if req.MembroEhConsolidador != nil {
		membro.MembroEhConsolidador = *req.MembroEhConsolidador
	}
	if req.MembroEhCoLider != nil {
		membro.MembroEhCoLider = *req.MembroEhCoLider
	}
	if req.MembroEhAnfitriao != nil {
		membro.MembroEhAnfitriao = *req.MembroEhAnfitriao
	}
	if req.MembroObservacoes != nil {
		membro.MembroObservacoes = req.MembroObservacoes
	}

	if err := ctrl.DB.Save(membro).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update membro")
	}
	return helper.JsonUpdated(c, "Membro updated", membro)
}

/* ===================== DEACTIVATE / REACTIVATE ===================== */
// PATCH /celulas/:id/membros/:membroId/ativo
//
// The default removal path: the membro drops out of statistics
// denominators but its presence history stays intact.
func (ctrl *MembroController) AtivarMembro(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	celulaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid celula ID")
	}
	membroID, err := uuid.Parse(c.Params("membroId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid membro ID")
	}
	if _, err := ctrl.celulaForAccount(celulaID, accountID); err != nil {
		return err
	}

	var req dto.AtivarMembroRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res := ctrl.DB.Model(&model.MembroModel{}).
		Where("membro_id = ? AND membro_celula_id = ?", membroID, celulaID).
		Update("membro_ativo", req.MembroAtivo)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update membro status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Membro not found in this celula")
	}
	return helper.JsonUpdated(c, "Membro status updated", fiber.Map{
		"membro_id":    membroID,
		"membro_ativo": req.MembroAtivo,
	})
}

/* ===================== HARD DELETE ===================== */
// DELETE /celulas/:id/membros/:membroId/hard
//
// Irreversible admin operation. The membro row and all of its presencas
// go in one transaction; a partial purge is never left behind.
func (ctrl *MembroController) ExcluirMembro(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	celulaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid celula ID")
	}
	membroID, err := uuid.Parse(c.Params("membroId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid membro ID")
	}
	if _, err := ctrl.celulaForAccount(celulaID, accountID); err != nil {
		return err
	}
	if _, err := ctrl.membroInCelula(celulaID, membroID); err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("presenca_membro_id = ?", membroID).
			Delete(&presencaModel.PresencaModel{}).Error; err != nil {
			return err
		}
		return tx.
			Where("membro_id = ?", membroID).
			Delete(&model.MembroModel{}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete membro")
	}
	return helper.JsonDeleted(c, "Membro permanently deleted", fiber.Map{"membro_id": membroID})
}
