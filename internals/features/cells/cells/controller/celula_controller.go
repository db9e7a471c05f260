// internals/features/cells/cells/controller/celula_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"centralcelular_backend/internals/features/cells/cells/dto"
	"centralcelular_backend/internals/features/cells/cells/model"
	userModel "centralcelular_backend/internals/features/users/user/model"
	helper "centralcelular_backend/internals/helpers"
)

type CelulaController struct {
	DB *gorm.DB
}

func NewCelulaController(db *gorm.DB) *CelulaController {
	return &CelulaController{DB: db}
}

var validate = validator.New()

// usuarioInAccount checks a leader/co-leader/supervisor reference points
// at a user of the caller's account.
func (ctrl *CelulaController) usuarioInAccount(usuarioID, accountID uuid.UUID) error {
	var user userModel.UsuarioModel
	err := ctrl.DB.
		Where("usuario_id = ? AND usuario_account_id = ?", usuarioID, accountID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusBadRequest, "Referenced usuario not found")
	}
	return err
}

/* ===================== LIST ===================== */
// GET /celulas?lider=&regiao=&ativo=
func (ctrl *CelulaController) ListarCelulas(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.FilterCelulaRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}

	q := ctrl.DB.Where("celula_account_id = ?", accountID)
	if req.LiderID != nil {
		q = q.Where("celula_lider_id = ?", *req.LiderID)
	}
	if req.RegiaoID != nil {
		q = q.Where("celula_regiao_id = ?", *req.RegiaoID)
	}
	if req.Ativo != nil {
		q = q.Where("celula_ativo = ?", *req.Ativo)
	}

	var celulas []model.CelulaModel
	if err := q.Order("celula_nome ASC").Find(&celulas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list celulas")
	}
	return helper.JsonOK(c, "Celulas listed", dto.FromCelulaModels(celulas))
}

/* ===================== DETAIL ===================== */
// GET /celulas/:id
func (ctrl *CelulaController) ObterCelula(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	celulaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid celula ID")
	}

	var celula model.CelulaModel
	if err := ctrl.DB.
		Where("celula_id = ? AND celula_account_id = ?", celulaID, accountID).
		First(&celula).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Celula not found")
	}
	return helper.JsonOK(c, "Celula found", dto.FromCelulaModel(celula))
}

/* ===================== CREATE ===================== */
// POST /celulas
func (ctrl *CelulaController) CriarCelula(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CriarCelulaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.usuarioInAccount(req.CelulaLiderID, accountID); err != nil {
		return err
	}
	if req.CelulaCoLiderID != nil {
		if err := ctrl.usuarioInAccount(*req.CelulaCoLiderID, accountID); err != nil {
			return err
		}
	}
	if req.CelulaSupervisorID != nil {
		if err := ctrl.usuarioInAccount(*req.CelulaSupervisorID, accountID); err != nil {
			return err
		}
	}

	celula := req.ToModel(accountID)
	if err := ctrl.DB.Create(&celula).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create celula")
	}
	return helper.JsonCreated(c, "Celula created", dto.FromCelulaModel(celula))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /celulas/:id
func (ctrl *CelulaController) AtualizarCelula(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	celulaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid celula ID")
	}

	var celula model.CelulaModel
	if err := ctrl.DB.
		Where("celula_id = ? AND celula_account_id = ?", celulaID, accountID).
		First(&celula).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Celula not found")
	}

	var req dto.AtualizarCelulaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.CelulaNome != nil {
		celula.CelulaNome = *req.CelulaNome
	}
	if req.CelulaEndereco != nil {
		celula.CelulaEndereco = req.CelulaEndereco
	}
	if req.CelulaDiaSemana != nil {
		celula.CelulaDiaSemana = *req.CelulaDiaSemana
	}
	if req.CelulaHorario != nil {
		celula.CelulaHorario = *req.CelulaHorario
	}
	if req.CelulaLiderID != nil {
		if err := ctrl.usuarioInAccount(*req.CelulaLiderID, accountID); err != nil {
			return err
		}
		celula.CelulaLiderID = *req.CelulaLiderID
	}
	if req.CelulaCoLiderID != nil {
		if err := ctrl.usuarioInAccount(*req.CelulaCoLiderID, accountID); err != nil {
			return err
		}
		celula.CelulaCoLiderID = req.CelulaCoLiderID
	}
	if req.CelulaSupervisorID != nil {
		if err := ctrl.usuarioInAccount(*req.CelulaSupervisorID, accountID); err != nil {
			return err
		}
		celula.CelulaSupervisorID = req.CelulaSupervisorID
	}
	if req.CelulaRegiaoID != nil {
		celula.CelulaRegiaoID = req.CelulaRegiaoID
	}

	if err := ctrl.DB.Save(&celula).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update celula")
	}
	return helper.JsonUpdated(c, "Celula updated", dto.FromCelulaModel(celula))
}

/* ===================== ACTIVATE / DEACTIVATE ===================== */
// PATCH /celulas/:id/ativo
func (ctrl *CelulaController) AtivarCelula(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	celulaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid celula ID")
	}

	var req dto.AtivarCelulaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	res := ctrl.DB.Model(&model.CelulaModel{}).
		Where("celula_id = ? AND celula_account_id = ?", celulaID, accountID).
		Update("celula_ativo", req.CelulaAtivo)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update celula status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Celula not found")
	}
	return helper.JsonUpdated(c, "Celula status updated", fiber.Map{"celula_ativo": req.CelulaAtivo})
}

/* ===================== REGIOES ===================== */
// GET /regioes
func (ctrl *CelulaController) ListarRegioes(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	var regioes []model.RegiaoModel
	if err := ctrl.DB.
		Where("regiao_account_id = ?", accountID).
		Order("regiao_nome ASC").
		Find(&regioes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list regioes")
	}
	return helper.JsonOK(c, "Regioes listed", regioes)
}
