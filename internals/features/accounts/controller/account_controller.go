package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/features/accounts/dto"
	"centralcelular_backend/internals/features/accounts/model"
	helper "centralcelular_backend/internals/helpers"
)

type AccountController struct {
	DB *gorm.DB
}

func NewAccountController(db *gorm.DB) *AccountController {
	return &AccountController{DB: db}
}

var validate = validator.New()

// GET /account
func (ctrl *AccountController) ObterAccount(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	var account model.AccountModel
	if err := ctrl.DB.First(&account, "account_id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}
	return helper.JsonOK(c, "Account found", dto.FromAccountModel(&account))
}

// PATCH /account
func (ctrl *AccountController) AtualizarAccount(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AtualizarAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var account model.AccountModel
	if err := ctrl.DB.First(&account, "account_id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}

	if req.AccountNome != nil {
		account.AccountNome = *req.AccountNome
	}
	if err := ctrl.DB.Save(&account).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update account")
	}
	return helper.JsonUpdated(c, "Account updated", dto.FromAccountModel(&account))
}

// PATCH /account/desativar
//
// Deactivating the tenant locks every user out at the auth middleware.
// Reactivation is an operational task done directly on the database.
func (ctrl *AccountController) DesativarAccount(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.AccountModel{}).
		Where("account_id = ?", accountID).
		Update("account_ativo", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate account")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}
	return helper.JsonUpdated(c, "Account deactivated", fiber.Map{"account_id": accountID})
}
