package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"centralcelular_backend/internals/features/users/config/dto"
	"centralcelular_backend/internals/features/users/config/model"
	helper "centralcelular_backend/internals/helpers"
)

type UsuarioConfigController struct {
	DB *gorm.DB
}

func NewUsuarioConfigController(db *gorm.DB) *UsuarioConfigController {
	return &UsuarioConfigController{DB: db}
}

var validate = validator.New()

// configFor loads the row, creating the default one on first access.
func (ctrl *UsuarioConfigController) configFor(usuarioID uuid.UUID) (*model.UsuarioConfigModel, error) {
	var cfg model.UsuarioConfigModel
	err := ctrl.DB.
		Where("usuario_config_usuario_id = ?", usuarioID).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = model.UsuarioConfigModel{
			UsuarioConfigUsuarioID:             usuarioID,
			UsuarioConfigNotificarAniversarios: true,
			UsuarioConfigDiasAntecedencia:      1,
		}
		if err := ctrl.DB.Create(&cfg).Error; err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GET /me/config
func (ctrl *UsuarioConfigController) ObterConfig(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	cfg, err := ctrl.configFor(usuarioID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load config")
	}
	return helper.JsonOK(c, "Config found", cfg)
}

// PATCH /me/config
func (ctrl *UsuarioConfigController) AtualizarConfig(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AtualizarUsuarioConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cfg, err := ctrl.configFor(usuarioID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load config")
	}

	if req.NotificarAniversarios != nil {
		cfg.UsuarioConfigNotificarAniversarios = *req.NotificarAniversarios
	}
	if req.DiasAntecedencia != nil {
		cfg.UsuarioConfigDiasAntecedencia = *req.DiasAntecedencia
	}
	if req.Preferencias != nil {
		cfg.UsuarioConfigPreferencias = req.Preferencias
	}

	if err := ctrl.DB.Save(cfg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update config")
	}
	return helper.JsonUpdated(c, "Config updated", cfg)
}
