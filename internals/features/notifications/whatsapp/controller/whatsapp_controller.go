package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"centralcelular_backend/internals/features/notifications/whatsapp/dto"
	"centralcelular_backend/internals/features/notifications/whatsapp/model"
	"centralcelular_backend/internals/features/notifications/whatsapp/service"
	helper "centralcelular_backend/internals/helpers"
)

type WhatsAppController struct {
	DB      *gorm.DB
	Gateway *service.Client
}

func NewWhatsAppController(db *gorm.DB) *WhatsAppController {
	return &WhatsAppController{DB: db, Gateway: service.NewClient()}
}

var validate = validator.New()

// GET /whatsapp/connection
//
// Reads the stored session and re-checks it against the gateway so the
// status never goes stale.
func (ctrl *WhatsAppController) ObterConexao(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	var conn model.WhatsAppConnectionModel
	if err := ctrl.DB.
		Where("whatsapp_connection_account_id = ?", accountID).
		First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "No WhatsApp session",
				dto.WhatsAppConnectionResponse{Status: "disconnected"})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load connection")
	}

	status, err := ctrl.Gateway.SessionStatus(c.Context(), conn.WhatsAppConnectionToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "WhatsApp gateway unreachable")
	}

	if status != conn.WhatsAppConnectionStatus {
		now := time.Now()
		ctrl.DB.Model(&conn).Updates(map[string]any{
			"whatsapp_connection_status":     status,
			"whatsapp_connection_updated_at": &now,
		})
	}
	return helper.JsonOK(c, "WhatsApp session", dto.WhatsAppConnectionResponse{Status: status})
}

// PUT /whatsapp/connection
//
// Stores or replaces the account's gateway session token. The gateway
// is probed right away so a bad token is rejected at save time.
func (ctrl *WhatsAppController) Conectar(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ConectarWhatsAppRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	status, err := ctrl.Gateway.SessionStatus(c.Context(), req.Token)
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "WhatsApp gateway unreachable")
	}

	conn := model.WhatsAppConnectionModel{
		WhatsAppConnectionAccountID: accountID,
		WhatsAppConnectionToken:     req.Token,
		WhatsAppConnectionStatus:    status,
	}
	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "whatsapp_connection_account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"whatsapp_connection_token",
			"whatsapp_connection_status",
		}),
	}).Create(&conn).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store connection")
	}
	return helper.JsonUpdated(c, "WhatsApp session stored",
		dto.WhatsAppConnectionResponse{Status: status})
}

// DELETE /whatsapp/connection
func (ctrl *WhatsAppController) Desconectar(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.
		Where("whatsapp_connection_account_id = ?", accountID).
		Delete(&model.WhatsAppConnectionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove connection")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No WhatsApp session to remove")
	}
	return helper.JsonDeleted(c, "WhatsApp session removed", nil)
}
