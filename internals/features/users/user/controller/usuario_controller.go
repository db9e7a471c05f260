package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"centralcelular_backend/internals/features/users/user/dto"
	"centralcelular_backend/internals/features/users/user/model"
	helper "centralcelular_backend/internals/helpers"
)

type UsuarioController struct {
	DB *gorm.DB
}

func NewUsuarioController(db *gorm.DB) *UsuarioController {
	return &UsuarioController{DB: db}
}

var validate = validator.New()

func (ctrl *UsuarioController) usuarioForAccount(usuarioID, accountID uuid.UUID) (*model.UsuarioModel, error) {
	var usuario model.UsuarioModel
	err := ctrl.DB.
		Where("usuario_id = ? AND usuario_account_id = ?", usuarioID, accountID).
		First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Usuario not found")
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

/* ===================== LIST ===================== */
// GET /usuarios?cargo=&ativo=
func (ctrl *UsuarioController) ListarUsuarios(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UsuarioModel{}).
		Where("usuario_account_id = ?", accountID)
	if cargo := c.Query("cargo"); cargo != "" {
		q = q.Where("usuario_cargo = ?", cargo)
	}
	if ativo := c.Query("ativo"); ativo != "" {
		q = q.Where("usuario_ativo = ?", ativo == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count usuarios")
	}

	var usuarios []model.UsuarioModel
	if err := q.Order("usuario_nome ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&usuarios).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list usuarios")
	}

	return helper.JsonList(c, "Usuarios listed",
		dto.FromUsuarioModels(usuarios),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== DETAIL ===================== */
// GET /usuarios/:id
func (ctrl *UsuarioController) ObterUsuario(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	usuarioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid usuario ID")
	}

	usuario, err := ctrl.usuarioForAccount(usuarioID, accountID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Usuario found", dto.FromUsuarioModel(usuario))
}

/* ===================== CREATE ===================== */
// POST /usuarios
func (ctrl *UsuarioController) CriarUsuario(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CriarUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.UsuarioModel{}).
		Where("usuario_account_id = ? AND usuario_email = ?", accountID, req.UsuarioEmail).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check usuario email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already in use in this account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UsuarioSenha), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	usuario := req.ToModel(accountID, string(hash))
	if err := ctrl.DB.Create(&usuario).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create usuario")
	}
	return helper.JsonCreated(c, "Usuario created", dto.FromUsuarioModel(&usuario))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /usuarios/:id
func (ctrl *UsuarioController) AtualizarUsuario(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	usuarioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid usuario ID")
	}

	usuario, err := ctrl.usuarioForAccount(usuarioID, accountID)
	if err != nil {
		return err
	}

	var req dto.AtualizarUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.UsuarioNome != nil {
		usuario.UsuarioNome = *req.UsuarioNome
	}
	if req.UsuarioCargo != nil {
		usuario.UsuarioCargo = *req.UsuarioCargo
	}
	if req.UsuarioWhatsApp != nil {
		usuario.UsuarioWhatsApp = req.UsuarioWhatsApp
	}

	if err := ctrl.DB.Save(usuario).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update usuario")
	}
	return helper.JsonUpdated(c, "Usuario updated", dto.FromUsuarioModel(usuario))
}

/* ===================== ACTIVATE / DEACTIVATE ===================== */
// PATCH /usuarios/:id/ativo
func (ctrl *UsuarioController) AtivarUsuario(c *fiber.Ctx) error {
	accountID, err := helper.GetAccountIDFromToken(c)
	if err != nil {
		return err
	}
	usuarioID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid usuario ID")
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AtivarUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	// an admin locking itself out is almost always a mistake
	if callerID == usuarioID && !req.UsuarioAtivo {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot deactivate your own account")
	}

	res := ctrl.DB.Model(&model.UsuarioModel{}).
		Where("usuario_id = ? AND usuario_account_id = ?", usuarioID, accountID).
		Update("usuario_ativo", req.UsuarioAtivo)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update usuario status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario not found")
	}
	return helper.JsonUpdated(c, "Usuario status updated", fiber.Map{
		"usuario_id":    usuarioID,
		"usuario_ativo": req.UsuarioAtivo,
	})
}
