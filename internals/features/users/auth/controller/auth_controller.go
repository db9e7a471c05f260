// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centralcelular_backend/internals/features/users/auth/dto"
	"centralcelular_backend/internals/features/users/auth/service"
	userDto "centralcelular_backend/internals/features/users/user/dto"
	userModel "centralcelular_backend/internals/features/users/user/model"
	helper "centralcelular_backend/internals/helpers"
)

type AuthController struct {
	DB      *gorm.DB
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Service: service.NewAuthService(db)}
}

var validate = validator.New()

func authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrUserInactive):
		return helper.JsonError(c, fiber.StatusForbidden, "User is deactivated")
	case errors.Is(err, service.ErrOtpInvalid):
		return helper.JsonError(c, fiber.StatusUnauthorized, "OTP code invalid or expired")
	case errors.Is(err, service.ErrNoWhatsAppSession):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "WhatsApp session not connected")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}

func (ctrl *AuthController) respondWithTokens(c *fiber.Ctx, user *userModel.UsuarioModel, status int) error {
	access, refresh, err := ctrl.Service.IssueTokens(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  time.Now().Add(service.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  time.Now().Add(service.RefreshTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	resp := dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      userDto.FromUsuarioModel(user),
	}
	if status == fiber.StatusCreated {
		return helper.JsonCreated(c, "Registered", resp)
	}
	return helper.JsonOK(c, "Authenticated", resp)
}

/* ===================== REGISTER ===================== */
// POST /auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.Service.Register(&req)
	if err != nil {
		return authError(c, err)
	}
	return ctrl.respondWithTokens(c, user, fiber.StatusCreated)
}

/* ===================== LOGIN ===================== */
// POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.Service.Login(req.UsuarioEmail, req.UsuarioSenha)
	if err != nil {
		return authError(c, err)
	}
	return ctrl.respondWithTokens(c, user, fiber.StatusOK)
}

/* ===================== GOOGLE LOGIN ===================== */
// POST /auth/login/google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.Service.LoginWithGoogle(req.IDToken)
	if err != nil {
		return authError(c, err)
	}
	return ctrl.respondWithTokens(c, user, fiber.StatusOK)
}

/* ===================== OTP ===================== */
// POST /auth/otp/request
func (ctrl *AuthController) RequestOtp(c *fiber.Ctx) error {
	var req dto.OtpRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Service.RequestOtp(c.Context(), req.WhatsApp); err != nil {
		// unknown numbers get the same answer as known ones
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonOK(c, "If the number is registered, a code was sent", nil)
		}
		return authError(c, err)
	}
	return helper.JsonOK(c, "If the number is registered, a code was sent", nil)
}

// POST /auth/otp/verify
func (ctrl *AuthController) VerifyOtp(c *fiber.Ctx) error {
	var req dto.OtpVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.Service.VerifyOtp(req.WhatsApp, req.Code)
	if err != nil {
		return authError(c, err)
	}
	return ctrl.respondWithTokens(c, user, fiber.StatusOK)
}

/* ===================== REFRESH ===================== */
// POST /auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&body); err == nil {
			raw = body.RefreshToken
		}
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	user, err := ctrl.Service.ParseRefreshToken(raw)
	if err != nil {
		return authError(c, err)
	}
	return ctrl.respondWithTokens(c, user, fiber.StatusOK)
}

/* ===================== LOGOUT ===================== */
// POST /auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token not provided")
	}
	if err := ctrl.Service.Logout(raw); err != nil {
		return authError(c, err)
	}

	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true})

	return helper.JsonOK(c, "Logged out", nil)
}

/* ===================== ME ===================== */
// GET /auth/me (behind the auth middleware)
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UsuarioModel
	if err := ctrl.DB.First(&user, "usuario_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario not found")
	}
	return helper.JsonOK(c, "Usuario found", userDto.FromUsuarioModel(&user))
}
