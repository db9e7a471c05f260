package dto

import "centralcelular_backend/internals/features/users/user/dto"

// RegisterRequest creates a new account and its first admin user in one
// step.
type RegisterRequest struct {
	AccountNome     string  `json:"account_nome" validate:"required,min=2,max=120"`
	UsuarioNome     string  `json:"usuario_nome" validate:"required,min=2,max=120"`
	UsuarioEmail    string  `json:"usuario_email" validate:"required,email"`
	UsuarioSenha    string  `json:"usuario_senha" validate:"required,min=8"`
	UsuarioWhatsApp *string `json:"usuario_whatsapp" validate:"omitempty,min=8,max=20"`
}

type LoginRequest struct {
	UsuarioEmail string `json:"usuario_email" validate:"required,email"`
	UsuarioSenha string `json:"usuario_senha" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type OtpRequestRequest struct {
	WhatsApp string `json:"whatsapp" validate:"required,min=8,max=20"`
}

type OtpVerifyRequest struct {
	WhatsApp string `json:"whatsapp" validate:"required,min=8,max=20"`
	Code     string `json:"code" validate:"required,len=4,numeric"`
}

type TokenResponse struct {
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	Usuario      dto.UsuarioResponse `json:"usuario"`
}
