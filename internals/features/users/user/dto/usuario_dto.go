package dto

import (
	"time"

	"github.com/google/uuid"

	"centralcelular_backend/internals/features/users/user/model"
)

type CriarUsuarioRequest struct {
	UsuarioNome     string  `json:"usuario_nome" validate:"required,min=2,max=120"`
	UsuarioEmail    string  `json:"usuario_email" validate:"required,email"`
	UsuarioSenha    string  `json:"usuario_senha" validate:"required,min=8"`
	UsuarioCargo    string  `json:"usuario_cargo" validate:"required,oneof=admin supervisor lider"`
	UsuarioWhatsApp *string `json:"usuario_whatsapp" validate:"omitempty,min=8,max=20"`
}

type AtualizarUsuarioRequest struct {
	UsuarioNome     *string `json:"usuario_nome" validate:"omitempty,min=2,max=120"`
	UsuarioCargo    *string `json:"usuario_cargo" validate:"omitempty,oneof=admin supervisor lider"`
	UsuarioWhatsApp *string `json:"usuario_whatsapp" validate:"omitempty,min=8,max=20"`
}

type AtivarUsuarioRequest struct {
	UsuarioAtivo bool `json:"usuario_ativo"`
}

type UsuarioResponse struct {
	UsuarioID       string    `json:"usuario_id"`
	UsuarioNome     string    `json:"usuario_nome"`
	UsuarioEmail    string    `json:"usuario_email"`
	UsuarioCargo    string    `json:"usuario_cargo"`
	UsuarioWhatsApp *string   `json:"usuario_whatsapp,omitempty"`
	UsuarioAtivo    bool      `json:"usuario_ativo"`
	UsuarioCriadoEm time.Time `json:"usuario_criado_em"`
}

func (r *CriarUsuarioRequest) ToModel(accountID uuid.UUID, senhaHash string) model.UsuarioModel {
	return model.UsuarioModel{
		UsuarioAccountID: accountID,
		UsuarioNome:      r.UsuarioNome,
		UsuarioEmail:     r.UsuarioEmail,
		UsuarioSenha:     senhaHash,
		UsuarioCargo:     r.UsuarioCargo,
		UsuarioWhatsApp:  r.UsuarioWhatsApp,
	}
}

func FromUsuarioModel(m *model.UsuarioModel) UsuarioResponse {
	return UsuarioResponse{
		UsuarioID:       m.UsuarioID.String(),
		UsuarioNome:     m.UsuarioNome,
		UsuarioEmail:    m.UsuarioEmail,
		UsuarioCargo:    m.UsuarioCargo,
		UsuarioWhatsApp: m.UsuarioWhatsApp,
		UsuarioAtivo:    m.UsuarioAtivo,
		UsuarioCriadoEm: m.UsuarioCreatedAt,
	}
}

func FromUsuarioModels(ms []model.UsuarioModel) []UsuarioResponse {
	out := make([]UsuarioResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromUsuarioModel(&ms[i]))
	}
	return out
}
