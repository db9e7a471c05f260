package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioModel struct {
	UsuarioID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:usuario_id" json:"usuario_id"`
	UsuarioAccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_usuarios_account_email;column:usuario_account_id" json:"usuario_account_id"`

	UsuarioNome  string `gorm:"not null;column:usuario_nome" json:"usuario_nome"`
	UsuarioEmail string `gorm:"not null;uniqueIndex:uq_usuarios_account_email;column:usuario_email" json:"usuario_email"`

	// bcrypt hash, never serialized
	UsuarioSenha string `gorm:"not null;column:usuario_senha" json:"-"`

	// admin | supervisor | lider
	UsuarioCargo    string  `gorm:"not null;default:lider;column:usuario_cargo" json:"usuario_cargo"`
	UsuarioWhatsApp *string `gorm:"column:usuario_whatsapp" json:"usuario_whatsapp,omitempty"`

	UsuarioAtivo bool `gorm:"not null;default:true;column:usuario_ativo" json:"usuario_ativo"`

	UsuarioCreatedAt time.Time      `gorm:"column:usuario_created_at;autoCreateTime" json:"usuario_created_at"`
	UsuarioUpdatedAt *time.Time     `gorm:"column:usuario_updated_at;autoUpdateTime" json:"usuario_updated_at,omitempty"`
	UsuarioDeletedAt gorm.DeletedAt `gorm:"column:usuario_deleted_at;index" json:"usuario_deleted_at,omitempty"`
}

func (UsuarioModel) TableName() string { return "usuarios" }
