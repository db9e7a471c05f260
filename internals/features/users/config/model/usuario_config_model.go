package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Per-user preferences, one row per usuario. Preferencias is a free-form
// JSONB document (theme, dashboard layout, etc.); the birthday lead days
// drive the WhatsApp reminder job.
type UsuarioConfigModel struct {
	UsuarioConfigID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:usuario_config_id" json:"usuario_config_id"`
	UsuarioConfigUsuarioID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:usuario_config_usuario_id" json:"usuario_config_usuario_id"`

	UsuarioConfigNotificarAniversarios bool `gorm:"not null;default:true;column:usuario_config_notificar_aniversarios" json:"usuario_config_notificar_aniversarios"`
	UsuarioConfigDiasAntecedencia      int  `gorm:"not null;default:1;column:usuario_config_dias_antecedencia" json:"usuario_config_dias_antecedencia"`

	UsuarioConfigPreferencias datatypes.JSONMap `gorm:"column:usuario_config_preferencias" json:"usuario_config_preferencias,omitempty"`

	UsuarioConfigCreatedAt time.Time  `gorm:"column:usuario_config_created_at;autoCreateTime" json:"usuario_config_created_at"`
	UsuarioConfigUpdatedAt *time.Time `gorm:"column:usuario_config_updated_at;autoUpdateTime" json:"usuario_config_updated_at,omitempty"`
}

func (UsuarioConfigModel) TableName() string { return "usuario_configs" }
