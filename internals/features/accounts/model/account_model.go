package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel is the tenant boundary. Every celula, membro, relatorio and
// presenca is reachable from exactly one account.
type AccountModel struct {
	AccountID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:account_id" json:"account_id"`
	AccountNome string    `gorm:"not null;column:account_nome" json:"account_nome"`

	AccountAtivo bool `gorm:"not null;default:true;column:account_ativo" json:"account_ativo"`

	AccountCreatedAt time.Time      `gorm:"column:account_created_at;autoCreateTime" json:"account_created_at"`
	AccountUpdatedAt *time.Time     `gorm:"column:account_updated_at;autoUpdateTime" json:"account_updated_at,omitempty"`
	AccountDeletedAt gorm.DeletedAt `gorm:"column:account_deleted_at;index" json:"account_deleted_at,omitempty"`
}

func (AccountModel) TableName() string { return "accounts" }
