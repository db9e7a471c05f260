package model

import (
	"time"

	"github.com/google/uuid"
)

type RegiaoModel struct {
	RegiaoID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:regiao_id" json:"regiao_id"`
	RegiaoAccountID uuid.UUID `gorm:"type:uuid;not null;index;column:regiao_account_id" json:"regiao_account_id"`
	RegiaoNome      string    `gorm:"not null;column:regiao_nome" json:"regiao_nome"`

	RegiaoCreatedAt time.Time `gorm:"column:regiao_created_at;autoCreateTime" json:"regiao_created_at"`
}

func (RegiaoModel) TableName() string { return "regioes" }
