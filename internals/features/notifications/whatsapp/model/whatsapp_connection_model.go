package model

import (
	"time"

	"github.com/google/uuid"
)

// One WhatsApp gateway session per account. Status mirrors the gateway
// ("connected", "disconnected", "pairing").
type WhatsAppConnectionModel struct {
	WhatsAppConnectionID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:whatsapp_connection_id" json:"whatsapp_connection_id"`
	WhatsAppConnectionAccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:whatsapp_connection_account_id" json:"whatsapp_connection_account_id"`

	WhatsAppConnectionToken  string `gorm:"not null;column:whatsapp_connection_token" json:"-"`
	WhatsAppConnectionStatus string `gorm:"not null;default:disconnected;column:whatsapp_connection_status" json:"whatsapp_connection_status"`

	WhatsAppConnectionCreatedAt time.Time  `gorm:"column:whatsapp_connection_created_at;autoCreateTime" json:"whatsapp_connection_created_at"`
	WhatsAppConnectionUpdatedAt *time.Time `gorm:"column:whatsapp_connection_updated_at;autoUpdateTime" json:"whatsapp_connection_updated_at,omitempty"`
}

func (WhatsAppConnectionModel) TableName() string { return "whatsapp_connections" }
