package model

import (
	"time"

	"github.com/google/uuid"
)

// One-shot 4-digit login codes delivered over WhatsApp.
type OtpCode struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index;column:account_id" json:"account_id"`
	WhatsApp  string    `gorm:"not null;index;column:whatsapp" json:"whatsapp"`
	Code      string    `gorm:"not null;column:code" json:"-"`
	ExpiresAt time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
	Used      bool      `gorm:"not null;default:false;column:used" json:"used"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OtpCode) TableName() string { return "otp_codes" }
