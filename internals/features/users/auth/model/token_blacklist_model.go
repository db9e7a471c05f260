package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tokens invalidated by logout. Rows expire and are swept by the cleanup
// scheduler.
type TokenBlacklist struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Token     string         `gorm:"not null;index;column:token" json:"token"`
	ExpiredAt time.Time      `gorm:"not null;column:expired_at" json:"expired_at"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
