package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CelulaModel struct {
	CelulaID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:celula_id" json:"celula_id"`
	CelulaAccountID uuid.UUID `gorm:"type:uuid;not null;index;column:celula_account_id" json:"celula_account_id"`

	CelulaNome     string  `gorm:"not null;column:celula_nome" json:"celula_nome"`
	CelulaEndereco *string `gorm:"column:celula_endereco" json:"celula_endereco,omitempty"`

	// meeting slot, e.g. "quarta" / "19:30"
	CelulaDiaSemana string `gorm:"not null;column:celula_dia_semana" json:"celula_dia_semana"`
	CelulaHorario   string `gorm:"not null;column:celula_horario" json:"celula_horario"`

	CelulaLiderID      uuid.UUID  `gorm:"type:uuid;not null;index;column:celula_lider_id" json:"celula_lider_id"`
	CelulaCoLiderID    *uuid.UUID `gorm:"type:uuid;column:celula_co_lider_id" json:"celula_co_lider_id,omitempty"`
	CelulaSupervisorID *uuid.UUID `gorm:"type:uuid;column:celula_supervisor_id" json:"celula_supervisor_id,omitempty"`
	CelulaRegiaoID     *uuid.UUID `gorm:"type:uuid;column:celula_regiao_id" json:"celula_regiao_id,omitempty"`

	CelulaAtivo bool `gorm:"not null;default:true;column:celula_ativo" json:"celula_ativo"`

	CelulaCreatedAt time.Time      `gorm:"column:celula_created_at;autoCreateTime" json:"celula_created_at"`
	CelulaUpdatedAt *time.Time     `gorm:"column:celula_updated_at;autoUpdateTime" json:"celula_updated_at,omitempty"`
	CelulaDeletedAt gorm.DeletedAt `gorm:"column:celula_deleted_at;index" json:"celula_deleted_at,omitempty"`
}

func (CelulaModel) TableName() string { return "celulas" }
