package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PresencaModel is one attendance fact: one membro, one week (1..4) of
// one relatorio. The composite unique index makes presence recording an
// upsert; writing the same (relatorio, membro, semana) twice overwrites
// the flags instead of duplicating the row.
type PresencaModel struct {
	PresencaID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:presenca_id" json:"presenca_id"`
	PresencaRelatorioID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_presencas_relatorio_membro_semana;column:presenca_relatorio_id" json:"presenca_relatorio_id"`
	PresencaMembroID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_presencas_relatorio_membro_semana;column:presenca_membro_id" json:"presenca_membro_id"`

	PresencaSemana int `gorm:"not null;uniqueIndex:uq_presencas_relatorio_membro_semana;column:presenca_semana" json:"presenca_semana"`

	PresencaCelula bool `gorm:"not null;default:false;column:presenca_celula" json:"presenca_celula"`
	PresencaCulto  bool `gorm:"not null;default:false;column:presenca_culto" json:"presenca_culto"`

	PresencaObservacoes *string `gorm:"column:presenca_observacoes" json:"presenca_observacoes,omitempty"`

	PresencaCreatedAt time.Time  `gorm:"column:presenca_created_at;autoCreateTime" json:"presenca_created_at"`
	PresencaUpdatedAt *time.Time `gorm:"column:presenca_updated_at;autoUpdateTime" json:"presenca_updated_at,omitempty"`
}

func (PresencaModel) TableName() string { return "presencas" }

func (p *PresencaModel) BeforeCreate(tx *gorm.DB) error {
	if p.PresencaID == uuid.Nil {
		p.PresencaID = uuid.New()
	}
	return nil
}
