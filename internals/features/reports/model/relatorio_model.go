package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelatorioModel is the attendance report of one celula for one
// accounting period. At most one row may exist per (celula, mes, ano);
// the composite unique index is what the idempotent create leans on.
// Months run 1..12. A report is Draft while RelatorioDataEnvio is null
// and Submitted (terminal) once it is set.
type RelatorioModel struct {
	RelatorioID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:relatorio_id" json:"relatorio_id"`
	RelatorioCelulaID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_relatorios_celula_periodo;column:relatorio_celula_id" json:"relatorio_celula_id"`

	RelatorioMes int `gorm:"not null;uniqueIndex:uq_relatorios_celula_periodo;column:relatorio_mes" json:"relatorio_mes"`
	RelatorioAno int `gorm:"not null;uniqueIndex:uq_relatorios_celula_periodo;column:relatorio_ano" json:"relatorio_ano"`

	RelatorioObservacoes *string `gorm:"column:relatorio_observacoes" json:"relatorio_observacoes,omitempty"`

	RelatorioDataEnvio *time.Time `gorm:"column:relatorio_data_envio" json:"relatorio_data_envio,omitempty"`

	RelatorioCreatedAt time.Time  `gorm:"column:relatorio_created_at;autoCreateTime" json:"relatorio_created_at"`
	RelatorioUpdatedAt *time.Time `gorm:"column:relatorio_updated_at;autoUpdateTime" json:"relatorio_updated_at,omitempty"`
}

func (RelatorioModel) TableName() string { return "relatorios" }

// ids are generated client side as well; the database default only
// covers rows inserted outside the application.
func (r *RelatorioModel) BeforeCreate(tx *gorm.DB) error {
	if r.RelatorioID == uuid.Nil {
		r.RelatorioID = uuid.New()
	}
	return nil
}

// Enviado reports are locked: presence rows can no longer change.
func (r RelatorioModel) Enviado() bool { return r.RelatorioDataEnvio != nil }
