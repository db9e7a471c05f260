package model

import (
	"time"

	"github.com/google/uuid"
)

// A membro belongs to exactly one celula for its lifetime. Deactivation
// (MembroAtivo=false) drops it from statistics denominators but keeps its
// presence history; hard delete is a separate admin operation that purges
// the presencas in the same transaction.
type MembroModel struct {
	MembroID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:membro_id" json:"membro_id"`
	MembroCelulaID uuid.UUID `gorm:"type:uuid;not null;index;column:membro_celula_id" json:"membro_celula_id"`

	MembroNome     string  `gorm:"not null;column:membro_nome" json:"membro_nome"`
	MembroTelefone *string `gorm:"column:membro_telefone" json:"membro_telefone,omitempty"`
	MembroEmail    *string `gorm:"column:membro_email" json:"membro_email,omitempty"`

	MembroDataNascimento *time.Time `gorm:"type:date;column:membro_data_nascimento" json:"membro_data_nascimento,omitempty"`

	// informational role flags, not authorization
	MembroEhConsolidador bool `gorm:"not null;default:false;column:membro_eh_consolidador" json:"membro_eh_consolidador"`
	MembroEhCoLider      bool `gorm:"not null;default:false;column:membro_eh_co_lider" json:"membro_eh_co_lider"`
	MembroEhAnfitriao    bool `gorm:"not null;default:false;column:membro_eh_anfitriao" json:"membro_eh_anfitriao"`

	MembroObservacoes *string `gorm:"column:membro_observacoes" json:"membro_observacoes,omitempty"`

	MembroAtivo bool `gorm:"not null;default:true;column:membro_ativo" json:"membro_ativo"`

	MembroCreatedAt time.Time  `gorm:"column:membro_created_at;autoCreateTime" json:"membro_created_at"`
	MembroUpdatedAt *time.Time `gorm:"column:membro_updated_at;autoUpdateTime" json:"membro_updated_at,omitempty"`
}

func (MembroModel) TableName() string { return "membros" }
