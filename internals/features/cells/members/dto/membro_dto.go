// file: internals/features/cells/members/dto/membro_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "centralcelular_backend/internals/features/cells/members/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CriarMembroRequest struct {
	MembroNome     string  `json:"membro_nome" validate:"required,min=2,max=120"`
	MembroTelefone *string `json:"membro_telefone" validate:"omitempty,max=20"`
	MembroEmail    *string `json:"membro_email" validate:"omitempty,email"`

	MembroDataNascimento *time.Time `json:"membro_data_nascimento" validate:"omitempty"`

	MembroEhConsolidador bool `json:"membro_eh_consolidador"`
	MembroEhCoLider      bool `json:"membro_eh_co_lider"`
	MembroEhAnfitriao    bool `json:"membro_eh_anfitriao"`

	MembroObservacoes *string `json:"membro_observacoes" validate:"omitempty,max=2000"`
}

type AtualizarMembroRequest struct {
	MembroNome     *string `json:"membro_nome" validate:"omitempty,min=2,max=120"`
	MembroTelefone *string `json:"membro_telefone" validate:"omitempty,max=20"`
	MembroEmail    *string `json:"membro_email" validate:"omitempty,email"`

	MembroDataNascimento *time.Time `json:"membro_data_nascimento" validate:"omitempty"`

	MembroEhConsolidador *bool `json:"membro_eh_consolidador" validate:"omitempty"`
	MembroEhCoLider      *bool `json:"membro_eh_co_lider" validate:"omitempty"`
	MembroEhAnfitriao    *bool `json:"membro_eh_anfitriao" validate:"omitempty"`

	MembroObservacoes *string `json:"membro_observacoes" validate:"omitempty,max=2000"`
}

type AtivarMembroRequest struct {
	MembroAtivo bool `json:"membro_ativo"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CriarMembroRequest) ToModel(celulaID uuid.UUID) m.MembroModel {
	return m.MembroModel{
		MembroCelulaID:       celulaID,
		MembroNome:           r.MembroNome,
		MembroTelefone:       r.MembroTelefone,
		MembroEmail:          r.MembroEmail,
		MembroDataNascimento: r.MembroDataNascimento,
		MembroEhConsolidador: r.MembroEhConsolidador,
		MembroEhCoLider:      r.MembroEhCoLider,
		MembroEhAnfitriao:    r.MembroEhAnfitriao,
		MembroObservacoes:    r.MembroObservacoes,
		MembroAtivo:          true,
	}
}
