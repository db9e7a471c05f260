// file: internals/features/cells/cells/dto/celula_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "centralcelular_backend/internals/features/cells/cells/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CriarCelulaRequest struct {
	CelulaNome     string  `json:"celula_nome" validate:"required,min=3,max=120"`
	CelulaEndereco *string `json:"celula_endereco" validate:"omitempty,max=255"`

	CelulaDiaSemana string `json:"celula_dia_semana" validate:"required,max=20"`
	CelulaHorario   string `json:"celula_horario" validate:"required,max=10"`

	CelulaLiderID      uuid.UUID  `json:"celula_lider_id" validate:"required"`
	CelulaCoLiderID    *uuid.UUID `json:"celula_co_lider_id" validate:"omitempty"`
	CelulaSupervisorID *uuid.UUID `json:"celula_supervisor_id" validate:"omitempty"`
	CelulaRegiaoID     *uuid.UUID `json:"celula_regiao_id" validate:"omitempty"`
}

type AtualizarCelulaRequest struct {
	CelulaNome     *string `json:"celula_nome" validate:"omitempty,min=3,max=120"`
	CelulaEndereco *string `json:"celula_endereco" validate:"omitempty,max=255"`

	CelulaDiaSemana *string `json:"celula_dia_semana" validate:"omitempty,max=20"`
	CelulaHorario   *string `json:"celula_horario" validate:"omitempty,max=10"`

	CelulaLiderID      *uuid.UUID `json:"celula_lider_id" validate:"omitempty"`
	CelulaCoLiderID    *uuid.UUID `json:"celula_co_lider_id" validate:"omitempty"`
	CelulaSupervisorID *uuid.UUID `json:"celula_supervisor_id" validate:"omitempty"`
	CelulaRegiaoID     *uuid.UUID `json:"celula_regiao_id" validate:"omitempty"`
}

type AtivarCelulaRequest struct {
	CelulaAtivo bool `json:"celula_ativo"`
}

type FilterCelulaRequest struct {
	LiderID  *uuid.UUID `query:"lider" validate:"omitempty"`
	RegiaoID *uuid.UUID `query:"regiao" validate:"omitempty"`
	Ativo    *bool      `query:"ativo" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type CelulaResponse struct {
	CelulaID        uuid.UUID `json:"celula_id"`
	CelulaAccountID uuid.UUID `json:"celula_account_id"`

	CelulaNome     string  `json:"celula_nome"`
	CelulaEndereco *string `json:"celula_endereco,omitempty"`

	CelulaDiaSemana string `json:"celula_dia_semana"`
	CelulaHorario   string `json:"celula_horario"`

	CelulaLiderID      uuid.UUID  `json:"celula_lider_id"`
	CelulaCoLiderID    *uuid.UUID `json:"celula_co_lider_id,omitempty"`
	CelulaSupervisorID *uuid.UUID `json:"celula_supervisor_id,omitempty"`
	CelulaRegiaoID     *uuid.UUID `json:"celula_regiao_id,omitempty"`

	CelulaAtivo     bool      `json:"celula_ativo"`
	CelulaCreatedAt time.Time `json:"celula_created_at"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CriarCelulaRequest) ToModel(accountID uuid.UUID) m.CelulaModel {
	return m.CelulaModel{
		CelulaAccountID:    accountID,
		CelulaNome:         r.CelulaNome,
		CelulaEndereco:     r.CelulaEndereco,
		CelulaDiaSemana:    r.CelulaDiaSemana,
		CelulaHorario:      r.CelulaHorario,
		CelulaLiderID:      r.CelulaLiderID,
		CelulaCoLiderID:    r.CelulaCoLiderID,
		CelulaSupervisorID: r.CelulaSupervisorID,
		CelulaRegiaoID:     r.CelulaRegiaoID,
		CelulaAtivo:        true,
	}
}

func FromCelulaModel(mdl m.CelulaModel) CelulaResponse {
	return CelulaResponse{
		CelulaID:           mdl.CelulaID,
		CelulaAccountID:    mdl.CelulaAccountID,
		CelulaNome:         mdl.CelulaNome,
		CelulaEndereco:     mdl.CelulaEndereco,
		CelulaDiaSemana:    mdl.CelulaDiaSemana,
		CelulaHorario:      mdl.CelulaHorario,
		CelulaLiderID:      mdl.CelulaLiderID,
		CelulaCoLiderID:    mdl.CelulaCoLiderID,
		CelulaSupervisorID: mdl.CelulaSupervisorID,
		CelulaRegiaoID:     mdl.CelulaRegiaoID,
		CelulaAtivo:        mdl.CelulaAtivo,
		CelulaCreatedAt:    mdl.CelulaCreatedAt,
	}
}

func FromCelulaModels(mdls []m.CelulaModel) []CelulaResponse {
	out := make([]CelulaResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, FromCelulaModel(mdl))
	}
	return out
}
