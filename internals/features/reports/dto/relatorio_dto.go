// file: internals/features/reports/dto/relatorio_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"centralcelular_backend/internals/features/reports/model"
	"centralcelular_backend/internals/features/reports/service"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON). Months are 1..12 on the wire and internally; the old
// 0-based dashboard convention is not accepted.
type CriarRelatorioRequest struct {
	RelatorioCelulaID    uuid.UUID `json:"relatorio_celula_id" validate:"required"`
	RelatorioMes         int       `json:"relatorio_mes" validate:"required,min=1,max=12"`
	RelatorioAno         int       `json:"relatorio_ano" validate:"required,min=2020"`
	RelatorioObservacoes *string   `json:"relatorio_observacoes" validate:"omitempty,max=2000"`
}

type AtualizarRelatorioRequest struct {
	RelatorioObservacoes *string `json:"relatorio_observacoes" validate:"omitempty,max=2000"`
}

type RegistrarPresencaRequest struct {
	PresencaMembroID    uuid.UUID `json:"presenca_membro_id" validate:"required"`
	PresencaSemana      int       `json:"presenca_semana" validate:"required,min=1,max=4"`
	PresencaCelula      bool      `json:"presenca_celula"`
	PresencaCulto       bool      `json:"presenca_culto"`
	PresencaObservacoes *string   `json:"presenca_observacoes" validate:"omitempty,max=2000"`
}

// One coarse status entry; see service.BulkEntry for the week-1
// convention.
type PresencaStatusEntry struct {
	MembroID    uuid.UUID `json:"membro_id" validate:"required"`
	Status      string    `json:"status" validate:"required,oneof=none cell worship both"`
	Observacoes *string   `json:"observacoes" validate:"omitempty,max=2000"`
}

type BulkPresencaRequest struct {
	Entries []PresencaStatusEntry `json:"entries" validate:"required,min=1,dive"`
}

// Submit may carry a final snapshot persisted atomically with the
// submission timestamp.
type EnviarRelatorioRequest struct {
	Entries []PresencaStatusEntry `json:"entries" validate:"omitempty,dive"`
}

// Filter / List (query)
type FilterRelatorioRequest struct {
	CelulaID *uuid.UUID `query:"celula" validate:"omitempty"`
	Mes      *int       `query:"mes" validate:"omitempty,min=1,max=12"`
	Ano      *int       `query:"ano" validate:"omitempty,min=2020"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type RelatorioResponse struct {
	RelatorioID          uuid.UUID  `json:"relatorio_id"`
	RelatorioCelulaID    uuid.UUID  `json:"relatorio_celula_id"`
	RelatorioMes         int        `json:"relatorio_mes"`
	RelatorioAno         int        `json:"relatorio_ano"`
	RelatorioObservacoes *string    `json:"relatorio_observacoes,omitempty"`
	RelatorioDataEnvio   *time.Time `json:"relatorio_data_envio,omitempty"`

	// true once submitted; the dashboard disables editing on it
	RelatorioBloqueado bool `json:"relatorio_bloqueado"`

	RelatorioCreatedAt time.Time `json:"relatorio_created_at"`
}

type PresencaResponse struct {
	PresencaID          uuid.UUID `json:"presenca_id"`
	PresencaRelatorioID uuid.UUID `json:"presenca_relatorio_id"`
	PresencaMembroID    uuid.UUID `json:"presenca_membro_id"`
	PresencaSemana      int       `json:"presenca_semana"`
	PresencaCelula      bool      `json:"presenca_celula"`
	PresencaCulto       bool      `json:"presenca_culto"`
	PresencaObservacoes *string   `json:"presenca_observacoes,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FromRelatorioModel(m model.RelatorioModel) RelatorioResponse {
	return RelatorioResponse{
		RelatorioID:          m.RelatorioID,
		RelatorioCelulaID:    m.RelatorioCelulaID,
		RelatorioMes:         m.RelatorioMes,
		RelatorioAno:         m.RelatorioAno,
		RelatorioObservacoes: m.RelatorioObservacoes,
		RelatorioDataEnvio:   m.RelatorioDataEnvio,
		RelatorioBloqueado:   m.Enviado(),
		RelatorioCreatedAt:   m.RelatorioCreatedAt,
	}
}

func FromPresencaModel(m model.PresencaModel) PresencaResponse {
	return PresencaResponse{
		PresencaID:          m.PresencaID,
		PresencaRelatorioID: m.PresencaRelatorioID,
		PresencaMembroID:    m.PresencaMembroID,
		PresencaSemana:      m.PresencaSemana,
		PresencaCelula:      m.PresencaCelula,
		PresencaCulto:       m.PresencaCulto,
		PresencaObservacoes: m.PresencaObservacoes,
	}
}

func FromPresencaModels(ms []model.PresencaModel) []PresencaResponse {
	out := make([]PresencaResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromPresencaModel(m))
	}
	return out
}

func (e PresencaStatusEntry) ToBulkEntry() service.BulkEntry {
	return service.BulkEntry{
		MembroID:    e.MembroID,
		Status:      e.Status,
		Observacoes: e.Observacoes,
	}
}

func ToBulkEntries(entries []PresencaStatusEntry) []service.BulkEntry {
	out := make([]service.BulkEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ToBulkEntry())
	}
	return out
}
