package dto

import (
	"github.com/google/uuid"
)

// One celula-period statistics row for the dashboard.
type CelulaStatsResponse struct {
	RelatorioID     uuid.UUID `json:"relatorio_id"`
	CelulaID        uuid.UUID `json:"celula_id"`
	CelulaNome      string    `json:"celula_nome"`
	Mes             int       `json:"mes"`
	Ano             int       `json:"ano"`
	TotalMembros    int       `json:"total_membros"`
	PresencasCelula int       `json:"presencas_celula"`
	PresencasCulto  int       `json:"presencas_culto"`
	Percentual      float64   `json:"percentual"`

	// change vs. the preceding calendar period, 0 when there is none
	Crescimento float64 `json:"crescimento"`
}
