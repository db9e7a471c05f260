// internals/features/stats/service/stats_service.go
package service

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	presencaModel "centralcelular_backend/internals/features/reports/model"
)

// Pure aggregation over already-loaded data. Nothing here touches the
// database or raises domain errors; callers are responsible for loading
// a report together with its presencas and active-member count.

// GroupFrequency is one celula's attendance summary for one period.
type GroupFrequency struct {
	TotalMembros    int     `json:"total_membros"`
	PresencasCelula int     `json:"presencas_celula"`
	PresencasCulto  int     `json:"presencas_culto"`
	Percentual      float64 `json:"percentual"`
}

// ComputeGroupFrequency counts the two attendance flags and derives the
// combined percentage: (celula + culto) / (activeMembers * 2) * 100,
// rounded to two decimals. Zero active members yields 0, not NaN.
func ComputeGroupFrequency(activeMembers int, presencas []presencaModel.PresencaModel) GroupFrequency {
	freq := GroupFrequency{TotalMembros: activeMembers}
	for _, p := range presencas {
		if p.PresencaCelula {
			freq.PresencasCelula++
		}
		if p.PresencaCulto {
			freq.PresencasCulto++
		}
	}
	if activeMembers > 0 {
		raw := float64(freq.PresencasCelula+freq.PresencasCulto) / float64(activeMembers*2) * 100
		freq.Percentual = round2(raw)
	}
	return freq
}

// ComputePeriodGrowth is the percentage change from prior to current.
// A zero base yields 0 rather than an infinite growth figure.
func ComputePeriodGrowth(current, prior float64) float64 {
	if prior <= 0 {
		return 0
	}
	return round2((current - prior) / prior * 100)
}

// LeaderReportInput is one report's contribution to its leader's
// ranking: the report's celula leader plus the per-report tallies.
type LeaderReportInput struct {
	LiderID         uuid.UUID
	LiderNome       string
	TotalMembros    int
	PresencasCelula int
	PresencasCulto  int
}

// LeaderRankingEntry is one leader's aggregate for a period.
type LeaderRankingEntry struct {
	LiderID         uuid.UUID `json:"lider_id"`
	LiderNome       string    `json:"lider_nome"`
	Celulas         int       `json:"celulas"`
	TotalMembros    int       `json:"total_membros"`
	PresencasCelula int       `json:"presencas_celula"`
	PresencasCulto  int       `json:"presencas_culto"`
	MediaCelula     float64   `json:"media_celula"`
	MediaCulto      float64   `json:"media_culto"`
	MediaGeral      float64   `json:"media_geral"`
	Posicao         int       `json:"posicao"`
}

// ComputeLeaderRanking groups the period's reports by celula leader,
// sums members and attendance marks across each leader's celulas, and
// ranks leaders by the mean of their celula- and culto-attendance
// percentages (four meeting weeks per period). Ordering is descending by
// that mean; leaders with an identical mean are ordered by id ascending
// so the ranking is deterministic. Positions are 1-based.
func ComputeLeaderRanking(reports []LeaderReportInput) []LeaderRankingEntry {
	byLeader := make(map[uuid.UUID]*LeaderRankingEntry)
	for _, r := range reports {
		entry, ok := byLeader[r.LiderID]
		if !ok {
			entry = &LeaderRankingEntry{LiderID: r.LiderID, LiderNome: r.LiderNome}
			byLeader[r.LiderID] = entry
		}
		entry.Celulas++
		entry.TotalMembros += r.TotalMembros
		entry.PresencasCelula += r.PresencasCelula
		entry.PresencasCulto += r.PresencasCulto
	}

	ranking := make([]LeaderRankingEntry, 0, len(byLeader))
	for _, entry := range byLeader {
		if entry.TotalMembros > 0 {
			entry.MediaCelula = round2(float64(entry.PresencasCelula) / float64(entry.TotalMembros*4) * 100)
			entry.MediaCulto = round2(float64(entry.PresencasCulto) / float64(entry.TotalMembros*4) * 100)
		}
		entry.MediaGeral = round2((entry.MediaCelula + entry.MediaCulto) / 2)
		ranking = append(ranking, *entry)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].MediaGeral != ranking[j].MediaGeral {
			return ranking[i].MediaGeral > ranking[j].MediaGeral
		}
		return strings.Compare(ranking[i].LiderID.String(), ranking[j].LiderID.String()) < 0
	})

	for i := range ranking {
		ranking[i].Posicao = i + 1
	}
	return ranking
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
