package service

import (
	"testing"

	"github.com/google/uuid"

	presencaModel "centralcelular_backend/internals/features/reports/model"
)

func presenca(celula, culto bool) presencaModel.PresencaModel {
	return presencaModel.PresencaModel{PresencaCelula: celula, PresencaCulto: culto}
}

func TestComputeGroupFrequencyZeroMembers(t *testing.T) {
	freq := ComputeGroupFrequency(0, []presencaModel.PresencaModel{presenca(true, true)})
	if freq.Percentual != 0 {
		t.Fatalf("zero active members must yield 0%%, got %v", freq.Percentual)
	}
}

func TestComputeGroupFrequencyHalf(t *testing.T) {
	// 10 active members, 6 cell marks + 4 worship marks = 10 of 20
	rows := make([]presencaModel.PresencaModel, 0, 6)
	for i := 0; i < 4; i++ {
		rows = append(rows, presenca(true, true))
	}
	rows = append(rows, presenca(true, false), presenca(true, false))

	freq := ComputeGroupFrequency(10, rows)
	if freq.PresencasCelula != 6 || freq.PresencasCulto != 4 {
		t.Fatalf("wrong tallies: celula=%d culto=%d", freq.PresencasCelula, freq.PresencasCulto)
	}
	if freq.Percentual != 50.00 {
		t.Fatalf("expected 50.00, got %v", freq.Percentual)
	}
}

func TestComputeGroupFrequencyRounding(t *testing.T) {
	// 3 members, 1 cell mark: 1/6 = 16.666... -> 16.67
	freq := ComputeGroupFrequency(3, []presencaModel.PresencaModel{presenca(true, false)})
	if freq.Percentual != 16.67 {
		t.Fatalf("expected 16.67, got %v", freq.Percentual)
	}
}

func TestComputePeriodGrowth(t *testing.T) {
	if g := ComputePeriodGrowth(75, 50); g != 50.00 {
		t.Fatalf("expected 50.00, got %v", g)
	}
	if g := ComputePeriodGrowth(25, 50); g != -50.00 {
		t.Fatalf("expected -50.00, got %v", g)
	}
	if g := ComputePeriodGrowth(40, 0); g != 0 {
		t.Fatalf("zero base must yield 0, got %v", g)
	}
}

func TestComputeLeaderRankingAggregatesAndSorts(t *testing.T) {
	liderA := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000")
	liderB := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000")

	reports := []LeaderReportInput{
		// leader A, two celulas: 10+10 members, 40+20 celula, 30+10 culto
		{LiderID: liderA, LiderNome: "Ana", TotalMembros: 10, PresencasCelula: 40, PresencasCulto: 30},
		{LiderID: liderA, LiderNome: "Ana", TotalMembros: 10, PresencasCelula: 20, PresencasCulto: 10},
		// leader B, one celula: 10 members, 20 celula, 20 culto
		{LiderID: liderB, LiderNome: "Bruno", TotalMembros: 10, PresencasCelula: 20, PresencasCulto: 20},
	}

	ranking := ComputeLeaderRanking(reports)
	if len(ranking) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranking))
	}

	top := ranking[0]
	if top.LiderID != liderA {
		t.Fatalf("expected Ana first, got %s", top.LiderNome)
	}
	if top.Celulas != 2 || top.TotalMembros != 20 {
		t.Fatalf("wrong aggregates: celulas=%d membros=%d", top.Celulas, top.TotalMembros)
	}
	// 60 of 80 celula marks = 75.00, 40 of 80 culto marks = 50.00
	if top.MediaCelula != 75.00 || top.MediaCulto != 50.00 {
		t.Fatalf("wrong means: celula=%v culto=%v", top.MediaCelula, top.MediaCulto)
	}
	if top.MediaGeral != 62.50 {
		t.Fatalf("expected 62.50, got %v", top.MediaGeral)
	}

	if ranking[0].Posicao != 1 || ranking[1].Posicao != 2 {
		t.Fatalf("positions must be 1-based and sequential: %d, %d",
			ranking[0].Posicao, ranking[1].Posicao)
	}
}

func TestComputeLeaderRankingTieBreaksById(t *testing.T) {
	liderA := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000")
	liderB := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000")

	reports := []LeaderReportInput{
		{LiderID: liderB, LiderNome: "Bruno", TotalMembros: 5, PresencasCelula: 10, PresencasCulto: 10},
		{LiderID: liderA, LiderNome: "Ana", TotalMembros: 5, PresencasCelula: 10, PresencasCulto: 10},
	}

	ranking := ComputeLeaderRanking(reports)
	if ranking[0].LiderID != liderA || ranking[1].LiderID != liderB {
		t.Fatal("ties must order by leader id ascending")
	}
}

func TestComputeLeaderRankingZeroMembers(t *testing.T) {
	lider := uuid.New()
	ranking := ComputeLeaderRanking([]LeaderReportInput{
		{LiderID: lider, LiderNome: "Carla", TotalMembros: 0, PresencasCelula: 0, PresencasCulto: 0},
	})
	if len(ranking) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(ranking))
	}
	if ranking[0].MediaGeral != 0 {
		t.Fatalf("zero members must yield 0 means, got %v", ranking[0].MediaGeral)
	}
}

func TestComputeGroupFrequencyEmpty(t *testing.T) {
	freq := ComputeGroupFrequency(8, nil)
	if freq.Percentual != 0 || freq.PresencasCelula != 0 || freq.PresencasCulto != 0 {
		t.Fatalf("empty period must be all zero, got %+v", freq)
	}
}
