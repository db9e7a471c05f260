package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"centralcelular_backend/internals/constants"
	celulaModel "centralcelular_backend/internals/features/cells/cells/model"
	"centralcelular_backend/internals/features/reports/model"
)

func TestRecordPresenceUpsertLastWriteWins(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 3, 2025, fx.AccountID, nil)

	first, err := svc.RecordPresence(rel.RelatorioID, fx.Membro.MembroID, 2, true, false, nil, fx.AccountID)
	if err != nil {
		t.Fatalf("first RecordPresence: %v", err)
	}

	obs := "chegou atrasada"
	second, err := svc.RecordPresence(rel.RelatorioID, fx.Membro.MembroID, 2, false, true, &obs, fx.AccountID)
	if err != nil {
		t.Fatalf("second RecordPresence: %v", err)
	}

	if first.PresencaID != second.PresencaID {
		t.Fatalf("expected the same row, got %s and %s", first.PresencaID, second.PresencaID)
	}
	if second.PresencaCelula || !second.PresencaCulto {
		t.Fatal("second write must overwrite the flags")
	}
	if second.PresencaObservacoes == nil || *second.PresencaObservacoes != obs {
		t.Fatal("second write must overwrite the notes")
	}

	var count int64
	db.Model(&model.PresencaModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 presence row, got %d", count)
	}
}

func TestRecordPresenceWeekValidation(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 3, 2025, fx.AccountID, nil)

	for _, semana := range []int{0, 5, -1} {
		if _, err := svc.RecordPresence(rel.RelatorioID, fx.Membro.MembroID, semana, true, true, nil, fx.AccountID); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("semana %d: expected ErrInvalidArgument, got %v", semana, err)
		}
	}
}

func TestRecordPresenceMembershipChecks(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 3, 2025, fx.AccountID, nil)

	// unknown membro
	if _, err := svc.RecordPresence(rel.RelatorioID, uuid.New(), 1, true, true, nil, fx.AccountID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown membro, got %v", err)
	}

	// membro of another celula in the same account
	other := celulaModel.CelulaModel{
		CelulaID:        uuid.New(),
		CelulaAccountID: fx.AccountID,
		CelulaNome:      "Celula Oliveira",
		CelulaDiaSemana: "sexta",
		CelulaHorario:   "20:00",
		CelulaLiderID:   uuid.New(),
		CelulaAtivo:     true,
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed other celula: %v", err)
	}
	foreign := seedMembro(t, db, other.CelulaID, "Pedro")

	if _, err := svc.RecordPresence(rel.RelatorioID, foreign.MembroID, 1, true, true, nil, fx.AccountID); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for cross-celula membro, got %v", err)
	}
}

func TestRecordPresenceLockedAfterSubmit(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 3, 2025, fx.AccountID, nil)
	if _, err := svc.RecordPresence(rel.RelatorioID, fx.Membro.MembroID, 1, true, false, nil, fx.AccountID); err != nil {
		t.Fatalf("RecordPresence: %v", err)
	}
	if _, err := svc.Submit(rel.RelatorioID, fx.LiderID, constants.RoleLider, fx.AccountID, nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	_, err := svc.RecordPresence(rel.RelatorioID, fx.Membro.MembroID, 1, false, false, nil, fx.AccountID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on a submitted report, got %v", err)
	}

	// the existing row stays as it was
	var row model.PresencaModel
	db.Where("presenca_relatorio_id = ? AND presenca_semana = 1", rel.RelatorioID).First(&row)
	if !row.PresencaCelula || row.PresencaCulto {
		t.Fatal("locked report's presence row was modified")
	}

	if err := svc.BulkRecordPresence(rel.RelatorioID, []BulkEntry{
		{MembroID: fx.Membro.MembroID, Status: StatusNone},
	}, fx.AccountID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict from bulk on submitted report, got %v", err)
	}
}

func TestBulkRecordPresenceWeekOne(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 3, 2025, fx.AccountID, nil)
	outro := seedMembro(t, db, fx.Celula.CelulaID, "Marcos")

	// a pre-existing week-3 row must survive the bulk write untouched
	if _, err := svc.RecordPresence(rel.RelatorioID, fx.Membro.MembroID, 3, true, true, nil, fx.AccountID); err != nil {
		t.Fatalf("seed week-3 row: %v", err)
	}

	err := svc.BulkRecordPresence(rel.RelatorioID, []BulkEntry{
		{MembroID: fx.Membro.MembroID, Status: StatusCell},
		{MembroID: outro.MembroID, Status: StatusWorship},
	}, fx.AccountID)
	if err != nil {
		t.Fatalf("BulkRecordPresence: %v", err)
	}

	var week1 []model.PresencaModel
	db.Where("presenca_relatorio_id = ? AND presenca_semana = 1", rel.RelatorioID).
		Order("presenca_created_at ASC").Find(&week1)
	if len(week1) != 2 {
		t.Fatalf("expected 2 week-1 rows, got %d", len(week1))
	}

	var week3 model.PresencaModel
	if err := db.
		Where("presenca_relatorio_id = ? AND presenca_semana = 3", rel.RelatorioID).
		First(&week3).Error; err != nil {
		t.Fatalf("week-3 row gone: %v", err)
	}
	if !week3.PresencaCelula || !week3.PresencaCulto {
		t.Fatal("bulk write must not touch other weeks")
	}
}

func TestBulkRecordPresenceInvalidStatusRollsBack(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 3, 2025, fx.AccountID, nil)
	outro := seedMembro(t, db, fx.Celula.CelulaID, "Marcos")

	err := svc.BulkRecordPresence(rel.RelatorioID, []BulkEntry{
		{MembroID: fx.Membro.MembroID, Status: StatusBoth},
		{MembroID: outro.MembroID, Status: "presente"}, // not a known status
	}, fx.AccountID)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	var count int64
	db.Model(&model.PresencaModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("partial bulk write persisted %d rows", count)
	}
}

func TestListPresencesTenantScoped(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 3, 2025, fx.AccountID, nil)
	if _, err := svc.RecordPresence(rel.RelatorioID, fx.Membro.MembroID, 1, true, false, nil, fx.AccountID); err != nil {
		t.Fatalf("RecordPresence: %v", err)
	}

	rows, err := svc.ListPresences(rel.RelatorioID, fx.AccountID)
	if err != nil {
		t.Fatalf("ListPresences: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	if _, err := svc.ListPresences(rel.RelatorioID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign account, got %v", err)
	}
}
