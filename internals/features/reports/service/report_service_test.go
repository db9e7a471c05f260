package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"centralcelular_backend/internals/constants"
	"centralcelular_backend/internals/features/reports/model"
)

func TestEnsureReportCreatesDraft(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, err := svc.EnsureReport(fx.Celula.CelulaID, 3, 2025, fx.AccountID, nil)
	if err != nil {
		t.Fatalf("EnsureReport: %v", err)
	}
	if rel.RelatorioID == uuid.Nil {
		t.Fatal("expected a generated id")
	}
	if rel.Enviado() {
		t.Fatal("new report must start as draft")
	}
	if rel.RelatorioMes != 3 || rel.RelatorioAno != 2025 {
		t.Fatalf("wrong period: %d/%d", rel.RelatorioMes, rel.RelatorioAno)
	}
}

func TestEnsureReportIdempotent(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	first, err := svc.EnsureReport(fx.Celula.CelulaID, 5, 2025, fx.AccountID, nil)
	if err != nil {
		t.Fatalf("first EnsureReport: %v", err)
	}
	second, err := svc.EnsureReport(fx.Celula.CelulaID, 5, 2025, fx.AccountID, nil)
	if err != nil {
		t.Fatalf("second EnsureReport: %v", err)
	}
	if first.RelatorioID != second.RelatorioID {
		t.Fatalf("expected the same row back, got %s and %s", first.RelatorioID, second.RelatorioID)
	}

	var count int64
	db.Model(&model.RelatorioModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 report row, got %d", count)
	}
}

func TestEnsureReportValidation(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	cases := []struct {
		name string
		mes  int
		ano  int
	}{
		{"mes zero", 0, 2025},
		{"mes thirteen", 13, 2025},
		{"ano below minimum", 6, MinAno - 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.EnsureReport(fx.Celula.CelulaID, tc.mes, tc.ano, fx.AccountID, nil)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestEnsureReportOtherAccountReadsAsMissing(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	_, err := svc.EnsureReport(fx.Celula.CelulaID, 4, 2025, uuid.New(), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign account, got %v", err)
	}
}

func TestSubmitByLeader(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, err := svc.EnsureReport(fx.Celula.CelulaID, 6, 2025, fx.AccountID, nil)
	if err != nil {
		t.Fatalf("EnsureReport: %v", err)
	}

	out, err := svc.Submit(rel.RelatorioID, fx.LiderID, constants.RoleLider, fx.AccountID, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Enviado() {
		t.Fatal("report should be submitted")
	}

	var stored model.RelatorioModel
	db.First(&stored, "relatorio_id = ?", rel.RelatorioID)
	if !stored.Enviado() {
		t.Fatal("submission timestamp not persisted")
	}
}

func TestSubmitSecondTimeConflicts(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 7, 2025, fx.AccountID, nil)
	if _, err := svc.Submit(rel.RelatorioID, fx.LiderID, constants.RoleLider, fx.AccountID, nil); err != nil {
		t.Fatalf("first Submit: %v", err)
	}

	var before model.RelatorioModel
	db.First(&before, "relatorio_id = ?", rel.RelatorioID)

	_, err := svc.Submit(rel.RelatorioID, fx.LiderID, constants.RoleLider, fx.AccountID, nil)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on re-submit, got %v", err)
	}

	var after model.RelatorioModel
	db.First(&after, "relatorio_id = ?", rel.RelatorioID)
	if !after.RelatorioDataEnvio.Equal(*before.RelatorioDataEnvio) {
		t.Fatal("re-submit must not move the submission timestamp")
	}
}

func TestSubmitAuthorization(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 8, 2025, fx.AccountID, nil)

	stranger := uuid.New()
	_, err := svc.Submit(rel.RelatorioID, stranger, constants.RoleLider, fx.AccountID, nil)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-leader, got %v", err)
	}

	// an admin who is not the leader may submit
	if _, err := svc.Submit(rel.RelatorioID, stranger, constants.RoleAdmin, fx.AccountID, nil); err != nil {
		t.Fatalf("admin Submit: %v", err)
	}
}

func TestSubmitWithSnapshot(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 9, 2025, fx.AccountID, nil)

	snapshot := []BulkEntry{
		{MembroID: fx.Membro.MembroID, Status: StatusBoth},
	}
	if _, err := svc.Submit(rel.RelatorioID, fx.LiderID, constants.RoleLider, fx.AccountID, snapshot); err != nil {
		t.Fatalf("Submit with snapshot: %v", err)
	}

	var row model.PresencaModel
	if err := db.
		Where("presenca_relatorio_id = ? AND presenca_membro_id = ?", rel.RelatorioID, fx.Membro.MembroID).
		First(&row).Error; err != nil {
		t.Fatalf("snapshot row missing: %v", err)
	}
	if row.PresencaSemana != 1 {
		t.Fatalf("snapshot should land on week 1, got %d", row.PresencaSemana)
	}
	if !row.PresencaCelula || !row.PresencaCulto {
		t.Fatal("status both should set both flags")
	}
}

func TestSubmitSnapshotFailureLeavesDraft(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 10, 2025, fx.AccountID, nil)

	snapshot := []BulkEntry{
		{MembroID: fx.Membro.MembroID, Status: StatusCell},
		{MembroID: uuid.New(), Status: StatusBoth}, // unknown membro
	}
	_, err := svc.Submit(rel.RelatorioID, fx.LiderID, constants.RoleLider, fx.AccountID, snapshot)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from snapshot, got %v", err)
	}

	var stored model.RelatorioModel
	db.First(&stored, "relatorio_id = ?", rel.RelatorioID)
	if stored.Enviado() {
		t.Fatal("failed snapshot must not submit the report")
	}

	var count int64
	db.Model(&model.PresencaModel{}).
		Where("presenca_relatorio_id = ?", rel.RelatorioID).
		Count(&count)
	if count != 0 {
		t.Fatalf("failed snapshot must roll back all rows, found %d", count)
	}
}

func TestUpdateNotesWorksAfterSubmit(t *testing.T) {
	db := testDB(t)
	fx := seedCelula(t, db)
	svc := New(db)

	rel, _ := svc.EnsureReport(fx.Celula.CelulaID, 11, 2025, fx.AccountID, nil)
	if _, err := svc.Submit(rel.RelatorioID, fx.LiderID, constants.RoleLider, fx.AccountID, nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	notes := "visita do supervisor"
	out, err := svc.UpdateNotes(rel.RelatorioID, &notes, fx.AccountID)
	if err != nil {
		t.Fatalf("UpdateNotes: %v", err)
	}
	if out.RelatorioObservacoes == nil || *out.RelatorioObservacoes != notes {
		t.Fatal("notes not updated")
	}
}
