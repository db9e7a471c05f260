package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	celulaModel "centralcelular_backend/internals/features/cells/cells/model"
	membroModel "centralcelular_backend/internals/features/cells/members/model"
)

// The schema is created by hand because the production DDL leans on
// Postgres defaults that sqlite cannot evaluate.
var testSchema = []string{
	`CREATE TABLE celulas (
		celula_id TEXT PRIMARY KEY,
		celula_account_id TEXT NOT NULL,
		celula_nome TEXT NOT NULL,
		celula_endereco TEXT,
		celula_dia_semana TEXT NOT NULL,
		celula_horario TEXT NOT NULL,
		celula_lider_id TEXT NOT NULL,
		celula_co_lider_id TEXT,
		celula_supervisor_id TEXT,
		celula_regiao_id TEXT,
		celula_ativo INTEGER NOT NULL DEFAULT 1,
		celula_created_at DATETIME,
		celula_updated_at DATETIME,
		celula_deleted_at DATETIME
	)`,
	`CREATE TABLE membros (
		membro_id TEXT PRIMARY KEY,
		membro_celula_id TEXT NOT NULL,
		membro_nome TEXT NOT NULL,
		membro_telefone TEXT,
		membro_email TEXT,
		membro_data_nascimento DATE,
		membro_eh_consolidador INTEGER NOT NULL DEFAULT 0,
		membro_eh_co_lider INTEGER NOT NULL DEFAULT 0,
		membro_eh_anfitriao INTEGER NOT NULL DEFAULT 0,
		membro_observacoes TEXT,
		membro_ativo INTEGER NOT NULL DEFAULT 1,
		membro_created_at DATETIME,
		membro_updated_at DATETIME
	)`,
	`CREATE TABLE relatorios (
		relatorio_id TEXT PRIMARY KEY,
		relatorio_celula_id TEXT NOT NULL,
		relatorio_mes INTEGER NOT NULL,
		relatorio_ano INTEGER NOT NULL,
		relatorio_observacoes TEXT,
		relatorio_data_envio DATETIME,
		relatorio_created_at DATETIME,
		relatorio_updated_at DATETIME,
		CONSTRAINT uq_relatorios_celula_periodo
			UNIQUE (relatorio_celula_id, relatorio_mes, relatorio_ano)
	)`,
	`CREATE TABLE presencas (
		presenca_id TEXT PRIMARY KEY,
		presenca_relatorio_id TEXT NOT NULL,
		presenca_membro_id TEXT NOT NULL,
		presenca_semana INTEGER NOT NULL,
		presenca_celula INTEGER NOT NULL DEFAULT 0,
		presenca_culto INTEGER NOT NULL DEFAULT 0,
		presenca_observacoes TEXT,
		presenca_created_at DATETIME,
		presenca_updated_at DATETIME,
		CONSTRAINT uq_presencas_relatorio_membro_semana
			UNIQUE (presenca_relatorio_id, presenca_membro_id, presenca_semana)
	)`,
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// a single connection keeps every query on the same in-memory db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, ddl := range testSchema {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

type fixture struct {
	AccountID uuid.UUID
	LiderID   uuid.UUID
	Celula    celulaModel.CelulaModel
	Membro    membroModel.MembroModel
}

func seedCelula(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	fx := fixture{
		AccountID: uuid.New(),
		LiderID:   uuid.New(),
	}
	fx.Celula = celulaModel.CelulaModel{
		CelulaID:        uuid.New(),
		CelulaAccountID: fx.AccountID,
		CelulaNome:      "Celula Videira",
		CelulaDiaSemana: "quarta",
		CelulaHorario:   "19:30",
		CelulaLiderID:   fx.LiderID,
		CelulaAtivo:     true,
	}
	if err := db.Create(&fx.Celula).Error; err != nil {
		t.Fatalf("seed celula: %v", err)
	}

	fx.Membro = membroModel.MembroModel{
		MembroID:       uuid.New(),
		MembroCelulaID: fx.Celula.CelulaID,
		MembroNome:     "Joana",
		MembroAtivo:    true,
	}
	if err := db.Create(&fx.Membro).Error; err != nil {
		t.Fatalf("seed membro: %v", err)
	}
	return fx
}

func seedMembro(t *testing.T, db *gorm.DB, celulaID uuid.UUID, nome string) membroModel.MembroModel {
	t.Helper()

	m := membroModel.MembroModel{
		MembroID:       uuid.New(),
		MembroCelulaID: celulaID,
		MembroNome:     nome,
		MembroAtivo:    true,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed membro %s: %v", nome, err)
	}
	return m
}
