// internals/features/reports/service/presence_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	membroModel "centralcelular_backend/internals/features/cells/members/model"
	"centralcelular_backend/internals/features/reports/model"
)

// Coarse whole-period classification used by the submit-time snapshot.
// It carries no week dimension of its own; the convention is that it
// always lands on week 1.
const (
	StatusNone    = "none"
	StatusCell    = "cell"
	StatusWorship = "worship"
	StatusBoth    = "both"
)

// BulkEntry is one member's coarse status for the period.
type BulkEntry struct {
	MembroID    uuid.UUID
	Status      string
	Observacoes *string
}

// RecordPresence upserts the attendance of one membro for one week of a
// Draft report. Last write wins; the composite unique index plus ON
// CONFLICT DO UPDATE guarantees at most one row per (relatorio, membro,
// semana) even under concurrent calls.
func (s *Service) RecordPresence(relatorioID, membroID uuid.UUID, semana int, presencaCelula, presencaCulto bool, observacoes *string, accountID uuid.UUID) (*model.PresencaModel, error) {
	if semana < 1 || semana > 4 {
		return nil, fmt.Errorf("%w: semana must be 1..4, got %d", ErrInvalidArgument, semana)
	}

	relatorio, _, err := s.relatorioForAccount(s.DB, relatorioID, accountID)
	if err != nil {
		return nil, err
	}
	if relatorio.Enviado() {
		return nil, fmt.Errorf("%w: relatorio already submitted, presences are locked", ErrConflict)
	}

	if err := s.membroInCelula(s.DB, membroID, relatorio.RelatorioCelulaID); err != nil {
		return nil, err
	}

	rec := model.PresencaModel{
		PresencaRelatorioID: relatorioID,
		PresencaMembroID:    membroID,
		PresencaSemana:      semana,
		PresencaCelula:      presencaCelula,
		PresencaCulto:       presencaCulto,
		PresencaObservacoes: observacoes,
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "presenca_relatorio_id"},
			{Name: "presenca_membro_id"},
			{Name: "presenca_semana"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"presenca_celula", "presenca_culto", "presenca_observacoes",
		}),
	}).Create(&rec).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var out model.PresencaModel
	if err := s.DB.
		Where("presenca_relatorio_id = ? AND presenca_membro_id = ? AND presenca_semana = ?", relatorioID, membroID, semana).
		First(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &out, nil
}

// BulkRecordPresence applies a batch of coarse statuses in a single
// transaction: all entries land or none do. Only the supplied members'
// week-1 rows are touched; other members and weeks 2..4 stay as they
// are.
func (s *Service) BulkRecordPresence(relatorioID uuid.UUID, entries []BulkEntry, accountID uuid.UUID) error {
	relatorio, _, err := s.relatorioForAccount(s.DB, relatorioID, accountID)
	if err != nil {
		return err
	}
	if relatorio.Enviado() {
		return fmt.Errorf("%w: relatorio already submitted, presences are locked", ErrConflict)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.applyBulk(tx, relatorio, entries)
	})
}

// ListPresences returns every presence row of a report, any state.
func (s *Service) ListPresences(relatorioID, accountID uuid.UUID) ([]model.PresencaModel, error) {
	if _, _, err := s.relatorioForAccount(s.DB, relatorioID, accountID); err != nil {
		return nil, err
	}

	var rows []model.PresencaModel
	if err := s.DB.
		Where("presenca_relatorio_id = ?", relatorioID).
		Order("presenca_semana ASC, presenca_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return rows, nil
}

func statusFlags(status string) (celula bool, culto bool, err error) {
	switch status {
	case StatusNone:
		return false, false, nil
	case StatusCell:
		return true, false, nil
	case StatusWorship:
		return false, true, nil
	case StatusBoth:
		return true, true, nil
	default:
		return false, false, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, status)
	}
}

// applyBulk upserts the week-1 row of each entry inside the caller's
// transaction.
func (s *Service) applyBulk(tx *gorm.DB, relatorio *model.RelatorioModel, entries []BulkEntry) error {
	for _, entry := range entries {
		presencaCelula, presencaCulto, err := statusFlags(entry.Status)
		if err != nil {
			return err
		}

		if err := s.membroInCelula(tx, entry.MembroID, relatorio.RelatorioCelulaID); err != nil {
			return err
		}

		rec := model.PresencaModel{
			PresencaRelatorioID: relatorio.RelatorioID,
			PresencaMembroID:    entry.MembroID,
			PresencaSemana:      1,
			PresencaCelula:      presencaCelula,
			PresencaCulto:       presencaCulto,
			PresencaObservacoes: entry.Observacoes,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "presenca_relatorio_id"},
				{Name: "presenca_membro_id"},
				{Name: "presenca_semana"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"presenca_celula", "presenca_culto", "presenca_observacoes",
			}),
		}).Create(&rec).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	return nil
}

func (s *Service) membroInCelula(tx *gorm.DB, membroID, celulaID uuid.UUID) error {
	var membro membroModel.MembroModel
	if err := tx.Where("membro_id = ?", membroID).First(&membro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: membro %s", ErrNotFound, membroID)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if membro.MembroCelulaID != celulaID {
		return fmt.Errorf("%w: membro does not belong to the relatorio's celula", ErrInvalidArgument)
	}
	return nil
}
