// internals/features/reports/service/report_service.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"centralcelular_backend/internals/constants"
	"centralcelular_backend/internals/features/reports/model"
)

// Reports older than this year are assumed to be typos.
const MinAno = 2020

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

// EnsureReport returns the report of (celulaID, mes, ano), creating a
// Draft one when none exists. Calling it twice for the same key is safe
// and returns the same row: the insert rides the composite unique index
// with an ON CONFLICT DO NOTHING, so a concurrent duplicate request
// simply reads back the row that won.
func (s *Service) EnsureReport(celulaID uuid.UUID, mes, ano int, accountID uuid.UUID, observacoes *string) (*model.RelatorioModel, error) {
	if mes < 1 || mes > 12 {
		return nil, fmt.Errorf("%w: mes must be 1..12, got %d", ErrInvalidArgument, mes)
	}
	if ano < MinAno {
		return nil, fmt.Errorf("%w: ano must be >= %d, got %d", ErrInvalidArgument, MinAno, ano)
	}

	if _, err := s.celulaForAccount(s.DB, celulaID, accountID); err != nil {
		return nil, err
	}

	rec := model.RelatorioModel{
		RelatorioCelulaID:    celulaID,
		RelatorioMes:         mes,
		RelatorioAno:         ano,
		RelatorioObservacoes: observacoes,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "relatorio_celula_id"},
			{Name: "relatorio_mes"},
			{Name: "relatorio_ano"},
		},
		DoNothing: true,
	}).Create(&rec).Error
	if err != nil && !isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Re-read regardless of who created the row; on a skipped insert rec
	// holds no id.
	var out model.RelatorioModel
	if err := s.DB.
		Where("relatorio_celula_id = ? AND relatorio_mes = ? AND relatorio_ano = ?", celulaID, mes, ano).
		First(&out).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &out, nil
}

// Submit flips a Draft report to Submitted, irreversibly. When snapshot
// entries are supplied they are persisted in the same transaction as the
// timestamp: either both land or neither does. Re-submission is rejected
// with ErrConflict, unlike EnsureReport this is not idempotent; a caller
// whose submit failed ambiguously must re-fetch the report state before
// retrying.
func (s *Service) Submit(relatorioID, callerUserID uuid.UUID, callerRole string, accountID uuid.UUID, snapshot []BulkEntry) (*model.RelatorioModel, error) {
	relatorio, celula, err := s.relatorioForAccount(s.DB, relatorioID, accountID)
	if err != nil {
		return nil, err
	}

	if relatorio.Enviado() {
		return nil, fmt.Errorf("%w: relatorio already submitted", ErrConflict)
	}

	if callerRole != constants.RoleAdmin && celula.CelulaLiderID != callerUserID {
		return nil, fmt.Errorf("%w: only the celula leader or an admin may submit", ErrForbidden)
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if len(snapshot) > 0 {
			if err := s.applyBulk(tx, relatorio, snapshot); err != nil {
				return err
			}
		}

		// Guarded write: the WHERE on data_envio IS NULL makes two
		// concurrent submits resolve to one winner and one conflict.
		res := tx.Model(&model.RelatorioModel{}).
			Where("relatorio_id = ? AND relatorio_data_envio IS NULL", relatorioID).
			Update("relatorio_data_envio", now)
		if res.Error != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: relatorio already submitted", ErrConflict)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	relatorio.RelatorioDataEnvio = &now
	return relatorio, nil
}

// UpdateNotes edits the free-text notes. Allowed in either state; notes
// are the one field that stays writable after submission.
func (s *Service) UpdateNotes(relatorioID uuid.UUID, observacoes *string, accountID uuid.UUID) (*model.RelatorioModel, error) {
	relatorio, _, err := s.relatorioForAccount(s.DB, relatorioID, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(&model.RelatorioModel{}).
		Where("relatorio_id = ?", relatorioID).
		Update("relatorio_observacoes", observacoes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	relatorio.RelatorioObservacoes = observacoes
	return relatorio, nil
}
