package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	celulaModel "centralcelular_backend/internals/features/cells/cells/model"
	"centralcelular_backend/internals/features/reports/model"
)

// Relatorios and presencas carry no account column of their own; the
// tenant chain is Account → Celula → Relatorio → Presenca. These helpers
// walk that chain for every read and write. A miss anywhere on the chain
// answers ErrNotFound, never Forbidden.

func (s *Service) celulaForAccount(tx *gorm.DB, celulaID, accountID uuid.UUID) (*celulaModel.CelulaModel, error) {
	var celula celulaModel.CelulaModel
	err := tx.
		Where("celula_id = ? AND celula_account_id = ?", celulaID, accountID).
		First(&celula).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: celula %s", ErrNotFound, celulaID)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &celula, nil
}

// relatorioForAccount loads a report together with its celula, verifying
// the celula belongs to the caller's account.
func (s *Service) relatorioForAccount(tx *gorm.DB, relatorioID, accountID uuid.UUID) (*model.RelatorioModel, *celulaModel.CelulaModel, error) {
	var relatorio model.RelatorioModel
	err := tx.
		Where("relatorio_id = ?", relatorioID).
		First(&relatorio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: relatorio %s", ErrNotFound, relatorioID)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	celula, err := s.celulaForAccount(tx, relatorio.RelatorioCelulaID, accountID)
	if err != nil {
		// out-of-tenant report reads identically to a missing one
		return nil, nil, err
	}
	return &relatorio, celula, nil
}
