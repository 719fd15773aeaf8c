package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/securecyberdata/legal-case-tracker/models"
	"gorm.io/gorm"
)

// CaseParams carries the fields of a partial case update.
// Nil fields are left untouched.
type CaseParams struct {
	CaseNumber        *string
	ApplicationNumber *string
	FIRNumber         *string
	Title             *string
	Description       *string
	PlaintiffName     *string
	DefendantName     *string
	CourtName         *string
	CourtType         *string
	Status            *string
	FilingDate        *time.Time
	ClientID          *uint
}

func (p CaseParams) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.CaseNumber != nil {
		updates["case_number"] = *p.CaseNumber
	}
	if p.ApplicationNumber != nil {
		updates["application_number"] = *p.ApplicationNumber
	}
	if p.FIRNumber != nil {
		updates["fir_number"] = *p.FIRNumber
	}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.PlaintiffName != nil {
		updates["plaintiff_name"] = *p.PlaintiffName
	}
	if p.DefendantName != nil {
		updates["defendant_name"] = *p.DefendantName
	}
	if p.CourtName != nil {
		updates["court_name"] = *p.CourtName
	}
	if p.CourtType != nil {
		updates["court_type"] = *p.CourtType
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	if p.FilingDate != nil {
		updates["filing_date"] = *p.FilingDate
	}
	if p.ClientID != nil {
		updates["client_id"] = *p.ClientID
	}
	return updates
}

// ListCases returns the owner's cases, most recently updated first
func (s *Scope) ListCases() ([]models.Case, error) {
	var cases []models.Case
	err := s.scoped().
		Preload("Client").
		Order("updated_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

// RecentCases returns the owner's most recently updated cases, capped at limit
func (s *Scope) RecentCases(limit int) ([]models.Case, error) {
	var cases []models.Case
	err := s.scoped().
		Order("updated_at DESC").
		Limit(limit).
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent cases: %w", err)
	}
	return cases, nil
}

// GetCase returns a single case by id. ErrNotFound if the row is absent,
// ErrForbidden if it belongs to another user.
func (s *Scope) GetCase(id uint) (*models.Case, error) {
	var caseRecord models.Case
	err := s.db.Preload("Client").First(&caseRecord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch case: %w", err)
	}
	if !s.owns(caseRecord.UserID) {
		return nil, ErrForbidden
	}
	return &caseRecord, nil
}

// SearchCases matches the query case-insensitively against case number and
// title. Results are ordered the same as ListCases.
func (s *Scope) SearchCases(query string) ([]models.Case, error) {
	pattern := "%" + query + "%"
	var cases []models.Case
	err := s.scoped().
		Where(s.db.Where("case_number LIKE ?", pattern).Or("title LIKE ?", pattern)).
		Preload("Client").
		Order("updated_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search cases: %w", err)
	}
	return cases, nil
}

// FilterCasesByStatus returns the owner's cases with exactly the given status
func (s *Scope) FilterCasesByStatus(status string) ([]models.Case, error) {
	var cases []models.Case
	err := s.scoped().
		Where("status = ?", status).
		Preload("Client").
		Order("updated_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter cases: %w", err)
	}
	return cases, nil
}

// CreateCase persists a new case for the scope's owner
func (s *Scope) CreateCase(caseRecord *models.Case) (*models.Case, error) {
	caseRecord.ID = 0
	caseRecord.UserID = s.userID
	if caseRecord.Status == "" {
		caseRecord.Status = models.CaseStatusPending
	}
	if err := s.db.Create(caseRecord).Error; err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return caseRecord, nil
}

// UpdateCase merges the provided fields into an existing case and re-stamps
// its updated timestamp. Unset fields keep their current values.
func (s *Scope) UpdateCase(id uint, params CaseParams) (*models.Case, error) {
	caseRecord, err := s.GetCase(id)
	if err != nil {
		return nil, err
	}

	updates := params.changes()
	if len(updates) == 0 {
		return caseRecord, nil
	}

	if err := s.db.Model(caseRecord).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}

	// Reattaching the client leaves the previously preloaded Client stale;
	// reload so the returned record matches the new client_id
	if params.ClientID != nil {
		caseRecord.Client = nil
		if err := s.db.Preload("Client").First(caseRecord, "id = ?", caseRecord.ID).Error; err != nil {
			return nil, fmt.Errorf("failed to reload case: %w", err)
		}
	}
	return caseRecord, nil
}

// DeleteCase removes a case and its hearings. ErrNotFound if the case is
// already gone, ErrForbidden if it belongs to another user.
func (s *Scope) DeleteCase(id uint) error {
	caseRecord, err := s.GetCase(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("case_id = ?", caseRecord.ID).Delete(&models.Hearing{}).Error; err != nil {
			return fmt.Errorf("failed to delete case hearings: %w", err)
		}
		if err := tx.Delete(caseRecord).Error; err != nil {
			return fmt.Errorf("failed to delete case: %w", err)
		}
		return nil
	})
	return err
}
