package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/securecyberdata/legal-case-tracker/models"
	"gorm.io/gorm"
)

// HearingParams carries the fields of a partial hearing update.
// Nil fields are left untouched. A hearing cannot be moved to another case.
type HearingParams struct {
	HearingDate *time.Time
	HearingTime *string
	Notes       *string
	Status      *string
}

func (p HearingParams) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.HearingDate != nil {
		updates["hearing_date"] = *p.HearingDate
	}
	if p.HearingTime != nil {
		updates["hearing_time"] = *p.HearingTime
	}
	if p.Notes != nil {
		updates["notes"] = *p.Notes
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	return updates
}

// ListHearings returns the owner's hearings ordered by hearing date,
// soonest first
func (s *Scope) ListHearings() ([]models.Hearing, error) {
	var hearings []models.Hearing
	err := s.scoped().
		Preload("Case").
		Order("hearing_date ASC").
		Find(&hearings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list hearings: %w", err)
	}
	return hearings, nil
}

// UpcomingHearings returns the owner's hearings dated today or later,
// soonest first, capped at limit
func (s *Scope) UpcomingHearings(limit int) ([]models.Hearing, error) {
	var hearings []models.Hearing
	err := s.scoped().
		Where("hearing_date >= ?", todayUTC()).
		Preload("Case").
		Order("hearing_date ASC").
		Limit(limit).
		Find(&hearings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming hearings: %w", err)
	}
	return hearings, nil
}

// HearingsBetween returns the owner's hearings with a hearing date in
// [start, end), ordered by hearing date. Used by the calendar feed.
func (s *Scope) HearingsBetween(start, end time.Time) ([]models.Hearing, error) {
	var hearings []models.Hearing
	err := s.scoped().
		Where("hearing_date >= ? AND hearing_date < ?", start, end).
		Preload("Case").
		Order("hearing_date ASC").
		Find(&hearings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list hearings in range: %w", err)
	}
	return hearings, nil
}

// GetHearing returns a single hearing by id. ErrNotFound if the row is
// absent, ErrForbidden if it belongs to another user.
func (s *Scope) GetHearing(id uint) (*models.Hearing, error) {
	var hearing models.Hearing
	err := s.db.Preload("Case").First(&hearing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hearing: %w", err)
	}
	if !s.owns(hearing.UserID) {
		return nil, ErrForbidden
	}
	return &hearing, nil
}

// CreateHearing persists a new hearing for the scope's owner. The parent
// case must exist and belong to the same owner. The hearing insert, the
// case status change to Scheduled, and the next-hearing refresh happen in
// one transaction.
func (s *Scope) CreateHearing(hearing *models.Hearing) (*models.Hearing, error) {
	parent, err := s.GetCase(hearing.CaseID)
	if err != nil {
		return nil, err
	}

	hearing.ID = 0
	hearing.UserID = s.userID
	if hearing.Status == "" {
		hearing.Status = models.HearingStatusScheduled
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(hearing).Error; err != nil {
			return fmt.Errorf("failed to create hearing: %w", err)
		}
		if err := tx.Model(&models.Case{}).
			Where("id = ?", parent.ID).
			Update("status", models.CaseStatusScheduled).Error; err != nil {
			return fmt.Errorf("failed to mark case scheduled: %w", err)
		}
		return refreshNextHearing(tx, parent.ID)
	})
	if err != nil {
		return nil, err
	}
	return hearing, nil
}

// UpdateHearing merges the provided fields into an existing hearing. When
// the hearing date changes, the parent case's next-hearing date is
// refreshed in the same transaction.
func (s *Scope) UpdateHearing(id uint, params HearingParams) (*models.Hearing, error) {
	hearing, err := s.GetHearing(id)
	if err != nil {
		return nil, err
	}

	updates := params.changes()
	if len(updates) == 0 {
		return hearing, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(hearing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update hearing: %w", err)
		}
		if params.HearingDate != nil {
			return refreshNextHearing(tx, hearing.CaseID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hearing, nil
}

// DeleteHearing removes a hearing and refreshes the parent case's
// next-hearing date in the same transaction
func (s *Scope) DeleteHearing(id uint) error {
	hearing, err := s.GetHearing(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(hearing).Error; err != nil {
			return fmt.Errorf("failed to delete hearing: %w", err)
		}
		return refreshNextHearing(tx, hearing.CaseID)
	})
}

// refreshNextHearing recomputes a case's cached next-hearing date: the
// earliest hearing dated today or later, falling back to the most recent
// past hearing, or NULL when the case has no hearings left.
func refreshNextHearing(tx *gorm.DB, caseID uint) error {
	var next models.Hearing
	err := tx.Where("case_id = ? AND hearing_date >= ?", caseID, todayUTC()).
		Order("hearing_date ASC").
		First(&next).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = tx.Where("case_id = ?", caseID).
			Order("hearing_date DESC").
			First(&next).Error
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Model(&models.Case{}).
			Where("id = ?", caseID).
			Update("next_hearing_date", nil).Error; err != nil {
			return fmt.Errorf("failed to clear next hearing date: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find next hearing: %w", err)
	}

	if err := tx.Model(&models.Case{}).
		Where("id = ?", caseID).
		Update("next_hearing_date", next.HearingDate).Error; err != nil {
		return fmt.Errorf("failed to update next hearing date: %w", err)
	}
	return nil
}
