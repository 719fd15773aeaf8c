package store

import (
	"fmt"

	"github.com/securecyberdata/legal-case-tracker/models"
)

// RecordActivity appends an entry to the owner's activity log
func (s *Scope) RecordActivity(action string, ref models.EntityRef, details string) (*models.Activity, error) {
	if !models.IsValidEntityType(ref.Type) {
		return nil, fmt.Errorf("unknown entity type %q", ref.Type)
	}

	activity := &models.Activity{
		Action:     action,
		Details:    details,
		EntityType: ref.Type,
		EntityID:   ref.ID,
		UserID:     s.userID,
	}
	if err := s.db.Create(activity).Error; err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}
	return activity, nil
}

// RecentActivities returns the owner's newest activity entries, capped at limit
func (s *Scope) RecentActivities(limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.scoped().
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// ActivitiesFor returns the owner's activity entries for one record,
// newest first
func (s *Scope) ActivitiesFor(ref models.EntityRef) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.scoped().
		Where("entity_type = ? AND entity_id = ?", ref.Type, ref.ID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activities for %s %d: %w", ref.Type, ref.ID, err)
	}
	return activities, nil
}
