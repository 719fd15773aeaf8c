package store

import (
	"fmt"

	"github.com/securecyberdata/legal-case-tracker/models"
)

// StatusCount is one (status, count) pair of the by-status breakdown
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DashboardStats holds the summary counts shown on the dashboard.
// ActiveCases counts status Active only; Scheduled cases are reported
// separately through CasesByStatus.
type DashboardStats struct {
	TotalCases       int64         `json:"total_cases"`
	ActiveCases      int64         `json:"active_cases"`
	TotalClients     int64         `json:"total_clients"`
	HearingsThisWeek int64         `json:"hearings_this_week"`
	CasesByStatus    []StatusCount `json:"cases_by_status"`
}

// DashboardStats recomputes the owner's summary counts from the full row
// set. No caching; volumes here are small.
func (s *Scope) DashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.scoped().Model(&models.Case{}).
		Count(&stats.TotalCases).Error; err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}

	if err := s.scoped().Model(&models.Case{}).
		Where("status = ?", models.CaseStatusActive).
		Count(&stats.ActiveCases).Error; err != nil {
		return nil, fmt.Errorf("failed to count active cases: %w", err)
	}

	if err := s.scoped().Model(&models.Client{}).
		Count(&stats.TotalClients).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	// This week means the 7 calendar days starting today, inclusive
	weekStart := todayUTC()
	weekEnd := weekStart.AddDate(0, 0, 8)
	if err := s.scoped().Model(&models.Hearing{}).
		Where("hearing_date >= ? AND hearing_date < ?", weekStart, weekEnd).
		Count(&stats.HearingsThisWeek).Error; err != nil {
		return nil, fmt.Errorf("failed to count hearings this week: %w", err)
	}

	// Sorted by status so the breakdown is stable across calls
	if err := s.scoped().Model(&models.Case{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Order("status ASC").
		Scan(&stats.CasesByStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to group cases by status: %w", err)
	}

	return stats, nil
}
