package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	recentCasesLimit      = 5
	upcomingHearingsLimit = 5
	recentActivitiesLimit = 10
)

// GetDashboardStatsHandler returns the user's summary counts
func GetDashboardStatsHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}

	stats, err := scope.DashboardStats()
	if err != nil {
		return storeError(err, "dashboard")
	}
	return c.JSON(http.StatusOK, stats)
}

// GetDashboardRecentHandler returns the recent-items panels of the
// dashboard: latest cases, upcoming hearings, and the activity feed
func GetDashboardRecentHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}

	recentCases, err := scope.RecentCases(recentCasesLimit)
	if err != nil {
		return storeError(err, "cases")
	}
	upcomingHearings, err := scope.UpcomingHearings(upcomingHearingsLimit)
	if err != nil {
		return storeError(err, "hearings")
	}
	recentActivities, err := scope.RecentActivities(recentActivitiesLimit)
	if err != nil {
		return storeError(err, "activities")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recent_cases":      recentCases,
		"upcoming_hearings": upcomingHearings,
		"recent_activities": recentActivities,
	})
}

// GetActivitiesHandler returns the user's newest activity entries
func GetActivitiesHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}

	activities, err := scope.RecentActivities(limitParam(c, 20, 100))
	if err != nil {
		return storeError(err, "activities")
	}
	return c.JSON(http.StatusOK, activities)
}
