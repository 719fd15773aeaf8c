package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/securecyberdata/legal-case-tracker/models"
	"github.com/securecyberdata/legal-case-tracker/services"
)

// statusColors maps a case status to the event color shown on the calendar
var statusColors = map[string]string{
	models.CaseStatusPending:   "#F59E0B",
	models.CaseStatusActive:    "#3B82F6",
	models.CaseStatusScheduled: "#8B5CF6",
	models.CaseStatusAdjourned: "#6B7280",
	models.CaseStatusClosed:    "#10B981",
	models.CaseStatusUrgent:    "#EF4444",
}

const defaultEventColor = "#3B82F6"

// GetCalendarEventsHandler returns the user's hearings in a date range as
// calendar event objects
func GetCalendarEventsHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}

	startStr := c.QueryParam("start")
	endStr := c.QueryParam("end")
	if startStr == "" || endStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "start and end dates are required")
	}

	// Calendar clients send either RFC3339 timestamps or bare dates
	startTime, err := services.ParseDateOrRFC3339(startStr)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid start date format")
	}
	endTime, err := services.ParseDateOrRFC3339(endStr)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid end date format")
	}

	hearings, err := scope.HearingsBetween(startTime, endTime)
	if err != nil {
		return storeError(err, "hearings")
	}

	events := make([]map[string]interface{}, 0)
	for _, hearing := range hearings {
		color, ok := statusColors[hearing.Case.Status]
		if !ok {
			color = defaultEventColor
		}

		title := "Hearing - " + hearing.Case.Title
		if hearing.Case.Title == "" {
			title = "Hearing - " + hearing.Case.CaseNumber
		}

		events = append(events, map[string]interface{}{
			"id":              hearing.ID,
			"title":           title,
			"start":           hearing.HearingDate.Format(time.RFC3339),
			"allDay":          hearing.HearingTime == "",
			"backgroundColor": color,
			"borderColor":     color,
			"extendedProps": map[string]interface{}{
				"caseId":      hearing.CaseID,
				"caseNumber":  hearing.Case.CaseNumber,
				"hearingTime": hearing.HearingTime,
				"status":      hearing.Status,
				"notes":       hearing.Notes,
			},
		})
	}

	return c.JSON(http.StatusOK, events)
}
