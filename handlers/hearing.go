package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/securecyberdata/legal-case-tracker/models"
	"github.com/securecyberdata/legal-case-tracker/services"
	"github.com/securecyberdata/legal-case-tracker/store"
)

type createHearingRequest struct {
	CaseID      uint   `json:"case_id"`
	HearingDate string `json:"hearing_date"` // YYYY-MM-DD
	HearingTime string `json:"hearing_time"` // Optional HH:MM
	Notes       string `json:"notes"`
	Status      string `json:"status"`
}

type updateHearingRequest struct {
	HearingDate *string `json:"hearing_date"` // YYYY-MM-DD
	HearingTime *string `json:"hearing_time"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status"`
}

// GetHearingsHandler returns the user's hearings ordered by hearing date,
// soonest first. With upcoming=true only hearings dated today or later are
// returned, capped by the limit parameter.
func GetHearingsHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}

	var hearings []models.Hearing
	if c.QueryParam("upcoming") == "true" {
		hearings, err = scope.UpcomingHearings(limitParam(c, 5, 50))
	} else {
		hearings, err = scope.ListHearings()
	}
	if err != nil {
		return storeError(err, "hearings")
	}

	return c.JSON(http.StatusOK, hearings)
}

// GetHearingHandler returns a single hearing
func GetHearingHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	hearing, err := scope.GetHearing(id)
	if err != nil {
		return storeError(err, "hearing")
	}
	return c.JSON(http.StatusOK, hearing)
}

// CreateHearingHandler schedules a hearing for one of the user's cases
func CreateHearingHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}

	var req createHearingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.CaseID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Case id is required")
	}
	if req.HearingDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Hearing date is required")
	}
	hearingDate, err := services.ParseDate(req.HearingDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid hearing date: "+err.Error())
	}
	if req.HearingTime != "" {
		if _, err := time.Parse("15:04", req.HearingTime); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid hearing time: expected HH:MM")
		}
	}

	hearing := &models.Hearing{
		CaseID:      req.CaseID,
		HearingDate: hearingDate,
		HearingTime: req.HearingTime,
		Notes:       services.SanitizeText(req.Notes),
		Status:      req.Status,
	}

	created, err := scope.CreateHearing(hearing)
	if err != nil {
		// Not-found and forbidden can only come from the parent lookup
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrForbidden) {
			return storeError(err, "case")
		}
		return storeError(err, "hearing")
	}

	services.RecordActivity(scope, "created_hearing", models.HearingRef(created.ID),
		fmt.Sprintf("Scheduled hearing on %s for case %d", hearingDate.Format("2006-01-02"), created.CaseID))

	return c.JSON(http.StatusCreated, created)
}

// UpdateHearingHandler merges the provided fields into an existing hearing
func UpdateHearingHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req updateHearingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	params := store.HearingParams{
		HearingTime: req.HearingTime,
		Status:      req.Status,
	}
	if req.HearingDate != nil {
		hearingDate, err := services.ParseDate(*req.HearingDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid hearing date: "+err.Error())
		}
		params.HearingDate = &hearingDate
	}
	if req.HearingTime != nil && *req.HearingTime != "" {
		if _, err := time.Parse("15:04", *req.HearingTime); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid hearing time: expected HH:MM")
		}
	}
	if req.Notes != nil {
		clean := services.SanitizeText(*req.Notes)
		params.Notes = &clean
	}

	updated, err := scope.UpdateHearing(id, params)
	if err != nil {
		return storeError(err, "hearing")
	}

	services.RecordActivity(scope, "updated_hearing", models.HearingRef(updated.ID),
		fmt.Sprintf("Updated hearing %d for case %d", updated.ID, updated.CaseID))

	return c.JSON(http.StatusOK, updated)
}

// DeleteHearingHandler removes a hearing and refreshes the parent case's
// next-hearing date
func DeleteHearingHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	hearing, err := scope.GetHearing(id)
	if err != nil {
		return storeError(err, "hearing")
	}
	if err := scope.DeleteHearing(id); err != nil {
		return storeError(err, "hearing")
	}

	services.RecordActivity(scope, "deleted_hearing", models.HearingRef(id),
		fmt.Sprintf("Removed hearing of %s for case %d", hearing.HearingDate.Format("2006-01-02"), hearing.CaseID))

	return c.NoContent(http.StatusNoContent)
}

// DownloadHearingICSHandler exports a hearing as an ICS calendar file
func DownloadHearingICSHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	hearing, err := scope.GetHearing(id)
	if err != nil {
		return storeError(err, "hearing")
	}

	ics := services.GenerateHearingICS(hearing)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="hearing-%d.ics"`, hearing.ID))
	return c.Blob(http.StatusOK, "text/calendar", ics)
}
