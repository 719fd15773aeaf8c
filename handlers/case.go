package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/securecyberdata/legal-case-tracker/models"
	"github.com/securecyberdata/legal-case-tracker/services"
	"github.com/securecyberdata/legal-case-tracker/store"
)

type createCaseRequest struct {
	CaseNumber        string `json:"case_number"`
	ApplicationNumber string `json:"application_number"`
	FIRNumber         string `json:"fir_number"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	PlaintiffName     string `json:"plaintiff_name"`
	DefendantName     string `json:"defendant_name"`
	CourtName         string `json:"court_name"`
	CourtType         string `json:"court_type"`
	Status            string `json:"status"`
	FilingDate        string `json:"filing_date"` // YYYY-MM-DD
	ClientID          *uint  `json:"client_id"`
}

type updateCaseRequest struct {
	CaseNumber        *string `json:"case_number"`
	ApplicationNumber *string `json:"application_number"`
	FIRNumber         *string `json:"fir_number"`
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	PlaintiffName     *string `json:"plaintiff_name"`
	DefendantName     *string `json:"defendant_name"`
	CourtName         *string `json:"court_name"`
	CourtType         *string `json:"court_type"`
	Status            *string `json:"status"`
	FilingDate        *string `json:"filing_date"` // YYYY-MM-DD
	ClientID          *uint   `json:"client_id"`
}

// GetCasesHandler returns the user's cases. Supports an exact status filter
// and a keyword search over case number and title; without either, all
// cases are returned most recently updated first.
func GetCasesHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}

	status := c.QueryParam("status")
	query := c.QueryParam("q")

	var cases []models.Case
	switch {
	case status != "":
		if !models.IsValidCaseStatus(status) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid case status")
		}
		cases, err = scope.FilterCasesByStatus(status)
	case query != "":
		cases, err = scope.SearchCases(query)
	default:
		cases, err = scope.ListCases()
	}
	if err != nil {
		return storeError(err, "cases")
	}

	return c.JSON(http.StatusOK, cases)
}

// GetCaseHandler returns a single case
func GetCaseHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	caseRecord, err := scope.GetCase(id)
	if err != nil {
		return storeError(err, "case")
	}
	return c.JSON(http.StatusOK, caseRecord)
}

// CreateCaseHandler creates a new case for the user
func CreateCaseHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}

	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.CaseNumber == "" || req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Case number and title are required")
	}
	if req.Status != "" && !models.IsValidCaseStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid case status")
	}

	caseRecord := &models.Case{
		CaseNumber:        req.CaseNumber,
		ApplicationNumber: req.ApplicationNumber,
		FIRNumber:         req.FIRNumber,
		Title:             req.Title,
		Description:       services.SanitizeText(req.Description),
		PlaintiffName:     req.PlaintiffName,
		DefendantName:     req.DefendantName,
		CourtName:         req.CourtName,
		CourtType:         req.CourtType,
		Status:            req.Status,
	}

	if req.FilingDate != "" {
		filingDate, err := services.ParseDate(req.FilingDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid filing date: "+err.Error())
		}
		caseRecord.FilingDate = &filingDate
	}

	// The referenced client must exist and belong to the same user
	if req.ClientID != nil {
		if _, err := scope.GetClient(*req.ClientID); err != nil {
			return storeError(err, "client")
		}
		caseRecord.ClientID = req.ClientID
	}

	created, err := scope.CreateCase(caseRecord)
	if err != nil {
		return storeError(err, "case")
	}

	services.RecordActivity(scope, "created_case", models.CaseRef(created.ID),
		fmt.Sprintf("Created case %s: %s", created.CaseNumber, created.Title))

	return c.JSON(http.StatusCreated, created)
}

// UpdateCaseHandler merges the provided fields into an existing case
func UpdateCaseHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req updateCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Status != nil && !models.IsValidCaseStatus(*req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid case status")
	}
	if req.CaseNumber != nil && *req.CaseNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Case number cannot be empty")
	}
	if req.Title != nil && *req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Title cannot be empty")
	}

	params := store.CaseParams{
		CaseNumber:        req.CaseNumber,
		ApplicationNumber: req.ApplicationNumber,
		FIRNumber:         req.FIRNumber,
		Title:             req.Title,
		PlaintiffName:     req.PlaintiffName,
		DefendantName:     req.DefendantName,
		CourtName:         req.CourtName,
		CourtType:         req.CourtType,
		Status:            req.Status,
	}

	if req.Description != nil {
		clean := services.SanitizeText(*req.Description)
		params.Description = &clean
	}
	if req.FilingDate != nil {
		filingDate, err := services.ParseDate(*req.FilingDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid filing date: "+err.Error())
		}
		params.FilingDate = &filingDate
	}
	if req.ClientID != nil {
		if _, err := scope.GetClient(*req.ClientID); err != nil {
			return storeError(err, "client")
		}
		params.ClientID = req.ClientID
	}

	updated, err := scope.UpdateCase(id, params)
	if err != nil {
		return storeError(err, "case")
	}

	services.RecordActivity(scope, "updated_case", models.CaseRef(updated.ID),
		fmt.Sprintf("Updated case %s", updated.CaseNumber))

	return c.JSON(http.StatusOK, updated)
}

// DeleteCaseHandler removes a case and its hearings
func DeleteCaseHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	caseRecord, err := scope.GetCase(id)
	if err != nil {
		return storeError(err, "case")
	}
	if err := scope.DeleteCase(id); err != nil {
		return storeError(err, "case")
	}

	services.RecordActivity(scope, "deleted_case", models.CaseRef(id),
		fmt.Sprintf("Deleted case %s", caseRecord.CaseNumber))

	return c.NoContent(http.StatusNoContent)
}

// GetCaseActivityHandler returns the activity feed for one case
func GetCaseActivityHandler(c echo.Context) error {
	scope, err := currentScope(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	// Resolve the case first so an unknown or foreign id maps to 404/403
	if _, err := scope.GetCase(id); err != nil {
		return storeError(err, "case")
	}

	activities, err := scope.ActivitiesFor(models.CaseRef(id))
	if err != nil {
		return storeError(err, "activities")
	}
	return c.JSON(http.StatusOK, activities)
}
