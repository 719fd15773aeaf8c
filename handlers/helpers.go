package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/securecyberdata/legal-case-tracker/db"
	"github.com/securecyberdata/legal-case-tracker/middleware"
	"github.com/securecyberdata/legal-case-tracker/store"
)

// currentScope builds the owner-scoped repository for the authenticated user
func currentScope(c echo.Context) (*store.Scope, error) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return store.New(db.DB).Owner(user.ID), nil
}

// idParam parses the :id path parameter
func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}

// storeError maps store errors to HTTP status codes: ErrNotFound to 404,
// ErrForbidden to 403, anything else to a generic 500
func storeError(err error, resource string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, resource+" not found")
	case errors.Is(err, store.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "You do not have access to this "+resource)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to access "+resource)
	}
}

// limitParam parses an optional limit query parameter, clamped to [1, max]
func limitParam(c echo.Context, fallback, max int) int {
	limit := fallback
	if raw := c.QueryParam("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l > 0 {
			limit = l
		}
	}
	if limit > max {
		limit = max
	}
	return limit
}
