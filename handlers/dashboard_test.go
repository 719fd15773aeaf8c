package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/securecyberdata/legal-case-tracker/models"
	"github.com/securecyberdata/legal-case-tracker/store"
	"github.com/stretchr/testify/assert"
)

func TestGetDashboardStatsHandler(t *testing.T) {
	database := setupTestDB(t)
	user := createTestUser(t, database, "dash-stats@test.com")

	scope := store.New(database).Owner(user.ID)
	_, err := scope.CreateCase(&models.Case{CaseNumber: "DS-1", Title: "Active One", Status: models.CaseStatusActive})
	assert.NoError(t, err)
	_, err = scope.CreateCase(&models.Case{CaseNumber: "DS-2", Title: "Pending One", Status: models.CaseStatusPending})
	assert.NoError(t, err)
	_, err = scope.CreateClient(&models.Client{Name: "Stat Client"})
	assert.NoError(t, err)

	_, c, rec := setupEcho(http.MethodGet, "/api/dashboard/stats", nil)
	c.Set("user", user)

	assert.NoError(t, GetDashboardStatsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats store.DashboardStats
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.TotalCases)
	assert.Equal(t, int64(1), stats.ActiveCases)
	assert.Equal(t, int64(1), stats.TotalClients)
	assert.Len(t, stats.CasesByStatus, 2)
}

func TestGetDashboardRecentHandler(t *testing.T) {
	database := setupTestDB(t)
	user := createTestUser(t, database, "dash-recent@test.com")

	scope := store.New(database).Owner(user.ID)
	caseRecord, err := scope.CreateCase(&models.Case{CaseNumber: "DR-1", Title: "Recent Case"})
	assert.NoError(t, err)
	_, err = scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: time.Now().AddDate(0, 0, 3)})
	assert.NoError(t, err)
	_, err = scope.RecordActivity("created_case", models.CaseRef(caseRecord.ID), "Created case DR-1")
	assert.NoError(t, err)

	_, c, rec := setupEcho(http.MethodGet, "/api/dashboard/recent", nil)
	c.Set("user", user)

	assert.NoError(t, GetDashboardRecentHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	var cases []models.Case
	assert.NoError(t, json.Unmarshal(resp["recent_cases"], &cases))
	assert.Len(t, cases, 1)

	var hearings []models.Hearing
	assert.NoError(t, json.Unmarshal(resp["upcoming_hearings"], &hearings))
	assert.Len(t, hearings, 1)

	var activities []models.Activity
	assert.NoError(t, json.Unmarshal(resp["recent_activities"], &activities))
	assert.Len(t, activities, 1)
}

func TestGetActivitiesHandler(t *testing.T) {
	database := setupTestDB(t)
	user := createTestUser(t, database, "activities@test.com")

	scope := store.New(database).Owner(user.ID)
	for i := 0; i < 3; i++ {
		_, err := scope.RecordActivity("created_case", models.CaseRef(uint(i+1)), "entry")
		assert.NoError(t, err)
	}

	_, c, rec := setupEcho(http.MethodGet, "/api/activities?limit=2", nil)
	c.Set("user", user)

	assert.NoError(t, GetActivitiesHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var activities []models.Activity
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities))
	assert.Len(t, activities, 2)
}
