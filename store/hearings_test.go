package store

import (
	"testing"
	"time"

	"github.com/securecyberdata/legal-case-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateHearingUpdatesCase(t *testing.T) {
	database := setupTestDB(t)
	user := createTestUser(t, database, "hearings@test.com")
	scope := New(database).Owner(user.ID)

	t.Run("Sets next hearing date and marks case scheduled", func(t *testing.T) {
		caseRecord, err := scope.CreateCase(&models.Case{
			CaseNumber: "H-1",
			Title:      "Hearing Case",
			Status:     models.CaseStatusPending,
		})
		assert.NoError(t, err)

		hearingDate := daysFromNow(5)
		hearing, err := scope.CreateHearing(&models.Hearing{
			CaseID:      caseRecord.ID,
			HearingDate: hearingDate,
		})
		assert.NoError(t, err)
		assert.Equal(t, models.HearingStatusScheduled, hearing.Status)

		fetched, err := scope.GetCase(caseRecord.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.CaseStatusScheduled, fetched.Status)
		assert.NotNil(t, fetched.NextHearingDate)
		assert.True(t, fetched.NextHearingDate.Equal(hearingDate))
	})

	t.Run("Next hearing date is the chronologically nearest upcoming one", func(t *testing.T) {
		caseRecord, err := scope.CreateCase(&models.Case{CaseNumber: "H-2", Title: "Two Hearings"})
		assert.NoError(t, err)

		far := daysFromNow(30)
		near := daysFromNow(10)

		_, err = scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: far})
		assert.NoError(t, err)
		_, err = scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: near})
		assert.NoError(t, err)

		fetched, err := scope.GetCase(caseRecord.ID)
		assert.NoError(t, err)
		assert.True(t, fetched.NextHearingDate.Equal(near))
	})

	t.Run("Past-only hearings keep the most recent past date", func(t *testing.T) {
		caseRecord, err := scope.CreateCase(&models.Case{CaseNumber: "H-3", Title: "Past Hearings"})
		assert.NoError(t, err)

		older := daysFromNow(-20)
		recent := daysFromNow(-5)
		_, err = scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: older})
		assert.NoError(t, err)
		_, err = scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: recent})
		assert.NoError(t, err)

		fetched, err := scope.GetCase(caseRecord.ID)
		assert.NoError(t, err)
		assert.True(t, fetched.NextHearingDate.Equal(recent))
	})

	t.Run("Rejects a case owned by another user", func(t *testing.T) {
		other := createTestUser(t, database, "other-hearings@test.com")
		otherCase, err := New(database).Owner(other.ID).CreateCase(&models.Case{CaseNumber: "X-1", Title: "Foreign"})
		assert.NoError(t, err)

		_, err = scope.CreateHearing(&models.Hearing{CaseID: otherCase.ID, HearingDate: daysFromNow(1)})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Rejects an unknown case", func(t *testing.T) {
		_, err := scope.CreateHearing(&models.Hearing{CaseID: 99999, HearingDate: daysFromNow(1)})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateHearingRefreshesCase(t *testing.T) {
	database := setupTestDB(t)
	user := createTestUser(t, database, "hearing-update@test.com")
	scope := New(database).Owner(user.ID)

	caseRecord, err := scope.CreateCase(&models.Case{CaseNumber: "HU-1", Title: "Update Case"})
	assert.NoError(t, err)
	hearing, err := scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: daysFromNow(7)})
	assert.NoError(t, err)

	t.Run("Date change refreshes the cached next hearing date", func(t *testing.T) {
		newDate := daysFromNow(3)
		_, err := scope.UpdateHearing(hearing.ID, HearingParams{HearingDate: &newDate})
		assert.NoError(t, err)

		fetched, err := scope.GetCase(caseRecord.ID)
		assert.NoError(t, err)
		assert.True(t, fetched.NextHearingDate.Equal(newDate))
	})

	t.Run("Non-date change leaves the cached date alone", func(t *testing.T) {
		before, err := scope.GetCase(caseRecord.ID)
		assert.NoError(t, err)

		_, err = scope.UpdateHearing(hearing.ID, HearingParams{Notes: stringToPtr("Bring exhibits")})
		assert.NoError(t, err)

		after, err := scope.GetCase(caseRecord.ID)
		assert.NoError(t, err)
		assert.True(t, after.NextHearingDate.Equal(*before.NextHearingDate))

		updated, err := scope.GetHearing(hearing.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Bring exhibits", updated.Notes)
	})
}

func TestDeleteHearingRefreshesCase(t *testing.T) {
	database := setupTestDB(t)
	user := createTestUser(t, database, "hearing-delete@test.com")
	scope := New(database).Owner(user.ID)

	caseRecord, err := scope.CreateCase(&models.Case{CaseNumber: "HD-1", Title: "Delete Case"})
	assert.NoError(t, err)

	near := daysFromNow(2)
	far := daysFromNow(9)
	nearHearing, err := scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: near})
	assert.NoError(t, err)
	_, err = scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: far})
	assert.NoError(t, err)

	t.Run("Deleting the nearest hearing promotes the next one", func(t *testing.T) {
		assert.NoError(t, scope.DeleteHearing(nearHearing.ID))

		fetched, err := scope.GetCase(caseRecord.ID)
		assert.NoError(t, err)
		assert.True(t, fetched.NextHearingDate.Equal(far))
	})

	t.Run("Deleting the last hearing clears the cached date", func(t *testing.T) {
		hearings, err := scope.ListHearings()
		assert.NoError(t, err)
		assert.Len(t, hearings, 1)

		assert.NoError(t, scope.DeleteHearing(hearings[0].ID))

		fetched, err := scope.GetCase(caseRecord.ID)
		assert.NoError(t, err)
		assert.Nil(t, fetched.NextHearingDate)
	})

	t.Run("Delete on an already-deleted hearing reports not found", func(t *testing.T) {
		assert.ErrorIs(t, scope.DeleteHearing(nearHearing.ID), ErrNotFound)
	})
}

func TestHearingOrdering(t *testing.T) {
	database := setupTestDB(t)
	user := createTestUser(t, database, "hearing-order@test.com")
	scope := New(database).Owner(user.ID)

	caseRecord, err := scope.CreateCase(&models.Case{CaseNumber: "HO-1", Title: "Order Case"})
	assert.NoError(t, err)

	dates := []time.Time{daysFromNow(15), daysFromNow(1), daysFromNow(-3)}
	for _, d := range dates {
		_, err := scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: d})
		assert.NoError(t, err)
	}

	t.Run("List is ordered soonest first", func(t *testing.T) {
		hearings, err := scope.ListHearings()
		assert.NoError(t, err)
		assert.Len(t, hearings, 3)
		assert.True(t, hearings[0].HearingDate.Before(hearings[1].HearingDate))
		assert.True(t, hearings[1].HearingDate.Before(hearings[2].HearingDate))
	})

	t.Run("Upcoming excludes past hearings and honors the limit", func(t *testing.T) {
		hearings, err := scope.UpcomingHearings(10)
		assert.NoError(t, err)
		assert.Len(t, hearings, 2)

		limited, err := scope.UpcomingHearings(1)
		assert.NoError(t, err)
		assert.Len(t, limited, 1)
		assert.True(t, limited[0].HearingDate.Equal(daysFromNow(1)))
	})

	t.Run("HearingsBetween honors the range", func(t *testing.T) {
		hearings, err := scope.HearingsBetween(daysFromNow(0), daysFromNow(7))
		assert.NoError(t, err)
		assert.Len(t, hearings, 1)
		assert.True(t, hearings[0].HearingDate.Equal(daysFromNow(1)))
	})
}

func TestTodayHearingOnNonUTCHost(t *testing.T) {
	forceLocalZone(t, -5)

	database := setupTestDB(t)
	user := createTestUser(t, database, "hearing-tz@test.com")
	scope := New(database).Owner(user.ID)

	caseRecord, err := scope.CreateCase(&models.Case{CaseNumber: "HZ-1", Title: "Zone Case"})
	assert.NoError(t, err)

	// Same UTC-midnight value a date string produces on ingress
	today, err := time.Parse("2006-01-02", time.Now().UTC().Format("2006-01-02"))
	assert.NoError(t, err)
	_, err = scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: today})
	assert.NoError(t, err)

	t.Run("Counts as upcoming", func(t *testing.T) {
		hearings, err := scope.UpcomingHearings(10)
		assert.NoError(t, err)
		assert.Len(t, hearings, 1)
	})

	t.Run("Stays the cached next hearing date", func(t *testing.T) {
		fetched, err := scope.GetCase(caseRecord.ID)
		assert.NoError(t, err)
		assert.NotNil(t, fetched.NextHearingDate)
		assert.True(t, fetched.NextHearingDate.Equal(today))
	})

	t.Run("Survives a refresh from an unrelated delete", func(t *testing.T) {
		extra, err := scope.CreateHearing(&models.Hearing{CaseID: caseRecord.ID, HearingDate: daysFromNow(6)})
		assert.NoError(t, err)
		assert.NoError(t, scope.DeleteHearing(extra.ID))

		fetched, err := scope.GetCase(caseRecord.ID)
		assert.NoError(t, err)
		assert.True(t, fetched.NextHearingDate.Equal(today))
	})
}
