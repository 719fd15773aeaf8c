package store

import (
	"testing"

	"github.com/securecyberdata/legal-case-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestRecordActivity(t *testing.T) {
	database := setupTestDB(t)
	user := createTestUser(t, database, "activity@test.com")
	scope := New(database).Owner(user.ID)

	t.Run("Records a typed entry", func(t *testing.T) {
		activity, err := scope.RecordActivity("created_case", models.CaseRef(42), "Created case CR-42")
		assert.NoError(t, err)
		assert.NotZero(t, activity.ID)
		assert.Equal(t, models.EntityCase, activity.EntityType)
		assert.Equal(t, uint(42), activity.EntityID)
		assert.Equal(t, user.ID, activity.UserID)
	})

	t.Run("Rejects an unknown entity type", func(t *testing.T) {
		_, err := scope.RecordActivity("weird", models.EntityRef{Type: "widget", ID: 1}, "")
		assert.Error(t, err)
	})

	t.Run("Entries are immutable", func(t *testing.T) {
		activity, err := scope.RecordActivity("created_client", models.ClientRef(7), "Added client")
		assert.NoError(t, err)

		err = database.Model(activity).Update("details", "tampered").Error
		assert.Error(t, err)

		err = database.Delete(activity).Error
		assert.Error(t, err)

		var count int64
		database.Model(&models.Activity{}).Where("id = ?", activity.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestActivityFeeds(t *testing.T) {
	database := setupTestDB(t)
	user := createTestUser(t, database, "feed@test.com")
	scope := New(database).Owner(user.ID)

	refs := []models.EntityRef{models.CaseRef(1), models.CaseRef(1), models.HearingRef(2), models.ClientRef(3)}
	for i, ref := range refs {
		_, err := scope.RecordActivity("action", ref, string(rune('a'+i)))
		assert.NoError(t, err)
	}

	t.Run("Recent returns newest first with limit", func(t *testing.T) {
		activities, err := scope.RecentActivities(2)
		assert.NoError(t, err)
		assert.Len(t, activities, 2)
		assert.Equal(t, "d", activities[0].Details)
		assert.Equal(t, "c", activities[1].Details)
	})

	t.Run("ActivitiesFor filters by entity", func(t *testing.T) {
		activities, err := scope.ActivitiesFor(models.CaseRef(1))
		assert.NoError(t, err)
		assert.Len(t, activities, 2)

		activities, err = scope.ActivitiesFor(models.HearingRef(2))
		assert.NoError(t, err)
		assert.Len(t, activities, 1)
	})

	t.Run("Feed is owner-scoped", func(t *testing.T) {
		other := createTestUser(t, database, "other-feed@test.com")
		activities, err := New(database).Owner(other.ID).RecentActivities(10)
		assert.NoError(t, err)
		assert.Empty(t, activities)
	})
}
