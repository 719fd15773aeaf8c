package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/securecyberdata/legal-case-tracker/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Client{},
		&models.Case{},
		&models.Hearing{},
		&models.Activity{},
	)
	assert.NoError(t, err)

	return testDB
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	user := &models.User{
		Email:     email,
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
	}
	assert.NoError(t, db.Create(user).Error)
	return user
}

func stringToPtr(s string) *string {
	return &s
}

func uintToPtr(u uint) *uint {
	return &u
}

// daysFromNow builds dates in the same UTC-midnight frame hearing dates
// are stored in
func daysFromNow(days int) time.Time {
	return todayUTC().AddDate(0, 0, days)
}

// forceLocalZone pins time.Local for the duration of a test so date
// comparisons can be checked from a non-UTC host's point of view
func forceLocalZone(t *testing.T, offsetHours int) {
	prev := time.Local
	time.Local = time.FixedZone("test", offsetHours*3600)
	t.Cleanup(func() { time.Local = prev })
}
