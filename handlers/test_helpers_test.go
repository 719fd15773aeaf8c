package handlers

import (
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/securecyberdata/legal-case-tracker/config"
	"github.com/securecyberdata/legal-case-tracker/db"
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

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

func createTestUser(t *testing.T, database *gorm.DB, email string) *models.User {
	user := &models.User{
		Email:     email,
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
	}
	assert.NoError(t, database.Create(user).Error)
	return user
}

// jsonUint renders a uint the way it appears in JSON bodies and paths
func jsonUint(u uint) string {
	return strconv.FormatUint(uint64(u), 10)
}

// httpErrorCode extracts the status code from an echo.HTTPError
func httpErrorCode(t *testing.T, err error) int {
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok, "expected *echo.HTTPError, got %T: %v", err, err)
	if !ok {
		return 0
	}
	return httpErr.Code
}

func assertHTTPError(t *testing.T, err error, code int) {
	assert.Equal(t, code, httpErrorCode(t, err))
}
