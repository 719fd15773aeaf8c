// Package store is the data-access layer: an owner-scoped repository over
// cases, clients, hearings, and the activity log. A Scope carries the owning
// user's id and applies it to every query it builds, so callers cannot
// forget the ownership filter.
package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrForbidden indicates the record exists but belongs to another user
	ErrForbidden = errors.New("record belongs to another user")
)

// Store wraps the database handle and hands out per-owner scopes
type Store struct {
	db *gorm.DB
}

// New creates a Store backed by the given database
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Owner returns a scope whose queries are all filtered by the given user id
func (s *Store) Owner(userID string) *Scope {
	return &Scope{db: s.db, userID: userID}
}

// Scope is the owner-scoped repository surface
type Scope struct {
	db     *gorm.DB
	userID string
}

// UserID returns the owning user id this scope was built for
func (s *Scope) UserID() string {
	return s.userID
}

// scoped returns a query filtered to the scope's owner
func (s *Scope) scoped() *gorm.DB {
	return s.db.Where("user_id = ?", s.userID)
}

// owns reports whether a row's owner matches this scope
func (s *Scope) owns(rowUserID string) bool {
	return rowUserID == s.userID
}

// startOfDay truncates a time to midnight in its own location
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// todayUTC is the day boundary used for every date comparison. Hearing
// dates are stored as UTC midnights, so "today" must be the UTC day or a
// host west of UTC would treat today's hearings as past.
func todayUTC() time.Time {
	return startOfDay(time.Now().UTC())
}
