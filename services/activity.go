package services

import (
	"log"

	"github.com/securecyberdata/legal-case-tracker/models"
	"github.com/securecyberdata/legal-case-tracker/store"
)

// RecordActivity appends an entry to the user's activity log after a
// mutating operation. A logging failure must not fail the request whose
// primary write already succeeded, so errors are logged and swallowed.
func RecordActivity(scope *store.Scope, action string, ref models.EntityRef, details string) {
	if _, err := scope.RecordActivity(action, ref, SanitizeText(details)); err != nil {
		log.Printf("[ACTIVITY] Failed to record %s for %s %d: %v", action, ref.Type, ref.ID, err)
	}
}
