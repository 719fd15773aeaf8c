package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/securecyberdata/legal-case-tracker/models"
)

// GenerateHearingICS generates an ICS file for a hearing so it can be added
// to an external calendar. The hearing's Case relation must be loaded.
func GenerateHearingICS(hearing *models.Hearing) []byte {
	// Format dates for ICS (YYYYMMDDTHHMMSSZ)
	dateFormat := "20060102T150405Z"
	dtStamp := time.Now().UTC().Format(dateFormat)

	start := hearing.HearingDate
	// A hearing without a time-of-day is an all-day event starting at the
	// stored date; with one, overlay the HH:MM onto the date
	if hhmm, err := time.Parse("15:04", hearing.HearingTime); err == nil {
		start = time.Date(start.Year(), start.Month(), start.Day(),
			hhmm.Hour(), hhmm.Minute(), 0, 0, start.Location())
	}
	end := start.Add(time.Hour)

	summary := fmt.Sprintf("Hearing: %s", hearing.Case.Title)
	description := fmt.Sprintf("Case %s", hearing.Case.CaseNumber)
	if hearing.Case.CourtName != "" {
		description += fmt.Sprintf(" at %s", hearing.Case.CourtName)
	}
	if hearing.Notes != "" {
		description += "\\n\\nNotes: " + escapeICS(hearing.Notes)
	}

	const icsTemplate = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//LegalCaseTracker//Hearing//EN
CALSCALE:GREGORIAN
METHOD:PUBLISH
BEGIN:VEVENT
UID:hearing-%d
DTSTAMP:%s
DTSTART:%s
DTEND:%s
SUMMARY:%s
DESCRIPTION:%s
STATUS:CONFIRMED
END:VEVENT
END:VCALENDAR`

	icsContent := fmt.Sprintf(icsTemplate,
		hearing.ID,
		dtStamp,
		start.UTC().Format(dateFormat),
		end.UTC().Format(dateFormat),
		escapeICS(summary),
		description,
	)

	return []byte(icsContent)
}

// escapeICS escapes the text characters the ICS grammar reserves
func escapeICS(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
