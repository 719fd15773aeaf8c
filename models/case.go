package models

import (
	"time"
)

// Case status constants
const (
	CaseStatusPending   = "Pending"
	CaseStatusActive    = "Active"
	CaseStatusScheduled = "Scheduled"
	CaseStatusAdjourned = "Adjourned"
	CaseStatusClosed    = "Closed"
	CaseStatusUrgent    = "Urgent"
)

// Case represents a legal case tracked by a user
type Case struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Case identification
	CaseNumber        string `gorm:"not null;index" json:"case_number"`
	ApplicationNumber string `json:"application_number,omitempty"`
	FIRNumber         string `json:"fir_number,omitempty"`
	Title             string `gorm:"not null" json:"title"`
	Description       string `gorm:"type:text" json:"description"`

	// Parties
	PlaintiffName string `json:"plaintiff_name"`
	DefendantName string `json:"defendant_name"`

	// Court
	CourtName string `json:"court_name"`
	CourtType string `json:"court_type"`

	// Status and dates
	Status          string     `gorm:"not null;default:Pending;index:idx_case_user_status" json:"status"`
	FilingDate      *time.Time `json:"filing_date,omitempty"`
	NextHearingDate *time.Time `json:"next_hearing_date,omitempty"` // Cached from hearings, see store.refreshNextHearing

	// Client relationship (optional)
	ClientID *uint   `gorm:"index" json:"client_id,omitempty"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	// Owner relationship
	UserID string `gorm:"type:uuid;not null;index:idx_case_user_status;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	// Relationships
	Hearings []Hearing `gorm:"foreignKey:CaseID" json:"hearings,omitempty"`
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// IsClosed checks if the case is closed
func (c *Case) IsClosed() bool {
	return c.Status == CaseStatusClosed
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	validStatuses := []string{
		CaseStatusPending,
		CaseStatusActive,
		CaseStatusScheduled,
		CaseStatusAdjourned,
		CaseStatusClosed,
		CaseStatusUrgent,
	}
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}
