package models

import (
	"time"
)

// HearingStatusScheduled is the default status for a new hearing.
// Hearing status is free-form otherwise (e.g. "Completed", "Adjourned").
const HearingStatusScheduled = "Scheduled"

// Hearing represents a scheduled court hearing for a case
type Hearing struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Parent case relationship (required)
	CaseID uint `gorm:"not null;index" json:"case_id"`
	Case   Case `gorm:"foreignKey:CaseID" json:"-"`

	HearingDate time.Time `gorm:"not null;index" json:"hearing_date"`
	HearingTime string    `gorm:"size:20" json:"hearing_time,omitempty"` // Optional HH:MM display string
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	Status      string    `gorm:"not null;default:Scheduled" json:"status"`

	// Owner relationship
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Hearing model
func (Hearing) TableName() string {
	return "hearings"
}
