package models

import (
	"time"

	"gorm.io/gorm"
)

// EntityType identifies which kind of record an activity refers to
type EntityType string

const (
	EntityCase    EntityType = "case"
	EntityClient  EntityType = "client"
	EntityHearing EntityType = "hearing"
)

// IsValidEntityType checks if the entity type is one of the known kinds
func IsValidEntityType(t EntityType) bool {
	switch t {
	case EntityCase, EntityClient, EntityHearing:
		return true
	}
	return false
}

// EntityRef is a typed reference to the record an activity describes.
// Constructing one through CaseRef/ClientRef/HearingRef keeps the
// (type, id) pair consistent instead of passing loose strings around.
type EntityRef struct {
	Type EntityType
	ID   uint
}

// CaseRef returns a reference to a case
func CaseRef(id uint) EntityRef { return EntityRef{Type: EntityCase, ID: id} }

// ClientRef returns a reference to a client
func ClientRef(id uint) EntityRef { return EntityRef{Type: EntityClient, ID: id} }

// HearingRef returns a reference to a hearing
func HearingRef(id uint) EntityRef { return EntityRef{Type: EntityHearing, ID: id} }

// Activity represents an immutable record of a data operation.
// Rows are append-only: updates and deletes are rejected by GORM hooks.
type Activity struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_activity_created_at" json:"created_at"`

	Action  string `gorm:"not null" json:"action"` // e.g. "created_case", "updated_hearing"
	Details string `gorm:"type:text" json:"details,omitempty"`

	// Target record (no foreign key; the target may be deleted later)
	EntityType EntityType `gorm:"not null;index:idx_activity_entity" json:"entity_type"`
	EntityID   uint       `gorm:"not null;index:idx_activity_entity" json:"entity_id"`

	// Owner relationship
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeUpdate prevents modification of activities (immutability)
func (a *Activity) BeforeUpdate(tx *gorm.DB) error {
	return gorm.ErrRecordNotFound // Prevent any updates
}

// BeforeDelete prevents deletion of activities (immutability)
func (a *Activity) BeforeDelete(tx *gorm.DB) error {
	return gorm.ErrRecordNotFound // Prevent any deletes
}

// TableName specifies the table name
func (Activity) TableName() string {
	return "activities"
}
