package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a person or organization a user represents
type Client struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ClientUUID is an external reference independent of the store-assigned ID
	ClientUUID string `gorm:"type:uuid;uniqueIndex;not null" json:"client_uuid"`

	Name          string `gorm:"not null" json:"name"`
	ContactNumber string `gorm:"size:20" json:"contact_number"`
	Email         string `json:"email"`
	Address       string `gorm:"type:text" json:"address"`

	// Owner relationship
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook to generate the external client UUID
func (cl *Client) BeforeCreate(tx *gorm.DB) error {
	if cl.ClientUUID == "" {
		cl.ClientUUID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "clients"
}
