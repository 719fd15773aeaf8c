package store

import (
	"errors"
	"fmt"

	"github.com/securecyberdata/legal-case-tracker/models"
	"gorm.io/gorm"
)

// ClientParams carries the fields of a partial client update.
// Nil fields are left untouched.
type ClientParams struct {
	Name          *string
	ContactNumber *string
	Email         *string
	Address       *string
}

func (p ClientParams) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.ContactNumber != nil {
		updates["contact_number"] = *p.ContactNumber
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.Address != nil {
		updates["address"] = *p.Address
	}
	return updates
}

// ListClients returns the owner's clients, most recently updated first
func (s *Scope) ListClients() ([]models.Client, error) {
	var clients []models.Client
	err := s.scoped().
		Order("updated_at DESC").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// GetClient returns a single client by id. ErrNotFound if the row is absent,
// ErrForbidden if it belongs to another user.
func (s *Scope) GetClient(id uint) (*models.Client, error) {
	var client models.Client
	err := s.db.First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	if !s.owns(client.UserID) {
		return nil, ErrForbidden
	}
	return &client, nil
}

// SearchClients matches the query case-insensitively against name, email,
// and contact number. Results are ordered the same as ListClients.
func (s *Scope) SearchClients(query string) ([]models.Client, error) {
	pattern := "%" + query + "%"
	var clients []models.Client
	err := s.scoped().
		Where(
			s.db.Where("name LIKE ?", pattern).
				Or("email LIKE ?", pattern).
				Or("contact_number LIKE ?", pattern),
		).
		Order("updated_at DESC").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}

// CreateClient persists a new client for the scope's owner
func (s *Scope) CreateClient(client *models.Client) (*models.Client, error) {
	client.ID = 0
	client.UserID = s.userID
	if err := s.db.Create(client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// UpdateClient merges the provided fields into an existing client
func (s *Scope) UpdateClient(id uint, params ClientParams) (*models.Client, error) {
	client, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	updates := params.changes()
	if len(updates) == 0 {
		return client, nil
	}

	if err := s.db.Model(client).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// DeleteClient removes a client and detaches it from any cases that
// reference it. ErrNotFound if the client is already gone, ErrForbidden if
// it belongs to another user.
func (s *Scope) DeleteClient(id uint) error {
	client, err := s.GetClient(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Case{}).
			Where("client_id = ?", client.ID).
			Update("client_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach client from cases: %w", err)
		}
		if err := tx.Delete(client).Error; err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}
		return nil
	})
	return err
}
