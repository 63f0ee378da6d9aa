package repository

import (
	"strings"

	"github.com/nekoniyah/velvetdream-website-2-0/pkg/models"
	"gorm.io/gorm"
)

// recentMessageLimit caps the admin inbox listing
const recentMessageLimit = 10

// ContactStore owns the contact form inbox
type ContactStore struct {
	db *gorm.DB
}

// NewContactStore creates a contact store on an existing handle
func NewContactStore(db *gorm.DB) *ContactStore {
	return &ContactStore{db: db}
}

// CreateMessage stores a contact form submission and returns its id
func (s *ContactStore) CreateMessage(name, email, message string) (uint, error) {
	if strings.TrimSpace(name) == "" {
		return 0, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(email) == "" {
		return 0, &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if strings.TrimSpace(message) == "" {
		return 0, &ValidationError{Field: "message", Reason: "must not be empty"}
	}

	msg := models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return 0, &StorageError{Op: "create contact message", Err: err}
	}
	return msg.ID, nil
}

// ListRecentMessages returns the newest messages, capped at ten
func (s *ContactStore) ListRecentMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := s.db.Order("created_at DESC, id DESC").
		Limit(recentMessageLimit).
		Find(&messages).Error
	if err != nil {
		return nil, &StorageError{Op: "list contact messages", Err: err}
	}
	return messages, nil
}
