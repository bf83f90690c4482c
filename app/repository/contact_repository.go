package repository

import (
	"github.com/vantascaling/website/app/models"
	"gorm.io/gorm"
)

// contactRepository implements the ContactRepository interface
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository instance
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact message
func (r *contactRepository) Create(contact *models.ContactMessage) error {
	return r.db.Create(contact).Error
}

// List returns all contact messages, newest first
func (r *contactRepository) List() ([]models.ContactMessage, error) {
	var contacts []models.ContactMessage
	err := r.db.Order("created_at DESC, id DESC").Find(&contacts).Error
	return contacts, err
}

// Count returns the number of stored contact messages
func (r *contactRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}
