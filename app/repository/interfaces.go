package repository

import (
	"github.com/vantascaling/website/app/models"
)

// ContactRepository defines the interface for contact-related database operations
type ContactRepository interface {
	Create(contact *models.ContactMessage) error
	List() ([]models.ContactMessage, error)
	Count() (int64, error)
}

// AppointmentRepository defines the interface for appointment-related database operations
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	List() ([]models.Appointment, error)
	Count() (int64, error)
}

// PurchaseRepository defines the interface for purchase-related database operations
type PurchaseRepository interface {
	Create(purchase *models.Purchase) error
	GetBySessionID(sessionID string) (*models.Purchase, error)
	MarkCompleted(sessionID, customerEmail string) (*models.Purchase, error)
	List() ([]models.Purchase, error)
	Count() (int64, error)
}

// Repositories bundles all repository instances
type Repositories struct {
	Contact     ContactRepository
	Appointment AppointmentRepository
	Purchase    PurchaseRepository
}
