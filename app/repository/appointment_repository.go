package repository

import (
	"github.com/vantascaling/website/app/models"
	"gorm.io/gorm"
)

// appointmentRepository implements the AppointmentRepository interface
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository instance
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create inserts a new appointment
func (r *appointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// List returns all appointments, newest first
func (r *appointmentRepository) List() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Order("created_at DESC, id DESC").Find(&appointments).Error
	return appointments, err
}

// Count returns the number of stored appointments
func (r *appointmentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Count(&count).Error
	return count, err
}
