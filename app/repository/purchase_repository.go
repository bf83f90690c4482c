package repository

import (
	"github.com/vantascaling/website/app/models"
	"gorm.io/gorm"
)

// purchaseRepository implements the PurchaseRepository interface
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create inserts a new purchase row
func (r *purchaseRepository) Create(purchase *models.Purchase) error {
	return r.db.Create(purchase).Error
}

// GetBySessionID resolves a checkout session identifier to its purchase row
func (r *purchaseRepository) GetBySessionID(sessionID string) (*models.Purchase, error) {
	var purchase models.Purchase
	err := r.db.Where("stripe_session_id = ?", sessionID).First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// MarkCompleted flips the purchase for the given session to completed and
// stores the confirmed payer email. The pending -> completed transition is
// enforced by the model; a purchase that is already completed is returned
// unchanged together with models.ErrPurchaseAlreadyCompleted.
func (r *purchaseRepository) MarkCompleted(sessionID, customerEmail string) (*models.Purchase, error) {
	purchase, err := r.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if err := purchase.MarkCompleted(customerEmail); err != nil {
		return purchase, err
	}
	err = r.db.Model(purchase).
		Updates(map[string]any{"status": purchase.Status, "customer_email": purchase.CustomerEmail}).Error
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// List returns all purchases, newest first
func (r *purchaseRepository) List() ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Order("created_at DESC, id DESC").Find(&purchases).Error
	return purchases, err
}

// Count returns the number of stored purchases
func (r *purchaseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Purchase{}).Count(&count).Error
	return count, err
}
