package repository

import (
	"github.com/unboundhq/unbound-backend/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(payment *models.Payment) (*models.Payment, error) {
	result := r.db.Create(payment)
	if result.Error != nil {
		return nil, result.Error
	}
	return payment, nil
}

func (r *PaymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// GetByOrderID resolves a gateway callback to the tracked payment.
func (r *PaymentRepository) GetByOrderID(orderID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("razorpay_order_id = ?", orderID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) GetPaidByEvent(eventID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.
		Joins("JOIN event_registrations ON event_registrations.id = payments.registration_id").
		Where("event_registrations.event_id = ? AND LOWER(payments.status) = ?", eventID, "paid").
		Find(&payments).Error
	return payments, err
}
