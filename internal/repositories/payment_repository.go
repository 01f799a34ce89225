package repositories

import (
	"errors"
	"time"

	"petbnb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("payment transaction not found")

type PaymentRepository interface {
	Create(tx *models.PaymentTransaction) error
	FindByPaymentIntentID(intentID string) (*models.PaymentTransaction, error)
	FindByBooking(bookingID string) ([]models.PaymentTransaction, error)
	UpdateStatus(id string, status models.PaymentStatus) error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(tx *models.PaymentTransaction) error {
	return r.db.Create(tx).Error
}

func (r *PaymentRepositoryImpl) FindByPaymentIntentID(intentID string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := r.db.First(&tx, "payment_intent_id = ?", intentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *PaymentRepositoryImpl) FindByBooking(bookingID string) ([]models.PaymentTransaction, error) {
	var txs []models.PaymentTransaction
	err := r.db.Where("booking_id = ?", bookingID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

func (r *PaymentRepositoryImpl) UpdateStatus(id string, status models.PaymentStatus) error {
	result := r.db.Model(&models.PaymentTransaction{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
