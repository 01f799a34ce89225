package repositories

import (
	"petbnb_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByBooking(bookingID string) ([]models.Message, error)
	MarkRead(bookingID, receiverID string) error
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindByBooking returns the conversation in chronological order.
func (r *MessageRepositoryImpl) FindByBooking(bookingID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("booking_id = ?", bookingID).
		Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) MarkRead(bookingID, receiverID string) error {
	return r.db.Model(&models.Message{}).
		Where("booking_id = ? AND receiver_id = ? AND is_read = ?", bookingID, receiverID, false).
		Update("is_read", true).Error
}
