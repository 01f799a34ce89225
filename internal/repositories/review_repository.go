package repositories

import (
	"errors"

	"petbnb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByBookingID(bookingID string) (*models.Review, error)
	FindByCaregiver(caregiverID string) ([]models.Review, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByBookingID(bookingID string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "booking_id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByCaregiver(caregiverID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("caregiver_id = ?", caregiverID).
		Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}
