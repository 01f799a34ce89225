package repositories

import (
	"errors"
	"time"

	"petbnb_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

// activeBookingStatuses are the states that block pet removal.
var activeBookingStatuses = []models.BookingStatus{
	models.BookingStatusPending,
	models.BookingStatusConfirmed,
	models.BookingStatusInProgress,
}

type BookingRepository interface {
	Create(booking *models.Booking) error
	FindByID(id string) (*models.Booking, error)
	FindByParticipant(userID string) ([]models.Booking, error)
	FindByParticipantAndStatus(userID string, status models.BookingStatus) ([]models.Booking, error)
	FindUpcoming(userID string, from time.Time) ([]models.Booking, error)
	FindCancelledOrRejected(userID string) ([]models.Booking, error)
	FindHistory(userID string) ([]models.Booking, error)
	FindByPet(petID string) ([]models.Booking, error)
	Update(booking *models.Booking) error
	CountActiveByPet(petID string) (int64, error)

	// Reminder worker
	FindConfirmedStartingBetween(from, to time.Time) ([]models.Booking, error)

	// Stats
	CountByParticipant(userID string) (int64, error)
	CountByCaregiverAndStatus(caregiverID string, status models.BookingStatus) (int64, error)
	CountByCaregiver(caregiverID string) (int64, error)
	CountRespondedByCaregiver(caregiverID string) (int64, error)
	SumCompletedAmountByCaregiver(caregiverID string, since *time.Time) (float64, error)
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByParticipant(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("pet_owner_id = ? OR caregiver_id = ?", userID, userID).
		Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindByParticipantAndStatus(userID string, status models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("(pet_owner_id = ? OR caregiver_id = ?) AND booking_status = ?", userID, userID, status).
		Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindUpcoming(userID string, from time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("(pet_owner_id = ? OR caregiver_id = ?) AND booking_status IN ? AND start_datetime >= ?",
		userID, userID, activeBookingStatuses, from).
		Order("start_datetime ASC").Find(&bookings).Error
	return bookings, err
}

// FindCancelledOrRejected backs the cancelled filter, which covers both
// terminal declines.
func (r *BookingRepositoryImpl) FindCancelledOrRejected(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("(pet_owner_id = ? OR caregiver_id = ?) AND booking_status IN ?",
		userID, userID,
		[]models.BookingStatus{models.BookingStatusCancelled, models.BookingStatusRejected}).
		Order("updated_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindHistory(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("(pet_owner_id = ? OR caregiver_id = ?) AND booking_status IN ?",
		userID, userID,
		[]models.BookingStatus{models.BookingStatusCompleted, models.BookingStatusCancelled, models.BookingStatusRejected}).
		Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindByPet(petID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("pet_id = ?", petID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) Update(booking *models.Booking) error {
	result := r.db.Model(booking).Updates(map[string]interface{}{
		"booking_status":    booking.BookingStatus,
		"payment_status":    booking.PaymentStatus,
		"service_notes":     booking.ServiceNotes,
		"completion_photos": booking.CompletionPhotos,
		"updated_at":        time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepositoryImpl) CountActiveByPet(petID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("pet_id = ? AND booking_status IN ?", petID, activeBookingStatuses).
		Count(&count).Error
	return count, err
}

func (r *BookingRepositoryImpl) FindConfirmedStartingBetween(from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("booking_status = ? AND start_datetime BETWEEN ? AND ?",
		models.BookingStatusConfirmed, from, to).Find(&bookings).Error
	return bookings, err
}

// Stats

func (r *BookingRepositoryImpl) CountByParticipant(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("pet_owner_id = ? OR caregiver_id = ?", userID, userID).
		Count(&count).Error
	return count, err
}

func (r *BookingRepositoryImpl) CountByCaregiverAndStatus(caregiverID string, status models.BookingStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("caregiver_id = ? AND booking_status = ?", caregiverID, status).
		Count(&count).Error
	return count, err
}

func (r *BookingRepositoryImpl) CountByCaregiver(caregiverID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("caregiver_id = ?", caregiverID).
		Count(&count).Error
	return count, err
}

// CountRespondedByCaregiver counts bookings the caregiver reacted to,
// anything that is no longer pending.
func (r *BookingRepositoryImpl) CountRespondedByCaregiver(caregiverID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("caregiver_id = ? AND booking_status <> ?", caregiverID, models.BookingStatusPending).
		Count(&count).Error
	return count, err
}

func (r *BookingRepositoryImpl) SumCompletedAmountByCaregiver(caregiverID string, since *time.Time) (float64, error) {
	var total float64
	query := r.db.Model(&models.Booking{}).
		Where("caregiver_id = ? AND booking_status = ?", caregiverID, models.BookingStatusCompleted)
	if since != nil {
		query = query.Where("updated_at >= ?", *since)
	}
	err := query.Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error
	return total, err
}
