package repositories

import (
	"errors"
	"time"

	"petbnb_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("caregiver profile not found")
	ErrServiceNotFound = errors.New("caregiver service not found")
)

type CaregiverRepository interface {
	// Profile operations
	CreateProfile(profile *models.CaregiverProfile) error
	FindProfileByUserID(userID string) (*models.CaregiverProfile, error)
	UpdateProfile(profile *models.CaregiverProfile) error
	UpdateRating(userID string, rating float64, totalReviews int) error
	UpdateIDVerificationStatus(userID string, status models.IDVerificationStatus) error

	// Service operations
	CreateService(service *models.CaregiverService) error
	FindServiceByID(id string) (*models.CaregiverService, error)
	FindServicesByCaregiver(caregiverID string) ([]models.CaregiverService, error)
	FindActiveServices() ([]models.CaregiverService, error)
	UpdateService(service *models.CaregiverService) error
}

type CaregiverRepositoryImpl struct {
	db *gorm.DB
}

func NewCaregiverRepository(db *gorm.DB) CaregiverRepository {
	return &CaregiverRepositoryImpl{db: db}
}

// Profile operations

func (r *CaregiverRepositoryImpl) CreateProfile(profile *models.CaregiverProfile) error {
	return r.db.Create(profile).Error
}

func (r *CaregiverRepositoryImpl) FindProfileByUserID(userID string) (*models.CaregiverProfile, error) {
	var profile models.CaregiverProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CaregiverRepositoryImpl) UpdateProfile(profile *models.CaregiverProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"bio":                   profile.Bio,
		"experience_years":      profile.ExperienceYears,
		"hourly_rate":           profile.HourlyRate,
		"certifications":        profile.Certifications,
		"availability_schedule": profile.AvailabilitySchedule,
		"service_area":          profile.ServiceArea,
		"portfolio_images":      profile.PortfolioImages,
		"is_available":          profile.IsAvailable,
		"insurance_info":        profile.InsuranceInfo,
		"updated_at":            time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *CaregiverRepositoryImpl) UpdateRating(userID string, rating float64, totalReviews int) error {
	result := r.db.Model(&models.CaregiverProfile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"rating":        rating,
		"total_reviews": totalReviews,
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *CaregiverRepositoryImpl) UpdateIDVerificationStatus(userID string, status models.IDVerificationStatus) error {
	result := r.db.Model(&models.CaregiverProfile{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"id_verification_status": status,
		"updated_at":             time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Service operations

func (r *CaregiverRepositoryImpl) CreateService(service *models.CaregiverService) error {
	return r.db.Create(service).Error
}

func (r *CaregiverRepositoryImpl) FindServiceByID(id string) (*models.CaregiverService, error) {
	var service models.CaregiverService
	err := r.db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *CaregiverRepositoryImpl) FindServicesByCaregiver(caregiverID string) ([]models.CaregiverService, error) {
	var services []models.CaregiverService
	err := r.db.Where("caregiver_id = ?", caregiverID).
		Order("created_at DESC").Find(&services).Error
	return services, err
}

func (r *CaregiverRepositoryImpl) FindActiveServices() ([]models.CaregiverService, error) {
	var services []models.CaregiverService
	err := r.db.Where("is_active = ?", true).Find(&services).Error
	return services, err
}

func (r *CaregiverRepositoryImpl) UpdateService(service *models.CaregiverService) error {
	result := r.db.Model(service).Updates(map[string]interface{}{
		"service_type":        service.ServiceType,
		"title":               service.Title,
		"description":         service.Description,
		"base_price":          service.BasePrice,
		"duration_minutes":    service.DurationMinutes,
		"max_pets":            service.MaxPets,
		"service_area_radius": service.ServiceAreaRadius,
		"is_active":           service.IsActive,
		"updated_at":          time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
