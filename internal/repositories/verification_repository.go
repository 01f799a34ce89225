package repositories

import (
	"errors"
	"time"

	"petbnb_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTokenNotFound          = errors.New("verification token not found")
	ErrIDVerificationNotFound = errors.New("id verification not found")
)

type VerificationRepository interface {
	// Email verification tokens
	CreateToken(token *models.VerificationToken) error
	FindToken(token string) (*models.VerificationToken, error)
	MarkTokenUsed(id string, verifiedAt time.Time) error
	DeleteExpiredTokens(before time.Time) (int64, error)

	// ID verification submissions
	CreateIDVerification(v *models.IDVerification) error
	FindIDVerificationByID(id string) (*models.IDVerification, error)
	FindLatestIDVerificationByUser(userID string) (*models.IDVerification, error)
	UpdateIDVerification(v *models.IDVerification) error
}

type VerificationRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &VerificationRepositoryImpl{db: db}
}

func (r *VerificationRepositoryImpl) CreateToken(token *models.VerificationToken) error {
	return r.db.Create(token).Error
}

func (r *VerificationRepositoryImpl) FindToken(token string) (*models.VerificationToken, error) {
	var t models.VerificationToken
	err := r.db.First(&t, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *VerificationRepositoryImpl) MarkTokenUsed(id string, verifiedAt time.Time) error {
	result := r.db.Model(&models.VerificationToken{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_used":     true,
		"verified_at": verifiedAt,
		"updated_at":  time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}

func (r *VerificationRepositoryImpl) DeleteExpiredTokens(before time.Time) (int64, error) {
	result := r.db.Where("expires_at < ? AND is_used = ?", before, false).
		Delete(&models.VerificationToken{})
	return result.RowsAffected, result.Error
}

func (r *VerificationRepositoryImpl) CreateIDVerification(v *models.IDVerification) error {
	return r.db.Create(v).Error
}

func (r *VerificationRepositoryImpl) FindIDVerificationByID(id string) (*models.IDVerification, error) {
	var v models.IDVerification
	err := r.db.First(&v, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIDVerificationNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VerificationRepositoryImpl) FindLatestIDVerificationByUser(userID string) (*models.IDVerification, error) {
	var v models.IDVerification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIDVerificationNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VerificationRepositoryImpl) UpdateIDVerification(v *models.IDVerification) error {
	result := r.db.Model(v).Updates(map[string]interface{}{
		"status":      v.Status,
		"admin_notes": v.AdminNotes,
		"verified_at": v.VerifiedAt,
		"verified_by": v.VerifiedBy,
		"updated_at":  time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIDVerificationNotFound
	}
	return nil
}
