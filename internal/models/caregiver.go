package models

import "gorm.io/datatypes"

type CaregiverProfile struct {
	BaseModel
	UserID                  string               `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Bio                     string               `json:"bio,omitempty"`
	ExperienceYears         int                  `json:"experience_years"`
	HourlyRate              float64              `json:"hourly_rate"`
	Certifications          datatypes.JSON       `gorm:"type:jsonb;default:'[]'" json:"certifications"`
	AvailabilitySchedule    datatypes.JSON       `gorm:"type:jsonb" json:"availability_schedule,omitempty"`
	ServiceArea             datatypes.JSON       `gorm:"type:jsonb" json:"service_area,omitempty"`
	PortfolioImages         datatypes.JSON       `gorm:"type:jsonb;default:'[]'" json:"portfolio_images"`
	Rating                  float64              `gorm:"default:0" json:"rating"`
	TotalReviews            int                  `gorm:"default:0" json:"total_reviews"`
	BackgroundCheckVerified bool                 `gorm:"default:false" json:"background_check_verified"`
	IDVerificationStatus    IDVerificationStatus `gorm:"type:varchar(20);default:'not_submitted'" json:"id_verification_status"`
	IsAvailable             bool                 `gorm:"default:true" json:"is_available"`
	InsuranceInfo           datatypes.JSON       `gorm:"type:jsonb" json:"insurance_info,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type CaregiverService struct {
	BaseModel
	CaregiverID       string      `gorm:"type:uuid;not null;index" json:"caregiver_id"`
	ServiceType       ServiceType `gorm:"type:varchar(30);not null" json:"service_type"`
	Title             string      `gorm:"not null" json:"title"`
	Description       string      `json:"description,omitempty"`
	BasePrice         float64     `gorm:"not null" json:"base_price"`
	DurationMinutes   int         `json:"duration_minutes"`
	MaxPets           int         `gorm:"default:1" json:"max_pets"`
	ServiceAreaRadius float64     `gorm:"default:10" json:"service_area_radius"`
	IsActive          bool        `gorm:"default:true" json:"is_active"`

	Caregiver *User `gorm:"foreignKey:CaregiverID" json:"-"`
}
