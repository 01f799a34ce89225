package models

type User struct {
	BaseModel
	Email           string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string   `gorm:"not null" json:"-"`
	FirstName       string   `gorm:"not null" json:"first_name"`
	LastName        string   `gorm:"not null" json:"last_name"`
	Phone           string   `json:"phone"`
	Role            UserRole `gorm:"type:varchar(20);not null" json:"role"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	Address         string   `json:"address,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	IsActive        bool     `gorm:"default:true" json:"is_active"`
	EmailVerified   bool     `gorm:"default:false" json:"email_verified"`
	OAuthProvider   string   `json:"-"`
	OAuthID         string   `json:"-"`

	// Relations
	CaregiverProfile *CaregiverProfile `gorm:"foreignKey:UserID" json:"caregiver_profile,omitempty"`
	Pets             []Pet             `gorm:"foreignKey:OwnerID" json:"-"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HasCoordinates reports whether the user can participate in location search.
func (u *User) HasCoordinates() bool {
	return u.Latitude != nil && u.Longitude != nil
}
