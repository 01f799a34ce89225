package models

type Review struct {
	BaseModel
	BookingID   string `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	ReviewerID  string `gorm:"type:uuid;not null;index" json:"reviewer_id"`
	RevieweeID  string `gorm:"type:uuid;not null;index" json:"reviewee_id"`
	CaregiverID string `gorm:"type:uuid;not null;index" json:"caregiver_id"`
	Rating      int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment     string `json:"comment,omitempty"`
	Response    string `json:"response,omitempty"`
	IsVisible   bool   `gorm:"default:true" json:"is_visible"`

	// Relations
	Booking  *Booking `gorm:"foreignKey:BookingID" json:"-"`
	Reviewer *User    `gorm:"foreignKey:ReviewerID" json:"-"`
}
