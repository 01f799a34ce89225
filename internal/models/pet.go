package models

import "gorm.io/datatypes"

type Pet struct {
	BaseModel
	OwnerID            string         `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name               string         `gorm:"not null" json:"name"`
	Species            string         `gorm:"not null" json:"species"`
	Breed              string         `json:"breed,omitempty"`
	Age                int            `json:"age"`
	Weight             float64        `json:"weight"`
	Gender             string         `json:"gender,omitempty"`
	Description        string         `json:"description,omitempty"`
	Images             datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	MedicalInfo        datatypes.JSON `gorm:"type:jsonb" json:"medical_info,omitempty"`
	BehavioralNotes    datatypes.JSON `gorm:"type:jsonb" json:"behavioral_notes,omitempty"`
	EmergencyContact   datatypes.JSON `gorm:"type:jsonb" json:"emergency_contact,omitempty"`
	VaccinationRecords datatypes.JSON `gorm:"type:jsonb" json:"vaccination_records,omitempty"`
	SpecialNeeds       datatypes.JSON `gorm:"type:jsonb" json:"special_needs,omitempty"`
	IsActive           bool           `gorm:"default:true" json:"is_active"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}
