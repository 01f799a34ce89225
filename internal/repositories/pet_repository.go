package repositories

import (
	"errors"
	"time"

	"petbnb_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrPetNotFound = errors.New("pet not found")

type PetRepository interface {
	Create(pet *models.Pet) error
	FindByID(id string) (*models.Pet, error)
	FindActiveByOwner(ownerID string) ([]models.Pet, error)
	Update(pet *models.Pet) error
	UpdateImages(petID string, images datatypes.JSON) error
	Deactivate(petID string) error
}

type PetRepositoryImpl struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) PetRepository {
	return &PetRepositoryImpl{db: db}
}

func (r *PetRepositoryImpl) Create(pet *models.Pet) error {
	return r.db.Create(pet).Error
}

func (r *PetRepositoryImpl) FindByID(id string) (*models.Pet, error) {
	var pet models.Pet
	err := r.db.First(&pet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (r *PetRepositoryImpl) FindActiveByOwner(ownerID string) ([]models.Pet, error) {
	var pets []models.Pet
	err := r.db.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at DESC").Find(&pets).Error
	return pets, err
}

func (r *PetRepositoryImpl) Update(pet *models.Pet) error {
	result := r.db.Model(pet).Updates(map[string]interface{}{
		"name":                pet.Name,
		"species":             pet.Species,
		"breed":               pet.Breed,
		"age":                 pet.Age,
		"weight":              pet.Weight,
		"gender":              pet.Gender,
		"description":         pet.Description,
		"medical_info":        pet.MedicalInfo,
		"behavioral_notes":    pet.BehavioralNotes,
		"emergency_contact":   pet.EmergencyContact,
		"vaccination_records": pet.VaccinationRecords,
		"special_needs":       pet.SpecialNeeds,
		"updated_at":          time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}

func (r *PetRepositoryImpl) UpdateImages(petID string, images datatypes.JSON) error {
	result := r.db.Model(&models.Pet{}).Where("id = ?", petID).Updates(map[string]interface{}{
		"images":     images,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}

// Deactivate is the soft delete, bookings keep their pet reference.
func (r *PetRepositoryImpl) Deactivate(petID string) error {
	result := r.db.Model(&models.Pet{}).Where("id = ?", petID).Updates(map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPetNotFound
	}
	return nil
}
