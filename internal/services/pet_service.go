package services

import (
	"context"
	"encoding/json"

	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"
	"petbnb_backend/internal/services/dto"
	"petbnb_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type PetService interface {
	Create(ctx context.Context, ownerID string, req *dto.CreatePetRequest) (*models.Pet, error)
	List(ctx context.Context, ownerID string) ([]models.Pet, error)
	Get(ctx context.Context, ownerID, petID string) (*models.Pet, error)
	Update(ctx context.Context, ownerID, petID string, req *dto.UpdatePetRequest) (*models.Pet, error)
	Delete(ctx context.Context, ownerID, petID string) error
	AddImage(ctx context.Context, ownerID, petID, imageURL string) (*models.Pet, error)
	RemoveImage(ctx context.Context, ownerID, petID string, index int) (*models.Pet, error)
	MedicalHistory(ctx context.Context, ownerID, petID string) (*dto.PetMedicalHistoryResponse, error)
	Stats(ctx context.Context, ownerID, petID string) (*dto.PetStatsResponse, error)
	Bookings(ctx context.Context, ownerID, petID string) (*dto.PetBookingsResponse, error)
}

type PetServiceImpl struct {
	petRepo     repositories.PetRepository
	userRepo    repositories.UserRepository
	bookingRepo repositories.BookingRepository
}

func NewPetService(
	petRepo repositories.PetRepository,
	userRepo repositories.UserRepository,
	bookingRepo repositories.BookingRepository,
) PetService {
	return &PetServiceImpl{
		petRepo:     petRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *PetServiceImpl) Create(ctx context.Context, ownerID string, req *dto.CreatePetRequest) (*models.Pet, error) {
	owner, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !owner.EmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	pet := &models.Pet{
		OwnerID:            ownerID,
		Name:               req.Name,
		Species:            req.Species,
		Breed:              req.Breed,
		Age:                req.Age,
		Weight:             req.Weight,
		Gender:             req.Gender,
		Description:        req.Description,
		Images:             datatypes.JSON([]byte("[]")),
		MedicalInfo:        toJSON(req.MedicalInfo),
		BehavioralNotes:    toJSON(req.BehavioralNotes),
		EmergencyContact:   toJSON(req.EmergencyContact),
		VaccinationRecords: toJSON(req.VaccinationRecords),
		SpecialNeeds:       toJSON(req.SpecialNeeds),
		IsActive:           true,
	}

	if err := s.petRepo.Create(pet); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pet, nil
}

func (s *PetServiceImpl) List(ctx context.Context, ownerID string) ([]models.Pet, error) {
	pets, err := s.petRepo.FindActiveByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pets, nil
}

func (s *PetServiceImpl) Get(ctx context.Context, ownerID, petID string) (*models.Pet, error) {
	return s.loadOwned(ownerID, petID)
}

func (s *PetServiceImpl) Update(ctx context.Context, ownerID, petID string, req *dto.UpdatePetRequest) (*models.Pet, error) {
	pet, err := s.loadOwned(ownerID, petID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		pet.Species = *req.Species
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Age != nil {
		pet.Age = *req.Age
	}
	if req.Weight != nil {
		pet.Weight = *req.Weight
	}
	if req.Gender != nil {
		pet.Gender = *req.Gender
	}
	if req.Description != nil {
		pet.Description = *req.Description
	}
	if req.MedicalInfo != nil {
		pet.MedicalInfo = toJSON(req.MedicalInfo)
	}
	if req.BehavioralNotes != nil {
		pet.BehavioralNotes = toJSON(req.BehavioralNotes)
	}
	if req.EmergencyContact != nil {
		pet.EmergencyContact = toJSON(req.EmergencyContact)
	}
	if req.VaccinationRecords != nil {
		pet.VaccinationRecords = toJSON(req.VaccinationRecords)
	}
	if req.SpecialNeeds != nil {
		pet.SpecialNeeds = toJSON(req.SpecialNeeds)
	}

	if err := s.petRepo.Update(pet); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pet, nil
}

// Delete deactivates the pet. Completed bookings keep their pet
// reference, so the row is never removed.
func (s *PetServiceImpl) Delete(ctx context.Context, ownerID, petID string) error {
	pet, err := s.loadOwned(ownerID, petID)
	if err != nil {
		return err
	}

	active, err := s.bookingRepo.CountActiveByPet(pet.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if active > 0 {
		return apperrors.ErrPetHasActiveBookings
	}

	if err := s.petRepo.Deactivate(pet.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PetServiceImpl) AddImage(ctx context.Context, ownerID, petID, imageURL string) (*models.Pet, error) {
	pet, err := s.loadOwned(ownerID, petID)
	if err != nil {
		return nil, err
	}

	images := decodeImages(pet.Images)
	images = append(images, imageURL)

	return s.saveImages(pet, images)
}

func (s *PetServiceImpl) RemoveImage(ctx context.Context, ownerID, petID string, index int) (*models.Pet, error) {
	pet, err := s.loadOwned(ownerID, petID)
	if err != nil {
		return nil, err
	}

	images := decodeImages(pet.Images)
	if index < 0 || index >= len(images) {
		return nil, apperrors.NewBadRequestError("Image index out of range")
	}
	images = append(images[:index], images[index+1:]...)

	return s.saveImages(pet, images)
}

func (s *PetServiceImpl) MedicalHistory(ctx context.Context, ownerID, petID string) (*dto.PetMedicalHistoryResponse, error) {
	pet, err := s.loadOwned(ownerID, petID)
	if err != nil {
		return nil, err
	}

	return &dto.PetMedicalHistoryResponse{
		PetID:              pet.ID,
		PetName:            pet.Name,
		MedicalInfo:        fromJSON(pet.MedicalInfo),
		VaccinationRecords: fromJSON(pet.VaccinationRecords),
		SpecialNeeds:       fromJSON(pet.SpecialNeeds),
		EmergencyContact:   fromJSON(pet.EmergencyContact),
	}, nil
}

func (s *PetServiceImpl) Stats(ctx context.Context, ownerID, petID string) (*dto.PetStatsResponse, error) {
	pet, err := s.loadOwned(ownerID, petID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.FindByPet(pet.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.PetStatsResponse{
		PetID:         pet.ID,
		PetName:       pet.Name,
		TotalBookings: len(bookings),
	}

	for i := range bookings {
		b := &bookings[i]
		switch b.BookingStatus {
		case models.BookingStatusCompleted:
			stats.CompletedBookings++
			stats.TotalSpent += b.TotalAmount
		case models.BookingStatusPending, models.BookingStatusConfirmed:
			stats.UpcomingBookings++
		}
		if stats.LastBookingDate == nil || b.StartDatetime.After(*stats.LastBookingDate) {
			t := b.StartDatetime
			stats.LastBookingDate = &t
		}
	}

	return stats, nil
}

func (s *PetServiceImpl) Bookings(ctx context.Context, ownerID, petID string) (*dto.PetBookingsResponse, error) {
	pet, err := s.loadOwned(ownerID, petID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.FindByPet(pet.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PetBookingsResponse{PetID: pet.ID, Bookings: bookings}, nil
}

func (s *PetServiceImpl) loadOwned(ownerID, petID string) (*models.Pet, error) {
	pet, err := s.petRepo.FindByID(petID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPetNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if pet.OwnerID != ownerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return pet, nil
}

func (s *PetServiceImpl) saveImages(pet *models.Pet, images []string) (*models.Pet, error) {
	encoded, err := json.Marshal(images)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pet.Images = datatypes.JSON(encoded)

	if err := s.petRepo.UpdateImages(pet.ID, pet.Images); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pet, nil
}

func decodeImages(raw datatypes.JSON) []string {
	var images []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &images)
	}
	if images == nil {
		images = []string{}
	}
	return images
}

func toJSON(m map[string]interface{}) datatypes.JSON {
	if m == nil {
		return nil
	}
	encoded, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return datatypes.JSON(encoded)
}

func fromJSON(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return map[string]interface{}{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return map[string]interface{}{}
	}
	return m
}
