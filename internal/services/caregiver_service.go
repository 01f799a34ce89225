package services

import (
	"context"
	"time"

	"petbnb_backend/internal/auth"
	"petbnb_backend/internal/logger"
	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"
	"petbnb_backend/internal/services/dto"
	"petbnb_backend/pkg/apperrors"
)

type CaregiverService interface {
	CreateService(ctx context.Context, userID string, req *dto.CreateServiceRequest) (*models.CaregiverService, error)
	ListServices(ctx context.Context, userID string) ([]models.CaregiverService, error)
	UpdateService(ctx context.Context, userID, serviceID string, req *dto.UpdateServiceRequest) (*models.CaregiverService, error)

	SubmitIDVerification(ctx context.Context, userID string, req *dto.SubmitIDVerificationRequest) (*models.IDVerification, error)
	IDVerificationStatus(ctx context.Context, userID string) (*dto.IDVerificationStatusResponse, error)
	ReviewIDVerification(ctx context.Context, adminID, verificationID string, req *dto.ReviewIDVerificationRequest) (*models.IDVerification, error)
}

type CaregiverServiceImpl struct {
	caregiverRepo    repositories.CaregiverRepository
	userRepo         repositories.UserRepository
	verificationRepo repositories.VerificationRepository
}

func NewCaregiverService(
	caregiverRepo repositories.CaregiverRepository,
	userRepo repositories.UserRepository,
	verificationRepo repositories.VerificationRepository,
) CaregiverService {
	return &CaregiverServiceImpl{
		caregiverRepo:    caregiverRepo,
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
	}
}

func (s *CaregiverServiceImpl) CreateService(ctx context.Context, userID string, req *dto.CreateServiceRequest) (*models.CaregiverService, error) {
	user, profile, err := s.loadCaregiver(userID)
	if err != nil {
		return nil, err
	}

	if !user.EmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}
	if !auth.CanCreateServices(user, profile) {
		return nil, apperrors.ErrIDNotVerified
	}

	service := &models.CaregiverService{
		CaregiverID:       userID,
		ServiceType:       req.ServiceType,
		Title:             req.Title,
		Description:       req.Description,
		BasePrice:         req.BasePrice,
		DurationMinutes:   req.DurationMinutes,
		MaxPets:           req.MaxPets,
		ServiceAreaRadius: req.ServiceAreaRadius,
		IsActive:          true,
	}
	if service.MaxPets == 0 {
		service.MaxPets = 1
	}
	if service.ServiceAreaRadius == 0 {
		service.ServiceAreaRadius = 10
	}

	if err := s.caregiverRepo.CreateService(service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CaregiverServiceImpl) ListServices(ctx context.Context, userID string) ([]models.CaregiverService, error) {
	if _, _, err := s.loadCaregiver(userID); err != nil {
		return nil, err
	}

	services, err := s.caregiverRepo.FindServicesByCaregiver(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return services, nil
}

func (s *CaregiverServiceImpl) UpdateService(ctx context.Context, userID, serviceID string, req *dto.UpdateServiceRequest) (*models.CaregiverService, error) {
	service, err := s.caregiverRepo.FindServiceByID(serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if service.CaregiverID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.ServiceType != nil {
		service.ServiceType = *req.ServiceType
	}
	if req.Title != nil {
		service.Title = *req.Title
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.BasePrice != nil {
		service.BasePrice = *req.BasePrice
	}
	if req.DurationMinutes != nil {
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.MaxPets != nil {
		service.MaxPets = *req.MaxPets
	}
	if req.ServiceAreaRadius != nil {
		service.ServiceAreaRadius = *req.ServiceAreaRadius
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := s.caregiverRepo.UpdateService(service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CaregiverServiceImpl) SubmitIDVerification(ctx context.Context, userID string, req *dto.SubmitIDVerificationRequest) (*models.IDVerification, error) {
	user, profile, err := s.loadCaregiver(userID)
	if err != nil {
		return nil, err
	}

	if !auth.CanSubmitIDVerification(user) {
		return nil, apperrors.ErrEmailNotVerified
	}
	switch profile.IDVerificationStatus {
	case models.IDVerificationPending:
		return nil, apperrors.ErrInvalidOperation("verification", "ID verification is already under review")
	case models.IDVerificationApproved:
		return nil, apperrors.ErrInvalidOperation("verification", "ID verification is already approved")
	}

	verification := &models.IDVerification{
		UserID:        userID,
		DocumentType:  req.DocumentType,
		IDDocumentURL: req.IDDocumentURL,
		SelfieURL:     req.SelfieURL,
		Status:        models.IDVerificationPending,
	}

	if err := s.verificationRepo.CreateIDVerification(verification); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.caregiverRepo.UpdateIDVerificationStatus(userID, models.IDVerificationPending); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "id verification submitted", "user_id", userID, "document_type", string(req.DocumentType))
	return verification, nil
}

func (s *CaregiverServiceImpl) IDVerificationStatus(ctx context.Context, userID string) (*dto.IDVerificationStatusResponse, error) {
	if _, _, err := s.loadCaregiver(userID); err != nil {
		return nil, err
	}

	verification, err := s.verificationRepo.FindLatestIDVerificationByUser(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrIDVerificationNotFound) {
			return &dto.IDVerificationStatusResponse{Status: models.IDVerificationNotSubmitted}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	submitted := verification.CreatedAt
	return &dto.IDVerificationStatusResponse{
		Status:      verification.Status,
		SubmittedAt: &submitted,
		VerifiedAt:  verification.VerifiedAt,
		AdminNotes:  verification.AdminNotes,
	}, nil
}

func (s *CaregiverServiceImpl) ReviewIDVerification(ctx context.Context, adminID, verificationID string, req *dto.ReviewIDVerificationRequest) (*models.IDVerification, error) {
	verification, err := s.verificationRepo.FindIDVerificationByID(verificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrIDVerificationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if verification.Status != models.IDVerificationPending {
		return nil, apperrors.ErrInvalidStatus("verification", "submission has already been reviewed")
	}

	now := time.Now()
	if req.Approve {
		verification.Status = models.IDVerificationApproved
	} else {
		verification.Status = models.IDVerificationRejected
	}
	verification.AdminNotes = req.AdminNotes
	verification.VerifiedAt = &now
	verification.VerifiedBy = &adminID

	if err := s.verificationRepo.UpdateIDVerification(verification); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.caregiverRepo.UpdateIDVerificationStatus(verification.UserID, verification.Status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "id verification reviewed",
		"verification_id", verification.ID,
		"status", string(verification.Status),
		"reviewed_by", adminID,
	)
	return verification, nil
}

func (s *CaregiverServiceImpl) loadCaregiver(userID string) (*models.User, *models.CaregiverProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleCaregiver {
		return nil, nil, apperrors.ErrInsufficientPermissions
	}

	profile := user.CaregiverProfile
	if profile == nil {
		p, err := s.caregiverRepo.FindProfileByUserID(userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) {
				return nil, nil, apperrors.ErrNotFound(err)
			}
			return nil, nil, apperrors.InternalError(err)
		}
		profile = p
	}

	return user, profile, nil
}
