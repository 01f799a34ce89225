package services

import (
	"context"
	"math"

	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"
	"petbnb_backend/internal/services/dto"
	"petbnb_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(ctx context.Context, userID string, req *dto.CreateReviewRequest) (*models.Review, error)
	ListByCaregiver(ctx context.Context, caregiverID string) ([]models.Review, error)
}

type ReviewServiceImpl struct {
	reviewRepo    repositories.ReviewRepository
	bookingRepo   repositories.BookingRepository
	caregiverRepo repositories.CaregiverRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	bookingRepo repositories.BookingRepository,
	caregiverRepo repositories.CaregiverRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:    reviewRepo,
		bookingRepo:   bookingRepo,
		caregiverRepo: caregiverRepo,
	}
}

// Create records a review for a completed booking by one of its
// participants, then recomputes the caregiver's aggregate rating.
func (s *ReviewServiceImpl) Create(ctx context.Context, userID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	booking, err := s.bookingRepo.FindByID(req.BookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !booking.IsParticipant(userID) {
		return nil, apperrors.ErrBookingNotParticipant
	}
	if booking.BookingStatus != models.BookingStatusCompleted {
		return nil, apperrors.ErrBookingNotCompleted
	}

	if _, err := s.reviewRepo.FindByBookingID(booking.ID); err == nil {
		return nil, apperrors.ErrReviewAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrReviewNotFound) {
		return nil, apperrors.InternalError(err)
	}

	revieweeID := booking.CaregiverID
	if userID == booking.CaregiverID {
		revieweeID = booking.PetOwnerID
	}

	review := &models.Review{
		BookingID:   booking.ID,
		ReviewerID:  userID,
		RevieweeID:  revieweeID,
		CaregiverID: booking.CaregiverID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		IsVisible:   true,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.recomputeCaregiverRating(booking.CaregiverID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return review, nil
}

func (s *ReviewServiceImpl) ListByCaregiver(ctx context.Context, caregiverID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindByCaregiver(caregiverID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}

func (s *ReviewServiceImpl) recomputeCaregiverRating(caregiverID string) error {
	reviews, err := s.reviewRepo.FindByCaregiver(caregiverID)
	if err != nil {
		return err
	}

	rating := meanRating(reviews)
	return s.caregiverRepo.UpdateRating(caregiverID, rating, len(reviews))
}

// meanRating averages review scores rounded to one decimal place.
func meanRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for i := range reviews {
		sum += reviews[i].Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}
