package services

import (
	"context"
	"time"

	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"
	"petbnb_backend/internal/services/dto"
	"petbnb_backend/pkg/apperrors"
)

// commissionRate is the platform's cut of completed booking amounts.
const commissionRate = 0.10

type StatsService interface {
	UserStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error)
	CaregiverStats(ctx context.Context, userID string) (*dto.CaregiverStatsResponse, error)
	Earnings(ctx context.Context, userID string) (*dto.EarningsResponse, error)
	BookingStats(ctx context.Context, userID string) (*dto.BookingStatsResponse, error)
}

type StatsServiceImpl struct {
	bookingRepo   repositories.BookingRepository
	petRepo       repositories.PetRepository
	caregiverRepo repositories.CaregiverRepository
	userRepo      repositories.UserRepository
}

func NewStatsService(
	bookingRepo repositories.BookingRepository,
	petRepo repositories.PetRepository,
	caregiverRepo repositories.CaregiverRepository,
	userRepo repositories.UserRepository,
) StatsService {
	return &StatsServiceImpl{
		bookingRepo:   bookingRepo,
		petRepo:       petRepo,
		caregiverRepo: caregiverRepo,
		userRepo:      userRepo,
	}
}

func (s *StatsServiceImpl) UserStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error) {
	bookings, err := s.bookingRepo.FindByParticipant(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.UserStatsResponse{TotalBookings: int64(len(bookings))}
	for i := range bookings {
		b := &bookings[i]
		switch b.BookingStatus {
		case models.BookingStatusCompleted:
			stats.CompletedBookings++
			if b.PetOwnerID == userID {
				stats.TotalSpent += b.TotalAmount
			}
		case models.BookingStatusCancelled:
			stats.CancelledBookings++
		case models.BookingStatusPending, models.BookingStatusConfirmed:
			stats.UpcomingBookings++
		}
	}

	pets, err := s.petRepo.FindActiveByOwner(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.TotalPets = len(pets)

	return stats, nil
}

func (s *StatsServiceImpl) CaregiverStats(ctx context.Context, userID string) (*dto.CaregiverStatsResponse, error) {
	profile, err := s.caregiverRepo.FindProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	total, err := s.bookingRepo.CountByCaregiver(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	completed, err := s.bookingRepo.CountByCaregiverAndStatus(userID, models.BookingStatusCompleted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pending, err := s.bookingRepo.CountByCaregiverAndStatus(userID, models.BookingStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	confirmed, err := s.bookingRepo.CountByCaregiverAndStatus(userID, models.BookingStatusConfirmed)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	inProgress, err := s.bookingRepo.CountByCaregiverAndStatus(userID, models.BookingStatusInProgress)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responded, err := s.bookingRepo.CountRespondedByCaregiver(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	earnings, err := s.bookingRepo.SumCompletedAmountByCaregiver(userID, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.CaregiverStatsResponse{
		TotalBookings:     total,
		CompletedBookings: completed,
		PendingBookings:   pending,
		Rating:            profile.Rating,
		TotalReviews:      profile.TotalReviews,
		TotalEarnings:     earnings,
	}
	if total > 0 {
		stats.ResponseRate = rate(responded, total)
		stats.AcceptanceRate = rate(confirmed+inProgress+completed, total)
	}

	return stats, nil
}

func (s *StatsServiceImpl) Earnings(ctx context.Context, userID string) (*dto.EarningsResponse, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)

	total, err := s.bookingRepo.SumCompletedAmountByCaregiver(userID, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	month, err := s.bookingRepo.SumCompletedAmountByCaregiver(userID, &monthStart)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	week, err := s.bookingRepo.SumCompletedAmountByCaregiver(userID, &weekStart)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	fee := roundMoney(total * commissionRate)
	return &dto.EarningsResponse{
		TotalEarnings:  total,
		MonthEarnings:  month,
		WeekEarnings:   week,
		PlatformFee:    fee,
		NetEarnings:    roundMoney(total - fee),
		CommissionRate: commissionRate,
	}, nil
}

func (s *StatsServiceImpl) BookingStats(ctx context.Context, userID string) (*dto.BookingStatsResponse, error) {
	bookings, err := s.bookingRepo.FindByParticipant(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.BookingStatsResponse{
		Total:    int64(len(bookings)),
		ByStatus: make(map[string]int64),
	}
	for i := range bookings {
		status := string(bookings[i].BookingStatus)
		stats.ByStatus[status]++
		if bookings[i].BookingStatus == models.BookingStatusInProgress {
			stats.InProgress++
		}
	}

	return stats, nil
}

func rate(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math100(float64(part) / float64(total))
}

// math100 rounds a ratio to two decimal places.
func math100(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
