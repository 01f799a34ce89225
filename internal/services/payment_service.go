package services

import (
	"context"
	"encoding/json"

	"petbnb_backend/internal/logger"
	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"
	"petbnb_backend/internal/services/dto"
	"petbnb_backend/pkg/apperrors"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"
	"gorm.io/datatypes"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, userID string, req *dto.CreateIntentRequest) (*dto.CreateIntentResponse, error)
	ListByBooking(ctx context.Context, userID, bookingID string) ([]models.PaymentTransaction, error)
}

type PaymentServiceImpl struct {
	paymentRepo repositories.PaymentRepository
	bookingRepo repositories.BookingRepository
	currency    string
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	bookingRepo repositories.BookingRepository,
	stripeSecretKey string,
	currency string,
) PaymentService {
	stripe.Key = stripeSecretKey
	if currency == "" {
		currency = "sgd"
	}
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		currency:    currency,
	}
}

// CreateIntent opens a Stripe payment intent for the booking amount
// and records the transaction locally.
func (s *PaymentServiceImpl) CreateIntent(ctx context.Context, userID string, req *dto.CreateIntentRequest) (*dto.CreateIntentResponse, error) {
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

	// Stripe amounts are integral minor units.
	amountCents := int64(booking.TotalAmount * 100)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(s.currency),
	}
	params.AddMetadata("booking_id", booking.ID)
	params.AddMetadata("user_id", userID)

	intent, err := paymentintent.New(params)
	if err != nil {
		logger.CtxWithError(ctx, "stripe payment intent creation failed", err, "booking_id", booking.ID)
		return nil, apperrors.ErrPaymentProvider.WithError(err)
	}

	metadata, _ := json.Marshal(map[string]string{"booking_id": booking.ID})
	tx := &models.PaymentTransaction{
		BookingID:       booking.ID,
		UserID:          userID,
		PaymentIntentID: intent.ID,
		Amount:          booking.TotalAmount,
		Currency:        s.currency,
		Status:          models.PaymentStatusPending,
		Metadata:        datatypes.JSON(metadata),
	}
	if err := s.paymentRepo.Create(tx); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          booking.TotalAmount,
		Currency:        s.currency,
	}, nil
}

func (s *PaymentServiceImpl) ListByBooking(ctx context.Context, userID, bookingID string) ([]models.PaymentTransaction, error) {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !booking.IsParticipant(userID) {
		return nil, apperrors.ErrBookingNotParticipant
	}

	transactions, err := s.paymentRepo.FindByBooking(booking.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return transactions, nil
}
