package services

import (
	"context"

	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"
	"petbnb_backend/internal/services/dto"
	"petbnb_backend/pkg/apperrors"
)

type MessageService interface {
	Send(ctx context.Context, userID string, req *dto.SendMessageRequest) (*models.Message, error)
	ListByBooking(ctx context.Context, userID, bookingID string) ([]models.Message, error)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
	bookingRepo repositories.BookingRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	bookingRepo repositories.BookingRepository,
) MessageService {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		bookingRepo: bookingRepo,
	}
}

// Send delivers a message inside a booking conversation. The receiver
// is always the other participant.
func (s *MessageServiceImpl) Send(ctx context.Context, userID string, req *dto.SendMessageRequest) (*models.Message, error) {
	booking, err := s.loadForParticipant(userID, req.BookingID)
	if err != nil {
		return nil, err
	}

	receiverID := booking.CaregiverID
	if userID == booking.CaregiverID {
		receiverID = booking.PetOwnerID
	}

	messageType := req.MessageType
	if messageType == "" {
		messageType = models.MessageTypeText
	}

	message := &models.Message{
		BookingID:     booking.ID,
		SenderID:      userID,
		ReceiverID:    receiverID,
		Content:       req.Content,
		MessageType:   messageType,
		AttachmentURL: req.AttachmentURL,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

// ListByBooking returns the conversation oldest first and marks the
// caller's unread messages as read.
func (s *MessageServiceImpl) ListByBooking(ctx context.Context, userID, bookingID string) ([]models.Message, error) {
	booking, err := s.loadForParticipant(userID, bookingID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByBooking(booking.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.messageRepo.MarkRead(booking.ID, userID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return messages, nil
}

func (s *MessageServiceImpl) loadForParticipant(userID, bookingID string) (*models.Booking, error) {
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
	return booking, nil
}
