package services

import (
	"context"
	"encoding/json"
	"time"

	"petbnb_backend/internal/email"
	"petbnb_backend/internal/logger"
	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"
	"petbnb_backend/internal/services/dto"
	"petbnb_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type BookingService interface {
	Create(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*models.Booking, error)
	List(ctx context.Context, userID string) ([]models.Booking, error)
	ListByStatus(ctx context.Context, userID string, status string) ([]models.Booking, error)
	Get(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	Details(ctx context.Context, userID, bookingID string) (*dto.BookingDetailsResponse, error)
	Timeline(ctx context.Context, userID, bookingID string) (*dto.BookingTimelineResponse, error)
	Upcoming(ctx context.Context, userID string) ([]models.Booking, error)
	History(ctx context.Context, userID string) ([]models.Booking, error)

	UpdateStatus(ctx context.Context, userID, bookingID string, status models.BookingStatus) (*models.Booking, error)
	Confirm(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	Reject(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	Start(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	Complete(ctx context.Context, userID, bookingID string, req *dto.CompleteBookingRequest) (*models.Booking, error)
	Cancel(ctx context.Context, userID, bookingID string) (*models.Booking, error)
}

type BookingServiceImpl struct {
	bookingRepo   repositories.BookingRepository
	petRepo       repositories.PetRepository
	caregiverRepo repositories.CaregiverRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	petRepo repositories.PetRepository,
	caregiverRepo repositories.CaregiverRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo:   bookingRepo,
		petRepo:       petRepo,
		caregiverRepo: caregiverRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *BookingServiceImpl) Create(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*models.Booking, error) {
	owner, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !owner.EmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	pet, err := s.petRepo.FindByID(req.PetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPetNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if pet.OwnerID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if !pet.IsActive {
		return nil, apperrors.NewBadRequestError("Pet is no longer active")
	}

	service, err := s.caregiverRepo.FindServiceByID(req.ServiceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !service.IsActive {
		return nil, apperrors.NewBadRequestError("Service is not available")
	}
	if service.CaregiverID == userID {
		return nil, apperrors.NewBadRequestError("Cannot book your own service")
	}

	booking := &models.Booking{
		PetOwnerID:          userID,
		CaregiverID:         service.CaregiverID,
		PetID:               pet.ID,
		ServiceID:           service.ID,
		StartDatetime:       req.StartDatetime,
		EndDatetime:         req.EndDatetime,
		BookingStatus:       models.BookingStatusPending,
		PaymentStatus:       models.PaymentStatusPending,
		TotalAmount:         bookingTotal(service, req.StartDatetime, req.EndDatetime),
		SpecialRequirements: req.SpecialRequirements,
		CompletionPhotos:    datatypes.JSON([]byte("[]")),
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyStatusChange(ctx, booking, service.Title)
	return booking, nil
}

func (s *BookingServiceImpl) List(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.FindByParticipant(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

func (s *BookingServiceImpl) ListByStatus(ctx context.Context, userID string, status string) ([]models.Booking, error) {
	switch status {
	case "", "all":
		return s.List(ctx, userID)
	case "upcoming":
		return s.Upcoming(ctx, userID)
	case string(models.BookingStatusCancelled):
		// The cancelled filter also covers caregiver-rejected bookings.
		bookings, err := s.bookingRepo.FindCancelledOrRejected(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return bookings, nil
	}

	parsed := models.BookingStatus(status)
	if !parsed.Valid() {
		return nil, apperrors.NewBadRequestError("Unknown booking status: " + status)
	}

	bookings, err := s.bookingRepo.FindByParticipantAndStatus(userID, parsed)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

func (s *BookingServiceImpl) Get(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	return s.loadForParticipant(userID, bookingID)
}

func (s *BookingServiceImpl) Details(ctx context.Context, userID, bookingID string) (*dto.BookingDetailsResponse, error) {
	booking, err := s.loadForParticipant(userID, bookingID)
	if err != nil {
		return nil, err
	}

	resp := &dto.BookingDetailsResponse{Booking: booking}

	if pet, err := s.petRepo.FindByID(booking.PetID); err == nil {
		resp.Pet = pet
	}
	if service, err := s.caregiverRepo.FindServiceByID(booking.ServiceID); err == nil {
		resp.Service = service
	}
	if owner, err := s.userRepo.FindByID(booking.PetOwnerID); err == nil {
		resp.PetOwner = dto.NewUserResponse(owner)
	}
	if caregiver, err := s.userRepo.FindByID(booking.CaregiverID); err == nil {
		resp.Caregiver = dto.NewUserResponse(caregiver)
	}

	return resp, nil
}

func (s *BookingServiceImpl) Timeline(ctx context.Context, userID, bookingID string) (*dto.BookingTimelineResponse, error) {
	booking, err := s.loadForParticipant(userID, bookingID)
	if err != nil {
		return nil, err
	}
	return buildTimeline(booking), nil
}

func (s *BookingServiceImpl) Upcoming(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.FindUpcoming(userID, time.Now())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

func (s *BookingServiceImpl) History(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.FindHistory(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

// UpdateStatus applies a single lifecycle transition after checking the
// edge is legal and the caller is allowed to take it.
func (s *BookingServiceImpl) UpdateStatus(ctx context.Context, userID, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	return s.transition(ctx, userID, bookingID, status, nil)
}

func (s *BookingServiceImpl) Confirm(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, userID, bookingID, models.BookingStatusConfirmed, nil)
}

func (s *BookingServiceImpl) Reject(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, userID, bookingID, models.BookingStatusRejected, nil)
}

func (s *BookingServiceImpl) Start(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, userID, bookingID, models.BookingStatusInProgress, nil)
}

func (s *BookingServiceImpl) Complete(ctx context.Context, userID, bookingID string, req *dto.CompleteBookingRequest) (*models.Booking, error) {
	return s.transition(ctx, userID, bookingID, models.BookingStatusCompleted, req)
}

func (s *BookingServiceImpl) Cancel(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, userID, bookingID, models.BookingStatusCancelled, nil)
}

func (s *BookingServiceImpl) transition(ctx context.Context, userID, bookingID string, target models.BookingStatus, completion *dto.CompleteBookingRequest) (*models.Booking, error) {
	booking, err := s.loadForParticipant(userID, bookingID)
	if err != nil {
		return nil, err
	}

	if target == models.BookingStatusCancelled && booking.BookingStatus == models.BookingStatusCompleted {
		return nil, apperrors.ErrCancelCompletedBooking
	}

	if !transitionAllowed(booking.BookingStatus, target) {
		return nil, apperrors.ErrInvalidBookingTransition.WithDetails(map[string]interface{}{
			"from": string(booking.BookingStatus),
			"to":   string(target),
		})
	}

	if caregiverOnlyStatuses[target] && booking.CaregiverID != userID {
		return nil, apperrors.ErrBookingNotActionable
	}

	if target == models.BookingStatusInProgress && !canStartService(booking.StartDatetime, time.Now()) {
		return nil, apperrors.ErrServiceStartTooEarly
	}

	booking.BookingStatus = target
	if target == models.BookingStatusCompleted {
		// Completion settles the booking on the payment side as well.
		booking.PaymentStatus = models.PaymentStatusCompleted
		if completion != nil {
			booking.ServiceNotes = completion.ServiceNotes
			if completion.CompletionPhotos != nil {
				photos, err := json.Marshal(completion.CompletionPhotos)
				if err == nil {
					booking.CompletionPhotos = datatypes.JSON(photos)
				}
			}
		}
	}

	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	serviceTitle := ""
	if service, err := s.caregiverRepo.FindServiceByID(booking.ServiceID); err == nil {
		serviceTitle = service.Title
	}
	s.notifyStatusChange(ctx, booking, serviceTitle)

	return booking, nil
}

func (s *BookingServiceImpl) loadForParticipant(userID, bookingID string) (*models.Booking, error) {
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

// bookingTotal prices a booking as the service base price times the
// booked duration in hours, with a one hour minimum.
func bookingTotal(service *models.CaregiverService, start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	if hours < 1 {
		hours = 1
	}
	return roundMoney(service.BasePrice * hours)
}

func roundMoney(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func buildTimeline(booking *models.Booking) *dto.BookingTimelineResponse {
	events := []dto.TimelineEvent{{
		Status:    string(models.BookingStatusPending),
		Label:     "Booking requested",
		Timestamp: booking.CreatedAt,
	}}

	current := booking.BookingStatus
	for _, status := range impliedTimeline(current) {
		event := dto.TimelineEvent{
			Status:    string(status),
			Label:     timelineLabel(status),
			Timestamp: booking.UpdatedAt,
		}
		if status == current {
			event.Description = booking.ServiceNotes
		}
		events = append(events, event)
	}

	return &dto.BookingTimelineResponse{
		BookingID: booking.ID,
		Status:    string(current),
		Events:    events,
	}
}

// impliedTimeline lists the lifecycle steps a booking must have passed
// through to reach its current status, in order.
func impliedTimeline(current models.BookingStatus) []models.BookingStatus {
	switch current {
	case models.BookingStatusConfirmed:
		return []models.BookingStatus{models.BookingStatusConfirmed}
	case models.BookingStatusInProgress:
		return []models.BookingStatus{
			models.BookingStatusConfirmed,
			models.BookingStatusInProgress,
		}
	case models.BookingStatusCompleted:
		return []models.BookingStatus{
			models.BookingStatusConfirmed,
			models.BookingStatusInProgress,
			models.BookingStatusCompleted,
		}
	case models.BookingStatusCancelled, models.BookingStatusRejected:
		return []models.BookingStatus{current}
	}
	return nil
}

func timelineLabel(status models.BookingStatus) string {
	switch status {
	case models.BookingStatusConfirmed:
		return "Booking confirmed"
	case models.BookingStatusRejected:
		return "Booking rejected"
	case models.BookingStatusInProgress:
		return "Service started"
	case models.BookingStatusCompleted:
		return "Service completed"
	case models.BookingStatusCancelled:
		return "Booking cancelled"
	default:
		return string(status)
	}
}

func (s *BookingServiceImpl) notifyStatusChange(ctx context.Context, booking *models.Booking, serviceTitle string) {
	if s.emailProvider == nil {
		return
	}

	recipients := make([]string, 0, 2)
	names := make(map[string]string)
	for _, id := range []string{booking.PetOwnerID, booking.CaregiverID} {
		if user, err := s.userRepo.FindByID(id); err == nil {
			recipients = append(recipients, user.Email)
			names[user.Email] = user.FirstName
		}
	}

	status := booking.BookingStatus
	start := booking.StartDatetime
	end := booking.EndDatetime
	notes := booking.ServiceNotes

	go func() {
		for _, to := range recipients {
			data := email.TemplateData{
				"FirstName":    names[to],
				"ServiceTitle": serviceTitle,
				"Status":       string(status),
				"StartTime":    start.Format(time.RFC1123),
				"EndTime":      end.Format(time.RFC1123),
				"Notes":        notes,
			}
			if err := s.emailProvider.SendTemplate([]string{to}, "Booking update: "+string(status), "booking_status", data); err != nil {
				logger.Error("failed to send booking status email", "error", err, "booking_id", booking.ID)
			}
		}
	}()
}
