package workers

import (
	"sync"
	"time"

	"petbnb_backend/internal/email"
	"petbnb_backend/internal/logger"
	"petbnb_backend/internal/models"
	"petbnb_backend/internal/repositories"

	"github.com/robfig/cron/v3"
)

// reminderLookahead is how far ahead of the start time the reminder
// email goes out.
const reminderLookahead = time.Hour

// ReminderWorker emails both booking participants shortly before a
// confirmed booking starts.
type ReminderWorker struct {
	bookingRepo   repositories.BookingRepository
	userRepo      repositories.UserRepository
	caregiverRepo repositories.CaregiverRepository
	emailProvider email.Provider
	schedule      string

	cron *cron.Cron

	mu       sync.Mutex
	notified map[string]time.Time
}

func NewReminderWorker(
	bookingRepo repositories.BookingRepository,
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	emailProvider email.Provider,
	schedule string,
) *ReminderWorker {
	return &ReminderWorker{
		bookingRepo:   bookingRepo,
		userRepo:      userRepo,
		caregiverRepo: caregiverRepo,
		emailProvider: emailProvider,
		schedule:      schedule,
		notified:      make(map[string]time.Time),
	}
}

func (w *ReminderWorker) Start() error {
	w.cron = cron.New()
	if _, err := w.cron.AddFunc(w.schedule, w.runOnce); err != nil {
		return err
	}
	w.cron.Start()
	logger.WorkerLog("reminder", "started", "schedule", w.schedule)
	return nil
}

func (w *ReminderWorker) Stop() {
	if w.cron != nil {
		w.cron.Stop()
	}
	logger.WorkerLog("reminder", "stopped")
}

func (w *ReminderWorker) runOnce() {
	now := time.Now()
	bookings, err := w.bookingRepo.FindConfirmedStartingBetween(now, now.Add(reminderLookahead))
	if err != nil {
		logger.WorkerLog("reminder", "query failed", "error", err)
		return
	}

	for i := range bookings {
		booking := &bookings[i]
		if w.alreadyNotified(booking.ID) {
			continue
		}
		w.sendReminders(booking)
		w.markNotified(booking.ID, now)
	}

	w.pruneNotified(now)
}

func (w *ReminderWorker) sendReminders(booking *models.Booking) {
	serviceTitle := "your booked service"
	if service, err := w.caregiverRepo.FindServiceByID(booking.ServiceID); err == nil {
		serviceTitle = service.Title
	}

	for _, userID := range []string{booking.PetOwnerID, booking.CaregiverID} {
		user, err := w.userRepo.FindByID(userID)
		if err != nil {
			logger.WorkerLog("reminder", "failed to load participant", "user_id", userID, "error", err)
			continue
		}

		data := email.TemplateData{
			"FirstName":    user.FirstName,
			"ServiceTitle": serviceTitle,
			"StartTime":    booking.StartDatetime.Format(time.RFC1123),
		}
		if err := w.emailProvider.SendTemplate([]string{user.Email}, "Your booking starts soon", "booking_reminder", data); err != nil {
			logger.WorkerLog("reminder", "failed to send email", "booking_id", booking.ID, "error", err)
		}
	}
}

func (w *ReminderWorker) alreadyNotified(bookingID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.notified[bookingID]
	return ok
}

func (w *ReminderWorker) markNotified(bookingID string, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.notified[bookingID] = at
}

// pruneNotified drops dedupe entries older than a day so the map does
// not grow forever.
func (w *ReminderWorker) pruneNotified(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, at := range w.notified {
		if now.Sub(at) > 24*time.Hour {
			delete(w.notified, id)
		}
	}
}
