package booking

import (
	"context"
	"time"

	blackoutRepo "afspraak/database/repository/blackout"
	bookingRepo "afspraak/database/repository/booking"
	messageRepo "afspraak/database/repository/message"
	"afspraak/models"
	"afspraak/services/notification"

	"github.com/go-redis/redis/v8"
)

// BookingInput is a visitor's booking request as validated input.
type BookingInput struct {
	Date            string         `json:"date"`
	StartTime       string         `json:"startTime"`
	DurationMinutes models.Minutes `json:"durationMinutes"`
	Contact         models.Contact `json:"contact"`
	AppointmentType string         `json:"appointmentType"`
	Notes           string         `json:"notes"`
}

// ReminderScheduler schedules a reminder push ahead of an appointment.
type ReminderScheduler interface {
	Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// BookingService is the public surface of the booking engine plus its thin
// lifecycle orchestration.
type BookingService interface {
	ListOffers(ctx context.Context, date string, duration int) ([]models.SlotOffer, error)
	MonthAvailability(ctx context.Context, year int, month time.Month) ([]models.DayAvailability, error)
	ProposeBooking(ctx context.Context, input BookingInput) (string, error)
	CancelByEmail(ctx context.Context, email, reason string) (bool, error)
	SaveContactMessage(ctx context.Context, msg *models.Message) (string, error)

	InitiateSession(ctx context.Context, date string, duration int) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, sessionID, startTime string) (*models.BookingSession, error)
	ConfirmSession(ctx context.Context, sessionID string, contact models.Contact, appointmentType, notes string) (string, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	BookingRepo  bookingRepo.BookingRepository
	BlackoutRepo blackoutRepo.BlackoutRepository
	MessageRepo  messageRepo.MessageRepository
	Engine       Engine
	SessionCache *redis.Client
	SessionTTL   time.Duration

	// Optional collaborators; both are best-effort and never fail a booking.
	Reminders ReminderScheduler
	Notifier  notification.NotificationService
}
