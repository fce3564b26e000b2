package admin

import (
	"context"

	blackoutRepo "afspraak/database/repository/blackout"
	bookingRepo "afspraak/database/repository/booking"
	messageRepo "afspraak/database/repository/message"
	"afspraak/models"

	"github.com/go-redis/redis/v8"
)

// AdminService is the elevated surface: credentials, booking inspection and
// deletion, blackout management, message review.
type AdminService interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	RevokeToken(ctx context.Context, token string) error

	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error

	CreateBlackoutRule(ctx context.Context, rule *models.BlackoutRule) (string, error)
	ListBlackoutRules(ctx context.Context) ([]models.BlackoutRule, error)
	DeleteBlackoutRule(ctx context.Context, id string) error

	ListMessages(ctx context.Context) ([]models.Message, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	BookingRepo  bookingRepo.BookingRepository
	BlackoutRepo blackoutRepo.BlackoutRepository
	MessageRepo  messageRepo.MessageRepository
	AuthCache    *redis.Client
}
