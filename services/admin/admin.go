package admin

import (
	"context"
	"fmt"

	"afspraak/config"
	blackoutRepo "afspraak/database/repository/blackout"
	bookingRepo "afspraak/database/repository/booking"
	"afspraak/models"
	"afspraak/services/booking"
	"afspraak/utils"

	"golang.org/x/crypto/bcrypt"
)

// Authenticate checks the admin credentials and issues a JWT. The token's
// hash is cached in Redis so revocation takes effect immediately.
func (s *DefaultAdminService) Authenticate(ctx context.Context, email, password string) (string, error) {
	if email != config.AppConfig.AdminEmail {
		return "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken("admin", email, utils.AuthCacheTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	key := utils.AuthCachePrefix + utils.HashToken(token)
	if err := s.AuthCache.Set(ctx, key, "admin", utils.AuthCacheTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache token: %w", err)
	}
	return token, nil
}

// RevokeToken drops the token from the auth cache; subsequent requests with
// it are rejected even before its JWT expiry.
func (s *DefaultAdminService) RevokeToken(ctx context.Context, token string) error {
	return s.AuthCache.Del(ctx, utils.AuthCachePrefix+utils.HashToken(token)).Err()
}

func (s *DefaultAdminService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.List(ctx)
	if err != nil {
		return nil, booking.NewStoreError(err)
	}
	return bookings, nil
}

func (s *DefaultAdminService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, booking.NewNotFoundError("booking not found")
		}
		return nil, booking.NewStoreError(err)
	}
	return b, nil
}

// DeleteBooking removes a booking unconditionally; admin access is the only
// ownership check.
func (s *DefaultAdminService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.BookingRepo.DeleteByID(ctx, id); err != nil {
		if err == bookingRepo.ErrNotFound {
			return booking.NewNotFoundError("booking not found")
		}
		return booking.NewStoreError(err)
	}
	return nil
}

// CreateBlackoutRule validates and stores a new rule. Rules are immutable;
// a mistake is fixed by delete-and-recreate.
func (s *DefaultAdminService) CreateBlackoutRule(ctx context.Context, rule *models.BlackoutRule) (string, error) {
	if err := validateBlackoutRule(rule); err != nil {
		return "", err
	}
	id, err := s.BlackoutRepo.Create(ctx, rule)
	if err != nil {
		return "", booking.NewStoreError(err)
	}
	return id, nil
}

func (s *DefaultAdminService) ListBlackoutRules(ctx context.Context) ([]models.BlackoutRule, error) {
	rules, err := s.BlackoutRepo.List(ctx)
	if err != nil {
		return nil, booking.NewStoreError(err)
	}
	return rules, nil
}

func (s *DefaultAdminService) DeleteBlackoutRule(ctx context.Context, id string) error {
	if err := s.BlackoutRepo.DeleteByID(ctx, id); err != nil {
		if err == blackoutRepo.ErrNotFound {
			return booking.NewNotFoundError("blackout rule not found")
		}
		return booking.NewStoreError(err)
	}
	return nil
}

func (s *DefaultAdminService) ListMessages(ctx context.Context) ([]models.Message, error) {
	msgs, err := s.MessageRepo.List(ctx)
	if err != nil {
		return nil, booking.NewStoreError(err)
	}
	return msgs, nil
}

// validateBlackoutRule enforces the defined rule shapes: whole-day, both
// time bounds, or lower bound only. An end time without a start time has no
// defined blocking semantics and is rejected rather than guessed at.
func validateBlackoutRule(rule *models.BlackoutRule) error {
	if rule.StartDate == "" || rule.EndDate == "" {
		return booking.NewValidationError("startDate and endDate are required")
	}
	if _, err := booking.ParseDate(rule.StartDate); err != nil {
		return booking.NewValidationError(err.Error())
	}
	if _, err := booking.ParseDate(rule.EndDate); err != nil {
		return booking.NewValidationError(err.Error())
	}
	if rule.EndDate < rule.StartDate {
		return booking.NewValidationError("endDate must not be before startDate")
	}

	if rule.EndTime != "" && rule.StartTime == "" {
		return booking.NewValidationError("endTime requires startTime")
	}
	var start, end int
	var err error
	if rule.StartTime != "" {
		if start, err = booking.ParseClock(rule.StartTime); err != nil {
			return booking.NewValidationError(err.Error())
		}
	}
	if rule.EndTime != "" {
		if end, err = booking.ParseClock(rule.EndTime); err != nil {
			return booking.NewValidationError(err.Error())
		}
		if end <= start {
			return booking.NewValidationError("endTime must be after startTime")
		}
	}
	return nil
}
