package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"afspraak/models"
	"afspraak/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Booking sessions carry one visitor's date/time selection between requests.
// They live in Redis with a short TTL; a session holding a date but no time
// is a legal intermediate state, never an error.

// InitiateSession opens a session for a date and returns its current offers.
func (s *DefaultBookingService) InitiateSession(ctx context.Context, date string, duration int) (*models.BookingSession, error) {
	duration, err := s.normalizeDuration(duration)
	if err != nil {
		return nil, err
	}
	offers, err := s.ListOffers(ctx, date, duration)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &models.BookingSession{
		ID:              uuid.New().String(),
		Date:            date,
		DurationMinutes: models.Minutes(duration),
		Offers:          offers,
		CreatedAt:       now,
		LastUpdatedAt:   now,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession records a time selection. Offers are recomputed from a fresh
// snapshot first, so a slot that was taken since the session opened is
// rejected here rather than at confirmation.
func (s *DefaultBookingService) UpdateSession(ctx context.Context, sessionID, startTime string) (*models.BookingSession, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	offers, err := s.ListOffers(ctx, session.Date, int(session.DurationMinutes))
	if err != nil {
		return nil, err
	}
	session.Offers = offers

	selected := false
	for _, offer := range offers {
		if offer.StartTime == startTime {
			if !offer.Offerable {
				return nil, NewConflictError(fmt.Sprintf("slot %s %s is no longer available (%s)", session.Date, startTime, offer.Reason))
			}
			selected = true
			break
		}
	}
	if !selected {
		return nil, NewValidationError(fmt.Sprintf("%s is not a bookable start time", startTime))
	}

	session.SelectedStart = startTime
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmSession turns a completed session into a booking and discards the
// session. ProposeBooking re-validates against a fresh snapshot before any
// write.
func (s *DefaultBookingService) ConfirmSession(ctx context.Context, sessionID string, contact models.Contact, appointmentType, notes string) (string, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session.SelectedStart == "" {
		return "", NewValidationError("no time selected")
	}

	id, err := s.ProposeBooking(ctx, BookingInput{
		Date:            session.Date,
		StartTime:       session.SelectedStart,
		DurationMinutes: session.DurationMinutes,
		Contact:         contact,
		AppointmentType: appointmentType,
		Notes:           notes,
	})
	if err != nil {
		return "", err
	}

	_ = s.CancelSession(ctx, sessionID)
	return id, nil
}

// CancelSession discards a session. Cancelling an unknown or expired session
// is a no-op.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	return s.SessionCache.Del(ctx, utils.SessionCachePrefix+sessionID).Err()
}

func (s *DefaultBookingService) saveSession(ctx context.Context, session *models.BookingSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return NewStoreError(err)
	}
	if err := s.SessionCache.Set(ctx, utils.SessionCachePrefix+session.ID, data, s.SessionTTL).Err(); err != nil {
		return NewStoreError(err)
	}
	return nil
}

func (s *DefaultBookingService) getSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.SessionCache.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, NewNotFoundError("booking session not found or expired")
	}
	if err != nil {
		return nil, NewStoreError(err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, NewStoreError(err)
	}
	return &session, nil
}
