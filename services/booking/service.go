package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"afspraak/config"
	bookingRepo "afspraak/database/repository/booking"
	"afspraak/models"
	"afspraak/utils"

	"go.uber.org/zap"
)

// ListOffers computes the slot offers for one date against a fresh snapshot
// of bookings and blackout rules.
func (s *DefaultBookingService) ListOffers(ctx context.Context, date string, duration int) ([]models.SlotOffer, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, NewValidationError(err.Error())
	}
	duration, err := s.normalizeDuration(duration)
	if err != nil {
		return nil, err
	}

	bookings, err := s.BookingRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, NewStoreError(err)
	}
	rules, err := s.BlackoutRepo.List(ctx)
	if err != nil {
		return nil, NewStoreError(err)
	}

	return s.Engine.ListOffers(date, duration, bookings, rules, time.Now()), nil
}

// MonthAvailability flags each day of the month for the calendar grid.
func (s *DefaultBookingService) MonthAvailability(ctx context.Context, year int, month time.Month) ([]models.DayAvailability, error) {
	if year < 2000 || year > 2200 || month < time.January || month > time.December {
		return nil, NewValidationError("invalid year or month")
	}
	rules, err := s.BlackoutRepo.List(ctx)
	if err != nil {
		return nil, NewStoreError(err)
	}
	return s.Engine.MonthAvailability(year, month, rules, time.Now()), nil
}

// ProposeBooking re-validates the chosen slot against a fresh snapshot and
// writes the booking. The re-validation closes the window between "rendered
// as available" and "written"; on the Mongo backend the unique
// (date, start_time) index backstops the remaining race.
func (s *DefaultBookingService) ProposeBooking(ctx context.Context, input BookingInput) (string, error) {
	logger := utils.GetLogger()

	if err := validateInput(&input); err != nil {
		return "", err
	}
	duration, err := s.normalizeDuration(int(input.DurationMinutes))
	if err != nil {
		return "", err
	}
	start, err := ParseClock(input.StartTime)
	if err != nil {
		return "", NewValidationError(err.Error())
	}
	weekday, err := Weekday(input.Date)
	if err != nil {
		return "", NewValidationError(err.Error())
	}
	if !s.Engine.Hours.IsCanonical(weekday, start) {
		return "", NewValidationError(fmt.Sprintf("%s is not a bookable start time", input.StartTime))
	}

	bookings, err := s.BookingRepo.ListByDate(ctx, input.Date)
	if err != nil {
		return "", NewStoreError(err)
	}
	rules, err := s.BlackoutRepo.List(ctx)
	if err != nil {
		return "", NewStoreError(err)
	}

	offerable, reason := s.Engine.CheckSlot(input.Date, start, duration, bookings, rules, time.Now())
	if !offerable {
		return "", NewConflictError(fmt.Sprintf("slot %s %s is no longer available (%s)", input.Date, input.StartTime, reason))
	}

	record := &models.Booking{
		Date:            input.Date,
		StartTime:       input.StartTime,
		EndTime:         FormatClock(AddMinutes(start, duration)),
		DurationMinutes: models.Minutes(duration),
		Contact:         input.Contact,
		AppointmentType: input.AppointmentType,
		Notes:           input.Notes,
		CreatedAt:       time.Now(),
	}

	id, err := s.BookingRepo.Create(ctx, record)
	if err != nil {
		if err == bookingRepo.ErrSlotTaken {
			return "", NewConflictError(fmt.Sprintf("slot %s %s was booked a moment ago", input.Date, input.StartTime))
		}
		return "", NewStoreError(err)
	}

	s.scheduleReminder(ctx, record)
	s.notifyAdmin(ctx, "New appointment",
		fmt.Sprintf("%s booked %s at %s", record.Contact.Name, record.Date, record.StartTime),
		map[string]string{"bookingId": id, "date": record.Date, "startTime": record.StartTime})

	logger.Info("booking created",
		zap.String("id", id),
		zap.String("date", record.Date),
		zap.String("startTime", record.StartTime))
	return id, nil
}

// CancelByEmail deletes the earliest-created booking matching the contact
// email and records a cancellation note. No match is a normal outcome, not
// an error.
func (s *DefaultBookingService) CancelByEmail(ctx context.Context, email, reason string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, NewValidationError("email is required")
	}

	matches, err := s.BookingRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, NewStoreError(err)
	}
	if len(matches) == 0 {
		return false, nil
	}

	// Multiple bookings can share one email; pick deterministically.
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	target := matches[0]

	cancelledAt := time.Now()
	note := &models.Message{
		Type:            models.MessageTypeCancellation,
		Email:           email,
		OriginalBooking: &target,
		Reason:          reason,
		CancelledAt:     &cancelledAt,
	}
	if _, err := s.MessageRepo.Create(ctx, note); err != nil {
		return false, NewStoreError(err)
	}

	if err := s.BookingRepo.DeleteByID(ctx, target.ID); err != nil {
		if err == bookingRepo.ErrNotFound {
			return false, nil
		}
		return false, NewStoreError(err)
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("id", target.ID),
		zap.String("date", target.Date),
		zap.String("startTime", target.StartTime))
	return true, nil
}

// SaveContactMessage records a contact-form submission.
func (s *DefaultBookingService) SaveContactMessage(ctx context.Context, msg *models.Message) (string, error) {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Body) == "" {
		return "", NewValidationError("name, email and message are required")
	}
	msg.Type = models.MessageTypeContact
	id, err := s.MessageRepo.Create(ctx, msg)
	if err != nil {
		return "", NewStoreError(err)
	}
	return id, nil
}

func (s *DefaultBookingService) normalizeDuration(duration int) (int, error) {
	if duration == 0 {
		return s.Engine.Hours.DefaultDuration, nil
	}
	if duration < 0 || duration > s.Engine.Hours.MaxDuration {
		return 0, NewValidationError(fmt.Sprintf("duration must be between 1 and %d minutes", s.Engine.Hours.MaxDuration))
	}
	return duration, nil
}

func validateInput(input *BookingInput) error {
	input.Contact.Name = strings.TrimSpace(input.Contact.Name)
	input.Contact.Email = strings.TrimSpace(input.Contact.Email)
	if input.Date == "" || input.StartTime == "" {
		return NewValidationError("date and start time are required")
	}
	if input.Contact.Name == "" || input.Contact.Email == "" {
		return NewValidationError("contact name and email are required")
	}
	return nil
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, b *models.Booking) {
	if s.Reminders == nil {
		return
	}
	day, err := ParseDate(b.Date)
	if err != nil {
		return
	}
	start, err := ParseClock(b.StartTime)
	if err != nil {
		return
	}
	fireAt := day.Add(time.Duration(start) * time.Minute).
		Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID: b.ID,
		Date:      b.Date,
		StartTime: b.StartTime,
		Title:     "Upcoming appointment",
		Body:      fmt.Sprintf("%s, %s at %s", b.Contact.Name, b.Date, b.StartTime),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	if err := s.Reminders.Schedule(ctx, payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder", zap.Error(err))
	}
}

func (s *DefaultBookingService) notifyAdmin(ctx context.Context, title, body string, data map[string]string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.NotifyAdmin(ctx, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to notify admin", zap.Error(err))
	}
}
