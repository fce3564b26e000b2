package admin

import (
	"context"
	"testing"

	bookingRepo "afspraak/database/repository/booking"
	"afspraak/models"
	"afspraak/services/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) (string, error) {
	b.ID = uuid.New().String()
	f.bookings = append(f.bookings, *b)
	return b.ID, nil
}

func (f *fakeBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) DeleteByID(ctx context.Context, id string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

type fakeBlackoutRepo struct {
	rules []models.BlackoutRule
}

func (f *fakeBlackoutRepo) Create(ctx context.Context, rule *models.BlackoutRule) (string, error) {
	rule.ID = uuid.New().String()
	f.rules = append(f.rules, *rule)
	return rule.ID, nil
}

func (f *fakeBlackoutRepo) List(ctx context.Context) ([]models.BlackoutRule, error) {
	return f.rules, nil
}

func (f *fakeBlackoutRepo) DeleteByID(ctx context.Context, id string) error {
	for i := range f.rules {
		if f.rules[i].ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestAdminService() (*DefaultAdminService, *fakeBookingRepo, *fakeBlackoutRepo) {
	bookings := &fakeBookingRepo{}
	blackouts := &fakeBlackoutRepo{}
	svc := &DefaultAdminService{
		BookingRepo:  bookings,
		BlackoutRepo: blackouts,
	}
	return svc, bookings, blackouts
}

func TestCreateBlackoutRule_Shapes(t *testing.T) {
	svc, _, repo := newTestAdminService()
	ctx := context.Background()

	// Whole-day range.
	id, err := svc.CreateBlackoutRule(ctx, &models.BlackoutRule{
		StartDate: "2025-07-01", EndDate: "2025-07-14", Reason: "summer holiday",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Time window on a single day.
	_, err = svc.CreateBlackoutRule(ctx, &models.BlackoutRule{
		StartDate: "2025-07-20", EndDate: "2025-07-20",
		StartTime: "12:00", EndTime: "13:00",
	})
	require.NoError(t, err)

	// Lower time bound only.
	_, err = svc.CreateBlackoutRule(ctx, &models.BlackoutRule{
		StartDate: "2025-07-21", EndDate: "2025-07-21", StartTime: "14:00",
	})
	require.NoError(t, err)

	assert.Len(t, repo.rules, 3)
}

func TestCreateBlackoutRule_Rejections(t *testing.T) {
	svc, _, repo := newTestAdminService()
	ctx := context.Background()

	cases := []models.BlackoutRule{
		{},
		{StartDate: "2025-07-01"},
		{StartDate: "not-a-date", EndDate: "2025-07-01"},
		{StartDate: "2025-07-14", EndDate: "2025-07-01"},
		// An end time without a start time has no defined semantics.
		{StartDate: "2025-07-01", EndDate: "2025-07-01", EndTime: "13:00"},
		{StartDate: "2025-07-01", EndDate: "2025-07-01", StartTime: "14:00", EndTime: "13:00"},
		{StartDate: "2025-07-01", EndDate: "2025-07-01", StartTime: "13:00", EndTime: "13:00"},
		{StartDate: "2025-07-01", EndDate: "2025-07-01", StartTime: "1pm", EndTime: "14:00"},
	}
	for _, rule := range cases {
		_, err := svc.CreateBlackoutRule(ctx, &rule)
		require.Error(t, err, "rule %+v", rule)
		assert.Equal(t, booking.CodeValidation, booking.ErrorCode(err))
	}
	assert.Empty(t, repo.rules)
}

func TestDeleteBooking(t *testing.T) {
	svc, repo, _ := newTestAdminService()
	ctx := context.Background()

	repo.bookings = []models.Booking{{ID: "b1", Date: "2025-07-01", StartTime: "10:00"}}

	require.NoError(t, svc.DeleteBooking(ctx, "b1"))
	assert.Empty(t, repo.bookings)

	err := svc.DeleteBooking(ctx, "b1")
	require.Error(t, err)
	assert.Equal(t, booking.CodeNotFound, booking.ErrorCode(err))
}

func TestGetBooking_NotFound(t *testing.T) {
	svc, _, _ := newTestAdminService()
	_, err := svc.GetBooking(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, booking.CodeNotFound, booking.ErrorCode(err))
}
