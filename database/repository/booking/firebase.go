// File: database/repository/booking/firebase.go
package bookingRepo

import (
	"context"
	"time"

	"firebase.google.com/go/v4/db"
	"github.com/google/uuid"

	"afspraak/models"
)

// firebaseBookingRepo keeps bookings under /bookings/<id> in the Realtime
// Database. RTDB has no uniqueness constraint, so slot races are caught only
// by the engine's re-validation on this backend.
type firebaseBookingRepo struct {
	ref *db.Ref
}

// NewFirebaseBookingRepo constructs a Realtime Database BookingRepository.
func NewFirebaseBookingRepo(client *db.Client) BookingRepository {
	return &firebaseBookingRepo{ref: client.NewRef("bookings")}
}

func (r *firebaseBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	if err := r.ref.Child(booking.ID).Set(ctx, booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}

func (r *firebaseBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	var raw map[string]models.Booking
	if err := r.ref.Get(ctx, &raw); err != nil {
		return nil, err
	}
	bookings := make([]models.Booking, 0, len(raw))
	for id, b := range raw {
		if b.ID == "" {
			b.ID = id
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *firebaseBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	for _, b := range all {
		if b.Date == date {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *firebaseBookingRepo) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	for _, b := range all {
		if b.Contact.Email == email {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *firebaseBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.ref.Child(id).Get(ctx, &booking); err != nil {
		return nil, err
	}
	if booking.Date == "" {
		return nil, ErrNotFound
	}
	booking.ID = id
	return &booking, nil
}

func (r *firebaseBookingRepo) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.ref.Child(id).Delete(ctx)
}
