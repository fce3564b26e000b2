// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"afspraak/config"
	"afspraak/database"
	"afspraak/models"
	"afspraak/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no booking matches the given key.
var ErrNotFound = errors.New("booking not found")

// ErrSlotTaken is returned when the unique (date, start_time) constraint
// rejects a create. Only the Mongo backend enforces this.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository owns booking records; it carries no business logic.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	List(ctx context.Context) ([]models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

// NewRepo returns the repository for the configured store backend.
func NewRepo() BookingRepository {
	if config.AppConfig.StoreBackend == "firebase" {
		return NewFirebaseBookingRepo(utils.RTDBClient)
	}
	return NewMongoBookingRepo()
}
