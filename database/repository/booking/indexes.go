// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
// The unique (date, start_time) index is the server-side guard against two
// visitors racing the same slot past the engine's re-validation.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_date_start"),
		},
		{
			Keys:    bson.D{{Key: "contact.email", Value: 1}},
			Options: options.Index().SetName("contact_email_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

// EnsureBookingIndexes runs index creation when the Mongo backend is active.
func EnsureBookingIndexes(repo BookingRepository) error {
	if mr, ok := repo.(*mongoBookingRepo); ok {
		return mr.EnsureIndexes()
	}
	return nil
}
