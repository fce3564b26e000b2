// File: database/repository/blackout/interface.go
package blackoutRepo

import (
	"context"
	"errors"

	"afspraak/config"
	"afspraak/database"
	"afspraak/models"
	"afspraak/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no blackout rule matches the given ID.
var ErrNotFound = errors.New("blackout rule not found")

// BlackoutRepository owns blackout rules; rules are immutable, so the
// contract is create, list, delete only.
type BlackoutRepository interface {
	Create(ctx context.Context, rule *models.BlackoutRule) (string, error)
	List(ctx context.Context) ([]models.BlackoutRule, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoBlackoutRepo struct {
	coll *mongo.Collection
}

// NewMongoBlackoutRepo constructs a new MongoDB BlackoutRepository.
func NewMongoBlackoutRepo() BlackoutRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBlackoutRepo{
		coll: db.Collection("blackouts"),
	}
}

// NewRepo returns the repository for the configured store backend.
func NewRepo() BlackoutRepository {
	if config.AppConfig.StoreBackend == "firebase" {
		return NewFirebaseBlackoutRepo(utils.RTDBClient)
	}
	return NewMongoBlackoutRepo()
}
