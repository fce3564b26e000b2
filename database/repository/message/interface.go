// File: database/repository/message/interface.go
package messageRepo

import (
	"context"

	"afspraak/config"
	"afspraak/database"
	"afspraak/models"
	"afspraak/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// MessageRepository owns contact-form messages and cancellation records.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) (string, error)
	List(ctx context.Context) ([]models.Message, error)
}

type mongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo constructs a new MongoDB MessageRepository.
func NewMongoMessageRepo() MessageRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoMessageRepo{
		coll: db.Collection("messages"),
	}
}

// NewRepo returns the repository for the configured store backend.
func NewRepo() MessageRepository {
	if config.AppConfig.StoreBackend == "firebase" {
		return NewFirebaseMessageRepo(utils.RTDBClient)
	}
	return NewMongoMessageRepo()
}
