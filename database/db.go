package database

import (
	"context"
	"log"
	"time"

	"afspraak/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DatabaseName is the Mongo database holding all collections.
const DatabaseName = "afspraak"

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection. The connect-and-ping cycle is
// retried a fixed number of times with fixed backoff; after exhausting the
// attempts the process exits rather than hanging on an unreachable store.
func InitDB() {
	const maxAttempts = 5
	const backoff = 2 * time.Second

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
		client, err := mongo.Connect(ctx, clientOptions)
		if err == nil {
			err = client.Ping(ctx, nil)
		}
		cancel()

		if err == nil {
			MongoClient = client
			log.Println("Connected to MongoDB successfully!")
			return
		}

		log.Printf("MongoDB connect attempt %d/%d failed: %v", attempt, maxAttempts, err)
		if attempt < maxAttempts {
			time.Sleep(backoff)
		}
	}
	log.Fatalf("failed to connect to MongoDB after %d attempts", maxAttempts)
}
