// utils/firebase.go
package utils

import (
	"context"
	"log"
	"time"

	"afspraak/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	FCMClient  *messaging.Client
	RTDBClient *db.Client
)

// FirebaseInit initializes the Firebase App, the Realtime Database client
// (when a database URL is configured) and the Messaging client. Connection
// setup is retried a fixed number of times before giving up.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)
	conf := &firebase.Config{DatabaseURL: config.AppConfig.FirebaseDatabaseURL}

	const maxAttempts = 5
	var app *firebase.App
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		app, err = firebase.NewApp(ctx, conf, opt)
		if err == nil {
			break
		}
		log.Printf("firebase: init attempt %d/%d failed: %v", attempt, maxAttempts, err)
		if attempt == maxAttempts {
			log.Fatalf("firebase: error initializing app: %v", err)
		}
		time.Sleep(2 * time.Second)
	}

	if config.AppConfig.FirebaseDatabaseURL != "" {
		client, err := app.Database(ctx)
		if err != nil {
			log.Fatalf("firebase: error getting Database client: %v", err)
		}
		RTDBClient = client
	}

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}
	FCMClient = msgClient
}
