// File: database/repository/blackout/crud.go
package blackoutRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"afspraak/models"
)

func (r *mongoBlackoutRepo) Create(ctx context.Context, rule *models.BlackoutRule) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, rule); err != nil {
		return "", err
	}
	return rule.ID, nil
}

func (r *mongoBlackoutRepo) List(ctx context.Context) ([]models.BlackoutRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blackout rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.BlackoutRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("error decoding blackout rules: %w", err)
	}
	return rules, nil
}

func (r *mongoBlackoutRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
