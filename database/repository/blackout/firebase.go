// File: database/repository/blackout/firebase.go
package blackoutRepo

import (
	"context"
	"time"

	"firebase.google.com/go/v4/db"
	"github.com/google/uuid"

	"afspraak/models"
)

// firebaseBlackoutRepo keeps blackout rules under /blackouts/<id>.
type firebaseBlackoutRepo struct {
	ref *db.Ref
}

// NewFirebaseBlackoutRepo constructs a Realtime Database BlackoutRepository.
func NewFirebaseBlackoutRepo(client *db.Client) BlackoutRepository {
	return &firebaseBlackoutRepo{ref: client.NewRef("blackouts")}
}

func (r *firebaseBlackoutRepo) Create(ctx context.Context, rule *models.BlackoutRule) (string, error) {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now()
	}
	if err := r.ref.Child(rule.ID).Set(ctx, rule); err != nil {
		return "", err
	}
	return rule.ID, nil
}

func (r *firebaseBlackoutRepo) List(ctx context.Context) ([]models.BlackoutRule, error) {
	var raw map[string]models.BlackoutRule
	if err := r.ref.Get(ctx, &raw); err != nil {
		return nil, err
	}
	rules := make([]models.BlackoutRule, 0, len(raw))
	for id, rule := range raw {
		if rule.ID == "" {
			rule.ID = id
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r *firebaseBlackoutRepo) DeleteByID(ctx context.Context, id string) error {
	var rule models.BlackoutRule
	if err := r.ref.Child(id).Get(ctx, &rule); err != nil {
		return err
	}
	if rule.StartDate == "" {
		return ErrNotFound
	}
	return r.ref.Child(id).Delete(ctx)
}
