// File: database/repository/message/firebase.go
package messageRepo

import (
	"context"
	"time"

	"firebase.google.com/go/v4/db"

	"afspraak/models"
)

// firebaseMessageRepo keeps messages under /messages, push-keyed the way the
// original widget wrote them.
type firebaseMessageRepo struct {
	ref *db.Ref
}

// NewFirebaseMessageRepo constructs a Realtime Database MessageRepository.
func NewFirebaseMessageRepo(client *db.Client) MessageRepository {
	return &firebaseMessageRepo{ref: client.NewRef("messages")}
}

func (r *firebaseMessageRepo) Create(ctx context.Context, msg *models.Message) (string, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	ref, err := r.ref.Push(ctx, msg)
	if err != nil {
		return "", err
	}
	msg.ID = ref.Key
	return ref.Key, nil
}

func (r *firebaseMessageRepo) List(ctx context.Context) ([]models.Message, error) {
	var raw map[string]models.Message
	if err := r.ref.Get(ctx, &raw); err != nil {
		return nil, err
	}
	msgs := make([]models.Message, 0, len(raw))
	for id, m := range raw {
		if m.ID == "" {
			m.ID = id
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}
