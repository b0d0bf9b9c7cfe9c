package repository

import (
	"context"
	"errors"

	"quiz-bot/internal/models"

	"github.com/redis/go-redis/v9"
)

// SessionRepository keeps each user's outstanding expected answer.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// SetExpectedAnswer overwrites the stored answer for the session; there
// are no merge semantics, a new question simply replaces the old one.
func (r *SessionRepository) SetExpectedAnswer(ctx context.Context, key models.SessionKey, answer string) error {
	ctx, cancel := opContext(ctx)
	defer cancel()
	if err := r.client.Set(ctx, answerKey(key), answer, 0).Err(); err != nil {
		return storeErr("set expected answer", err)
	}
	return nil
}

// ExpectedAnswer returns the stored answer, annotation included, or
// ErrNoActiveQuestion when nothing is outstanding.
func (r *SessionRepository) ExpectedAnswer(ctx context.Context, key models.SessionKey) (string, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()
	answer, err := r.client.Get(ctx, answerKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoActiveQuestion
	}
	if err != nil {
		return "", storeErr("get expected answer", err)
	}
	return answer, nil
}
