package repository

import (
	"context"
	"errors"
	"strconv"

	"quiz-bot/internal/models"

	"github.com/redis/go-redis/v9"
)

// ScoreRepository tracks the per-user outcome counters. Increments are
// atomic at the store level, so retried webhook deliveries cannot lose
// updates.
type ScoreRepository struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) *ScoreRepository {
	return &ScoreRepository{client: client}
}

// Increment bumps one counter and returns its new value. A missing counter
// starts from zero.
func (r *ScoreRepository) Increment(ctx context.Context, key models.SessionKey, outcome models.Outcome) (int64, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()
	value, err := r.client.Incr(ctx, counterKey(key, outcome)).Result()
	if err != nil {
		return 0, storeErr("increment counter", err)
	}
	return value, nil
}

// Get reads one counter; absent counters read as zero.
func (r *ScoreRepository) Get(ctx context.Context, key models.SessionKey, outcome models.Outcome) (int64, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()
	value, err := r.client.Get(ctx, counterKey(key, outcome)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, storeErr("get counter", err)
	}
	return value, nil
}

// GetAll reads the three counters in one round trip.
func (r *ScoreRepository) GetAll(ctx context.Context, key models.SessionKey) (models.Score, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	keys := make([]string, len(models.Outcomes))
	for i, outcome := range models.Outcomes {
		keys[i] = counterKey(key, outcome)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return models.Score{}, storeErr("get counters", err)
	}

	var score models.Score
	for i, raw := range values {
		var n int64
		if s, ok := raw.(string); ok {
			n, _ = strconv.ParseInt(s, 10, 64)
		}
		switch models.Outcomes[i] {
		case models.OutcomeSucceeded:
			score.Succeeded = n
		case models.OutcomeFailed:
			score.Failed = n
		case models.OutcomeGivenUp:
			score.GivenUp = n
		}
	}
	return score, nil
}

// Reset zeroes all three counters, used on conversation (re)start.
func (r *ScoreRepository) Reset(ctx context.Context, key models.SessionKey) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	pairs := make([]interface{}, 0, len(models.Outcomes)*2)
	for _, outcome := range models.Outcomes {
		pairs = append(pairs, counterKey(key, outcome), 0)
	}
	if err := r.client.MSet(ctx, pairs...).Err(); err != nil {
		return storeErr("reset counters", err)
	}
	return nil
}
