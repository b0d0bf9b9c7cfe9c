package repository

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"

	"quiz-bot/internal/models"

	"github.com/redis/go-redis/v9"
)

// QuestionRepository holds the store-resident corpus: records keyed
// question_<n> alongside an explicit count record, so a random pick is a
// direct lookup instead of sampling random keys and rejecting session keys.
type QuestionRepository struct {
	client *redis.Client
}

func NewQuestionRepository(client *redis.Client) *QuestionRepository {
	return &QuestionRepository{client: client}
}

// SaveAll writes the whole corpus and its count in one MSET. Existing
// question records are overwritten, not merged.
func (r *QuestionRepository) SaveAll(ctx context.Context, records []models.QuizRecord) error {
	if len(records) == 0 {
		return ErrNoQuestions
	}
	ctx, cancel := opContext(ctx)
	defer cancel()

	pairs := make([]interface{}, 0, len(records)*2+2)
	for i, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			return err
		}
		pairs = append(pairs, questionKey(int64(i+1)), payload)
	}
	pairs = append(pairs, questionCountKey, len(records))

	if err := r.client.MSet(ctx, pairs...).Err(); err != nil {
		return storeErr("save questions", err)
	}
	return nil
}

// Count returns the number of stored questions, zero when the corpus was
// never populated.
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()
	count, err := r.client.Get(ctx, questionCountKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, storeErr("count questions", err)
	}
	return count, nil
}

// RandomQuestion picks a uniformly random stored record.
func (r *QuestionRepository) RandomQuestion(ctx context.Context) (models.QuizRecord, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return models.QuizRecord{}, err
	}
	if count == 0 {
		return models.QuizRecord{}, ErrNoQuestions
	}

	n := rand.Int63n(count) + 1
	ctx, cancel := opContext(ctx)
	defer cancel()
	payload, err := r.client.Get(ctx, questionKey(n)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.QuizRecord{}, ErrNoQuestions
	}
	if err != nil {
		return models.QuizRecord{}, storeErr("get question", err)
	}

	var record models.QuizRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return models.QuizRecord{}, err
	}
	return record, nil
}
