package service

import (
	"context"
	"fmt"

	"quiz-bot/internal/models"
)

// ScoreStore is the slice of the quiz store the score tracker needs.
type ScoreStore interface {
	Increment(ctx context.Context, key models.SessionKey, outcome models.Outcome) (int64, error)
	GetAll(ctx context.Context, key models.SessionKey) (models.Score, error)
	Reset(ctx context.Context, key models.SessionKey) error
}

// ScoreService tracks and renders per-user counters.
type ScoreService struct {
	Repo ScoreStore
}

func NewScoreService(repo ScoreStore) *ScoreService {
	return &ScoreService{Repo: repo}
}

// Flush zeroes all counters, called on conversation (re)start.
func (s *ScoreService) Flush(ctx context.Context, key models.SessionKey) error {
	return s.Repo.Reset(ctx, key)
}

// Record increments the counter matching the outcome and returns its new
// value.
func (s *ScoreService) Record(ctx context.Context, key models.SessionKey, outcome models.Outcome) (int64, error) {
	return s.Repo.Increment(ctx, key, outcome)
}

// Get reads the current counters.
func (s *ScoreService) Get(ctx context.Context, key models.SessionKey) (models.Score, error) {
	return s.Repo.GetAll(ctx, key)
}

// Summary renders the three counters in the fixed three-line format.
// Counters that were never touched read as zero.
func (s *ScoreService) Summary(ctx context.Context, key models.SessionKey) (string, error) {
	score, err := s.Repo.GetAll(ctx, key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Угадал раз: %d\nНеудачных попыток: %d\nСдался раз: %d\n",
		score.Succeeded, score.Failed, score.GivenUp,
	), nil
}
