package repository

import (
	"fmt"

	"quiz-bot/internal/models"
)

// Store layout. Session data lives under user_<platform>_<userID>, the
// store-resident corpus under question_<n> plus a count record, so quiz
// keys and session keys never collide.
const questionCountKey = "number_of_questions"

func questionKey(n int64) string {
	return fmt.Sprintf("question_%d", n)
}

func answerKey(key models.SessionKey) string {
	return key.String()
}

func counterKey(key models.SessionKey, outcome models.Outcome) string {
	return fmt.Sprintf("%s_%s", key, outcome)
}
