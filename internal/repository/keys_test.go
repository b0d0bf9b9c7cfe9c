package repository

import (
	"strings"
	"testing"

	"quiz-bot/internal/models"
)

func TestKeyLayout(t *testing.T) {
	key := models.NewSessionKey(models.PlatformVK, 77)

	if got := answerKey(key); got != "user_vk_77" {
		t.Errorf("answerKey = %q", got)
	}
	if got := counterKey(key, models.OutcomeGivenUp); got != "user_vk_77_given_up" {
		t.Errorf("counterKey = %q", got)
	}
	if got := questionKey(5); got != "question_5" {
		t.Errorf("questionKey = %q", got)
	}
}

func TestQuizKeysNeverCollideWithSessionKeys(t *testing.T) {
	// Session keys all share the user_ prefix, quiz keys never do, so a
	// random question lookup can never hit session bookkeeping.
	for _, quizKey := range []string{questionKey(1), questionCountKey} {
		if strings.HasPrefix(quizKey, "user_") {
			t.Errorf("quiz key %q collides with the session namespace", quizKey)
		}
	}
}
