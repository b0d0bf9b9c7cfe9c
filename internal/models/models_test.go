package models

import "testing"

func TestStripAnnotation(t *testing.T) {
	testCases := []struct {
		name     string
		answer   string
		expected string
	}{
		{"annotated", "Париж. (география)", "Париж"},
		{"author credit", "Paris. (geography)", "Paris"},
		{"no annotation", "Четыре", "Четыре"},
		{"period only terminates", "Четыре.", "Четыре"},
		{"empty", "", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := QuizRecord{Question: "q", Answer: tc.answer}
			if got := record.ExpectedAnswer(); got != tc.expected {
				t.Errorf("ExpectedAnswer() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestSessionKeyFormat(t *testing.T) {
	key := NewSessionKey(PlatformTelegram, 123456)
	if key.String() != "user_tg_123456" {
		t.Errorf("unexpected key: %s", key)
	}
	key = NewSessionKey(PlatformVK, 9)
	if key.String() != "user_vk_9" {
		t.Errorf("unexpected key: %s", key)
	}
}
