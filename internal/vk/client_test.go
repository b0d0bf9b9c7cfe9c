package vk

import (
	"encoding/json"
	"testing"

	"quiz-bot/internal/service"
)

func TestKeyboardLayout(t *testing.T) {
	var keyboard struct {
		OneTime bool `json:"one_time"`
		Buttons [][]struct {
			Action struct {
				Type  string `json:"type"`
				Label string `json:"label"`
			} `json:"action"`
		} `json:"buttons"`
	}
	if err := json.Unmarshal([]byte(Keyboard()), &keyboard); err != nil {
		t.Fatalf("keyboard is not valid JSON: %v", err)
	}

	if keyboard.OneTime {
		t.Error("quiz keyboard must stay on screen between turns")
	}
	if len(keyboard.Buttons) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(keyboard.Buttons))
	}

	labels := []string{}
	for _, row := range keyboard.Buttons {
		for _, button := range row {
			if button.Action.Type != "text" {
				t.Errorf("expected text buttons, got %q", button.Action.Type)
			}
			labels = append(labels, button.Action.Label)
		}
	}
	want := []string{service.ButtonNewQuestion, service.ButtonGiveUp, service.ButtonScore}
	if len(labels) != len(want) {
		t.Fatalf("expected %d buttons, got %v", len(want), labels)
	}
	for i, label := range want {
		if labels[i] != label {
			t.Errorf("button %d: expected %q, got %q", i, label, labels[i])
		}
	}
}
