package grading

import "testing"

func TestTokenSetRatio(t *testing.T) {
	testCases := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"identical", "Paris", "Paris", 100},
		{"case insensitive", "paris", "Paris", 100},
		{"token order ignored", "Paris France", "france paris", 100},
		{"duplicate tokens ignored", "paris paris", "paris", 100},
		{"punctuation ignored", "Париж.", "Париж", 100},
		{"submission containing all expected tokens", "ну наверное Париж", "Париж", 100},
		{"no overlap at all", "london", "paris", 0},
		{"empty submission", "", "paris", 0},
		{"both empty", "", "", 0},
		// One substitution in ten characters: (20-2)/20 = 90.
		{"single substitution boundary", "aaaaaaaaaa", "aaaaaaaaab", 90},
		// Two substitutions in nineteen: (38-4)/38 rounds to 89.
		{"two substitutions below boundary", "aaaaaaaaaaaaaaaaaaa", "aaaaaaaaaaaaaaaaabb", 89},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TokenSetRatio(tc.a, tc.b); got != tc.expected {
				t.Errorf("TokenSetRatio(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestTokenSetRatioSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"Paris France", "france paris"},
		{"FRANCE PARIS", "Paris France"},
		{"Гиппопотам", "гиппопотам"},
	}
	for _, pair := range pairs {
		forward := TokenSetRatio(pair[0], pair[1])
		backward := TokenSetRatio(pair[1], pair[0])
		if forward != backward {
			t.Errorf("TokenSetRatio not symmetric for %q/%q: %d vs %d", pair[0], pair[1], forward, backward)
		}
	}
}

func TestGraderThresholdBoundary(t *testing.T) {
	grader := NewGrader(0) // falls back to the default threshold of 90

	if grader.Threshold != DefaultThreshold {
		t.Fatalf("expected default threshold %d, got %d", DefaultThreshold, grader.Threshold)
	}

	// Score exactly 90 is accepted.
	if !grader.Correct("aaaaaaaaaa", "aaaaaaaaab") {
		t.Error("score of exactly 90 should be accepted")
	}
	// Score 89 is rejected.
	if grader.Correct("aaaaaaaaaaaaaaaaaaa", "aaaaaaaaaaaaaaaaabb") {
		t.Error("score of 89 should be rejected")
	}
}

func TestGraderEndToEndAnswers(t *testing.T) {
	grader := NewGrader(DefaultThreshold)

	if !grader.Correct("paris", "Paris") {
		t.Error("expected \"paris\" to match \"Paris\"")
	}
	if grader.Correct("london", "Paris") {
		t.Error("expected \"london\" not to match \"Paris\"")
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"Paris, France!", "paris france"},
		{"  Привет   мир  ", "привет мир"},
		{"...", ""},
	}
	for _, tc := range testCases {
		if got := normalize(tc.in); got != tc.expected {
			t.Errorf("normalize(%q) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}
