package models

import "strings"

// QuizRecord is one question/answer pair extracted from a corpus file.
// The answer may carry a trailing annotation (author credit, commentary)
// separated from the expected answer by the first period.
type QuizRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ExpectedAnswer returns the answer with its annotation suffix stripped:
// everything after the first '.' is commentary, not part of the answer.
func (r QuizRecord) ExpectedAnswer() string {
	return StripAnnotation(r.Answer)
}

// StripAnnotation cuts a stored answer at the first period.
func StripAnnotation(answer string) string {
	short, _, _ := strings.Cut(answer, ".")
	return short
}
