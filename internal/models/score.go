package models

// Outcome of a graded turn, mapped one-to-one onto a score counter.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeGivenUp   Outcome = "given_up"
)

// Outcomes lists every counter in the order the score summary renders them.
var Outcomes = []Outcome{OutcomeSucceeded, OutcomeFailed, OutcomeGivenUp}

// Score holds one user's counters. Counters only ever grow.
type Score struct {
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
	GivenUp   int64 `json:"given_up"`
}
