package grading

// DefaultThreshold is the minimum token-set score accepted as a correct
// answer.
const DefaultThreshold = 90

// Grader decides whether a submitted answer matches the expected one.
// Callers strip any annotation suffix from the expected answer before
// grading; the grader only compares the two strings.
type Grader struct {
	Threshold int
}

func NewGrader(threshold int) *Grader {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Grader{Threshold: threshold}
}

// Correct reports whether submitted is similar enough to expected.
// Pure: no side effects, no I/O.
func (g *Grader) Correct(submitted, expected string) bool {
	return TokenSetRatio(submitted, expected) >= g.Threshold
}
