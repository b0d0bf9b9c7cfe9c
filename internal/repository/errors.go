package repository

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrStoreUnavailable wraps transient store failures. Turns are never
	// silently dropped; the adapter reports the error and lets the user
	// retry.
	ErrStoreUnavailable = errors.New("quiz store unavailable")

	// ErrNoActiveQuestion means no expected answer is stored for the
	// session. Grading or giving up in that situation is a state-machine
	// misuse, recovered by prompting for a new question.
	ErrNoActiveQuestion = errors.New("no active question for session")

	// ErrNoQuestions means the store-resident corpus was never populated.
	ErrNoQuestions = errors.New("no questions loaded in store")
)

// opTimeout bounds every store call so a dead backend cannot hang a turn.
const opTimeout = 3 * time.Second

func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
