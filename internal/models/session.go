package models

import "fmt"

// Platform identifies the chat transport a session belongs to.
type Platform string

const (
	PlatformTelegram Platform = "tg"
	PlatformVK       Platform = "vk"
)

// SessionKey identifies one user's conversational session. All store keys
// for the session are derived from it, so different users' data never
// contend with each other.
type SessionKey struct {
	Platform Platform `json:"platform"`
	UserID   int64    `json:"user_id"`
}

func NewSessionKey(platform Platform, userID int64) SessionKey {
	return SessionKey{Platform: platform, UserID: userID}
}

func (k SessionKey) String() string {
	return fmt.Sprintf("user_%s_%d", k.Platform, k.UserID)
}

// State is the per-user conversational state.
type State int

const (
	// StateIdle means no question is outstanding.
	StateIdle State = iota
	// StateAwaitingAnswer means a question was posed and grading is pending.
	StateAwaitingAnswer
)

func (s State) String() string {
	switch s {
	case StateAwaitingAnswer:
		return "awaiting_answer"
	default:
		return "idle"
	}
}
