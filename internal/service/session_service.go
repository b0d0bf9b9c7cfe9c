package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"quiz-bot/internal/grading"
	"quiz-bot/internal/models"
	"quiz-bot/internal/repository"
)

// QuestionSource supplies random quiz records, either from the in-process
// corpus or from the store-resident one.
type QuestionSource interface {
	RandomQuestion(ctx context.Context) (models.QuizRecord, error)
}

// AnswerStore is the slice of the quiz store holding each session's
// outstanding expected answer.
type AnswerStore interface {
	SetExpectedAnswer(ctx context.Context, key models.SessionKey, answer string) error
	ExpectedAnswer(ctx context.Context, key models.SessionKey) (string, error)
}

// Publisher pushes turn outcomes to the event bus. May be left nil.
type Publisher interface {
	Publish(eventType string, payload interface{}) error
}

// Routing keys for published turn events.
const (
	EventQuestionPosed = "quiz.question.posed"
	EventSucceeded     = "quiz.succeeded"
	EventFailed        = "quiz.failed"
	EventGivenUp       = "quiz.given_up"
)

// Reply is what a turn produces: the messages to deliver, in order, and
// the state the adapter should resume the next turn from.
type Reply struct {
	Messages []string
	State    models.State
}

// SessionService is the per-user conversational state machine. It is
// platform-agnostic: the platform enters only through the session key.
// Safe for concurrent turns of different users; a single user's turns are
// assumed sequential (a human cannot answer faster than the round trip).
type SessionService struct {
	questions QuestionSource
	answers   AnswerStore
	scores    *ScoreService
	grader    *grading.Grader
	events    Publisher
}

func NewSessionService(questions QuestionSource, answers AnswerStore, scores *ScoreService, grader *grading.Grader) *SessionService {
	return &SessionService{
		questions: questions,
		answers:   answers,
		scores:    scores,
		grader:    grader,
	}
}

// SetEventPublisher injects the optional outcome publisher.
func (s *SessionService) SetEventPublisher(p Publisher) {
	s.events = p
}

// StartConversation resets the user's score and greets them. The session
// restarts Idle; stored quiz data is kept.
func (s *SessionService) StartConversation(ctx context.Context, key models.SessionKey) (Reply, error) {
	if err := s.scores.Flush(ctx, key); err != nil {
		return Reply{}, err
	}
	return Reply{Messages: []string{msgGreeting}, State: models.StateIdle}, nil
}

// EndConversation produces the farewell for an explicit cancel. Stored
// counters and the outstanding answer survive; only the UI flow ends.
func (s *SessionService) EndConversation() Reply {
	return Reply{Messages: []string{msgGoodbye}, State: models.StateIdle}
}

// HandleTurn runs one turn of the state machine. Errors are store
// failures; every non-error path carries a user-visible message.
func (s *SessionService) HandleTurn(ctx context.Context, key models.SessionKey, state models.State, text string) (Reply, error) {
	switch state {
	case models.StateAwaitingAnswer:
		switch text {
		case ButtonGiveUp:
			return s.giveUp(ctx, key)
		case ButtonScore:
			return s.showScore(ctx, key)
		default:
			return s.gradeAnswer(ctx, key, text)
		}
	default:
		if text == ButtonNewQuestion {
			return s.poseQuestion(ctx, key, nil)
		}
		return Reply{Messages: []string{msgPrompt}, State: models.StateIdle}, nil
	}
}

// poseQuestion picks a random record, stores its answer as the session's
// expected answer and emits the question text. lead, when present, is
// delivered before the question (reveal or congratulation).
func (s *SessionService) poseQuestion(ctx context.Context, key models.SessionKey, lead []string) (Reply, error) {
	record, err := s.questions.RandomQuestion(ctx)
	if err != nil {
		return Reply{}, err
	}
	if err := s.answers.SetExpectedAnswer(ctx, key, record.Answer); err != nil {
		return Reply{}, err
	}
	s.publish(EventQuestionPosed, key, nil)

	return Reply{
		Messages: append(lead, record.Question),
		State:    models.StateAwaitingAnswer,
	}, nil
}

// giveUp reveals the stripped answer, counts the surrender and pivots
// straight into a new question so the quiz flow stays continuous.
func (s *SessionService) giveUp(ctx context.Context, key models.SessionKey) (Reply, error) {
	expected, err := s.answers.ExpectedAnswer(ctx, key)
	if errors.Is(err, repository.ErrNoActiveQuestion) {
		return s.recoverIdle(key), nil
	}
	if err != nil {
		return Reply{}, err
	}

	if _, err := s.scores.Record(ctx, key, models.OutcomeGivenUp); err != nil {
		return Reply{}, err
	}
	s.publish(EventGivenUp, key, nil)

	reveal := fmt.Sprintf(revealFormat, models.StripAnnotation(expected))
	return s.poseQuestion(ctx, key, []string{reveal})
}

// gradeAnswer grades the submission. A match counts a success and pivots
// into a new question; a miss counts a failure and leaves the question
// outstanding for another try.
func (s *SessionService) gradeAnswer(ctx context.Context, key models.SessionKey, submitted string) (Reply, error) {
	expected, err := s.answers.ExpectedAnswer(ctx, key)
	if errors.Is(err, repository.ErrNoActiveQuestion) {
		return s.recoverIdle(key), nil
	}
	if err != nil {
		return Reply{}, err
	}

	if s.grader.Correct(submitted, models.StripAnnotation(expected)) {
		if _, err := s.scores.Record(ctx, key, models.OutcomeSucceeded); err != nil {
			return Reply{}, err
		}
		s.publish(EventSucceeded, key, nil)
		return s.poseQuestion(ctx, key, []string{msgCorrect})
	}

	if _, err := s.scores.Record(ctx, key, models.OutcomeFailed); err != nil {
		return Reply{}, err
	}
	s.publish(EventFailed, key, nil)
	return Reply{Messages: []string{msgWrong}, State: models.StateAwaitingAnswer}, nil
}

func (s *SessionService) showScore(ctx context.Context, key models.SessionKey) (Reply, error) {
	summary, err := s.scores.Summary(ctx, key)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Messages: []string{summary}, State: models.StateAwaitingAnswer}, nil
}

// recoverIdle handles the stored answer going missing while a question is
// supposedly outstanding: fall back to Idle and prompt for a new question
// instead of failing the turn.
func (s *SessionService) recoverIdle(key models.SessionKey) Reply {
	log.Printf("Session %s has no stored answer, recovering to idle", key)
	return Reply{Messages: []string{msgPrompt}, State: models.StateIdle}
}

func (s *SessionService) publish(eventType string, key models.SessionKey, extra map[string]interface{}) {
	if s.events == nil {
		return
	}
	payload := map[string]interface{}{
		"platform": key.Platform,
		"user_id":  key.UserID,
	}
	for k, v := range extra {
		payload[k] = v
	}
	if err := s.events.Publish(eventType, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
