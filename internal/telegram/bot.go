package telegram

import (
	"context"
	"log"

	"quiz-bot/internal/models"
	"quiz-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot is the Telegram adapter: it owns message delivery and the reply
// keyboard, and drives the platform-agnostic session service with the
// state it got back on the previous turn.
type Bot struct {
	api      *tgbotapi.BotAPI
	sessions *service.SessionService
	states   map[int64]models.State
	keyboard tgbotapi.ReplyKeyboardMarkup
}

func NewBot(token string, sessions *service.SessionService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(service.ButtonNewQuestion),
			tgbotapi.NewKeyboardButton(service.ButtonGiveUp),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(service.ButtonScore),
		),
	)

	return &Bot{
		api:      api,
		sessions: sessions,
		states:   make(map[int64]models.State),
		keyboard: keyboard,
	}, nil
}

// Start runs the long-poll loop until the updates channel closes. Updates
// are handled sequentially, so the per-chat state map needs no locking.
func (b *Bot) Start() {
	log.Printf("Authorized on account: %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for update := range b.api.GetUpdatesChan(u) {
		if update.Message == nil {
			continue
		}
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()
	chatID := message.Chat.ID
	key := models.NewSessionKey(models.PlatformTelegram, chatID)

	var (
		reply service.Reply
		err   error
	)
	switch message.Command() {
	case "start":
		reply, err = b.sessions.StartConversation(ctx, key)
	case "cancel":
		reply = b.sessions.EndConversation()
		b.states[chatID] = reply.State
		b.send(chatID, reply.Messages[0], tgbotapi.NewRemoveKeyboard(true))
		return
	default:
		reply, err = b.sessions.HandleTurn(ctx, key, b.states[chatID], message.Text)
	}

	if err != nil {
		log.Printf("Turn failed for %s: %v", key, err)
		b.send(chatID, service.MsgTryAgain, b.keyboard)
		return
	}

	b.states[chatID] = reply.State
	for _, text := range reply.Messages {
		b.send(chatID, text, b.keyboard)
	}
}

func (b *Bot) send(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
