package handlers

import (
	"context"
	"log"
	"net/http"
	"sync"

	"quiz-bot/internal/models"
	"quiz-bot/internal/service"
	"quiz-bot/internal/vk"

	"github.com/gin-gonic/gin"
)

// VKHandler implements the VK Callback API endpoint. VK retries webhook
// deliveries and may deliver different users' events concurrently, so the
// per-user state map is locked.
type VKHandler struct {
	Sessions     *service.SessionService
	Client       *vk.Client
	Confirmation string
	Secret       string

	mu       sync.Mutex
	states   map[int64]models.State
	keyboard string
}

func NewVKHandler(sessions *service.SessionService, client *vk.Client, confirmation, secret string) *VKHandler {
	return &VKHandler{
		Sessions:     sessions,
		Client:       client,
		Confirmation: confirmation,
		Secret:       secret,
		states:       make(map[int64]models.State),
		keyboard:     vk.Keyboard(),
	}
}

type callbackEvent struct {
	Type    string `json:"type"`
	Secret  string `json:"secret"`
	GroupID int64  `json:"group_id"`
	Object  struct {
		Message struct {
			FromID int64  `json:"from_id"`
			PeerID int64  `json:"peer_id"`
			Text   string `json:"text"`
		} `json:"message"`
	} `json:"object"`
}

// HandleCallback answers confirmation requests and dispatches new
// messages. Everything else is acknowledged with "ok" so VK stops
// retrying.
func (h *VKHandler) HandleCallback(c *gin.Context) {
	var event callbackEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback payload"})
		return
	}
	if h.Secret != "" && event.Secret != h.Secret {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bad secret"})
		return
	}

	switch event.Type {
	case "confirmation":
		c.String(http.StatusOK, h.Confirmation)
	case "message_new":
		h.handleMessage(c.Request.Context(), event)
		c.String(http.StatusOK, "ok")
	default:
		c.String(http.StatusOK, "ok")
	}
}

// "Начать" is what VK's start button sends on first contact.
const vkStartText = "Начать"

func (h *VKHandler) handleMessage(ctx context.Context, event callbackEvent) {
	userID := event.Object.Message.FromID
	peerID := event.Object.Message.PeerID
	text := event.Object.Message.Text
	key := models.NewSessionKey(models.PlatformVK, userID)

	var (
		reply service.Reply
		err   error
	)
	if text == vkStartText {
		reply, err = h.Sessions.StartConversation(ctx, key)
	} else {
		reply, err = h.Sessions.HandleTurn(ctx, key, h.state(userID), text)
	}

	if err != nil {
		log.Printf("Turn failed for %s: %v", key, err)
		h.deliver(ctx, peerID, service.MsgTryAgain)
		return
	}

	h.setState(userID, reply.State)
	h.deliver(ctx, peerID, reply.Messages...)
}

func (h *VKHandler) deliver(ctx context.Context, peerID int64, messages ...string) {
	for _, text := range messages {
		if err := h.Client.SendMessage(ctx, peerID, text, h.keyboard); err != nil {
			log.Printf("Error sending message: %v", err)
		}
	}
}

func (h *VKHandler) state(userID int64) models.State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.states[userID]
}

func (h *VKHandler) setState(userID int64, state models.State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.states[userID] = state
}
