package vk

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"quiz-bot/internal/service"
)

const (
	apiBase    = "https://api.vk.com/method"
	apiVersion = "5.131"
)

// Client is a minimal VK Bot API client covering what the quiz adapter
// needs: sending a message with an optional keyboard.
type Client struct {
	token string
	http  *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token: token,
		http:  &http.Client{Timeout: 10 * time.Second},
	}
}

type apiError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

// SendMessage delivers text to a peer. random_id deduplicates retried
// deliveries on VK's side.
func (c *Client) SendMessage(ctx context.Context, peerID int64, text, keyboard string) error {
	params := url.Values{
		"access_token": {c.token},
		"v":            {apiVersion},
		"peer_id":      {strconv.FormatInt(peerID, 10)},
		"message":      {text},
		"random_id":    {strconv.FormatInt(rand.Int63(), 10)},
	}
	if keyboard != "" {
		params.Set("keyboard", keyboard)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		apiBase+"/messages.send",
		strings.NewReader(params.Encode()),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("vk messages.send: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Error *apiError `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("vk messages.send: decode response: %w", err)
	}
	if result.Error != nil {
		return fmt.Errorf("vk messages.send: %d %s", result.Error.Code, result.Error.Message)
	}
	return nil
}

// Keyboard renders the standard quiz keyboard in VK's JSON format.
func Keyboard() string {
	type action struct {
		Type  string `json:"type"`
		Label string `json:"label"`
	}
	type button struct {
		Action action `json:"action"`
	}
	row := func(labels ...string) []button {
		buttons := make([]button, len(labels))
		for i, label := range labels {
			buttons[i] = button{Action: action{Type: "text", Label: label}}
		}
		return buttons
	}

	keyboard := struct {
		OneTime bool       `json:"one_time"`
		Buttons [][]button `json:"buttons"`
	}{
		Buttons: [][]button{
			row(service.ButtonNewQuestion, service.ButtonGiveUp),
			row(service.ButtonScore),
		},
	}
	payload, _ := json.Marshal(keyboard)
	return string(payload)
}
