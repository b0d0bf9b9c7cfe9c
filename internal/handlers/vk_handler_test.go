package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCallbackRouter(confirmation, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewVKHandler(nil, nil, confirmation, secret)
	r := gin.New()
	r.POST("/vk/callback", handler.HandleCallback)
	return r
}

func postCallback(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/vk/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCallbackConfirmation(t *testing.T) {
	r := newCallbackRouter("abc123", "")

	w := postCallback(r, `{"type":"confirmation","group_id":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "abc123" {
		t.Errorf("expected the confirmation code, got %q", w.Body.String())
	}
}

func TestCallbackRejectsBadSecret(t *testing.T) {
	r := newCallbackRouter("abc123", "s3cret")

	w := postCallback(r, `{"type":"confirmation","secret":"wrong"}`)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestCallbackAcknowledgesUnknownEvents(t *testing.T) {
	r := newCallbackRouter("abc123", "")

	// Unknown event types are acknowledged so VK stops retrying them.
	w := postCallback(r, `{"type":"message_typing_state"}`)
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("expected ok acknowledgement, got %d %q", w.Code, w.Body.String())
	}
}

func TestCallbackRejectsGarbage(t *testing.T) {
	r := newCallbackRouter("abc123", "")

	w := postCallback(r, `not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
