package handlers

import (
	"net/http"
	"strconv"

	"quiz-bot/internal/models"
	"quiz-bot/internal/service"

	"github.com/gin-gonic/gin"
)

// ScoreHandler exposes a user's counters over HTTP.
type ScoreHandler struct {
	Scores *service.ScoreService
}

func NewScoreHandler(scores *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{Scores: scores}
}

// GetScore returns the counters for one (platform, user) session.
func (h *ScoreHandler) GetScore(c *gin.Context) {
	platform := models.Platform(c.Param("platform"))
	if platform != models.PlatformTelegram && platform != models.PlatformVK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown platform"})
		return
	}
	userID, err := strconv.ParseInt(c.Param("user"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	score, err := h.Scores.Get(c.Request.Context(), models.NewSessionKey(platform, userID))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store unavailable"})
		return
	}
	c.JSON(http.StatusOK, score)
}
