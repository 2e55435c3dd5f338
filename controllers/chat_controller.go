package controllers

import (
	"net/http"
	"strings"

	"sweatfix/logger"
	"sweatfix/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatController struct {
	Coach *services.CoachService
}

func NewChatController(coach *services.CoachService) *ChatController {
	return &ChatController{Coach: coach}
}

type chatInput struct {
	Message string              `json:"message"`
	History []services.ChatTurn `json:"history"`
}

// Chat runs one coach round trip: message + rolling history in, displayable
// text out. Provider failures answer via the simulator and still return 200;
// only a local persistence fault after a successful extraction is a 500.
func (cc *ChatController) Chat(c *gin.Context) {
	userID := c.GetUint("userID")

	var input chatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply := cc.Coach.GetReply(c.Request.Context(), input.Message, input.History)

	text, err := services.ReconcileCoachReply(userID, reply)
	if err != nil {
		logger.L.Error("failed to persist extracted plan",
			zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
