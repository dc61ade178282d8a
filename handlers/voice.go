package handlers

import (
	"net/http"

	"inclusivehub/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VoiceHandler turns spoken transcripts into navigation and query actions.
type VoiceHandler struct {
	Svc assistant.AssistantService
}

// NewVoiceHandler creates a new VoiceHandler instance.
func NewVoiceHandler(svc assistant.AssistantService) *VoiceHandler {
	return &VoiceHandler{Svc: svc}
}

// ProcessCommandHandler handles POST /api/voice/process.
func (h *VoiceHandler) ProcessCommandHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Transcript string `json:"transcript"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Transcript == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transcript is required"})
		return
	}

	result, err := h.Svc.ProcessVoiceCommand(c.Request.Context(), req.Transcript)
	if err != nil {
		logger.Error("Voice command processing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process voice command"})
		return
	}
	c.JSON(http.StatusOK, result)
}
