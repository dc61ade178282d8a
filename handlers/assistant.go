package handlers

import (
	"net/http"

	chatRepo "inclusivehub/database/repository/chat"
	"inclusivehub/middleware"
	"inclusivehub/models"
	"inclusivehub/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler serves every AI-assisted endpoint.
type AssistantHandler struct {
	Svc      assistant.AssistantService
	Messages chatRepo.ChatMessageRepository
}

// NewAssistantHandler creates a new AssistantHandler instance.
func NewAssistantHandler(svc assistant.AssistantService, messages chatRepo.ChatMessageRepository) *AssistantHandler {
	return &AssistantHandler{Svc: svc, Messages: messages}
}

// ChatHandler handles POST /api/chat.
// Generation failures still answer 200 with a friendly apology; the real
// cause is logged so monitoring sees it.
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	result, err := h.Svc.Chat(c.Request.Context(), req)
	if err != nil {
		logger.Error("Chat generation failed", zap.String("sessionId", req.SessionID), zap.Error(err))
	}
	if result.MapData != nil {
		fields := []zap.Field{zap.String("query", result.MapData.Query)}
		if geo := middleware.GeoFromContext(c); geo != nil {
			fields = append(fields, zap.String("clientCity", geo.City), zap.String("clientCountry", geo.Country))
		}
		logger.Info("Served location-seeking chat", fields...)
	}

	// Pass-through logging of the exchange; pipeline correctness never
	// depends on it.
	if h.Messages != nil && req.SessionID != "" {
		ctx := c.Request.Context()
		if _, err := h.Messages.Create(ctx, models.ChatMessage{
			SessionID: req.SessionID, Role: "user", Content: req.Message,
		}); err != nil {
			logger.Warn("Failed to store user message", zap.Error(err))
		}
		if _, err := h.Messages.Create(ctx, models.ChatMessage{
			SessionID: req.SessionID, Role: "assistant", Content: result.Response,
		}); err != nil {
			logger.Warn("Failed to store assistant message", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}

// ChatHistoryHandler handles GET /api/chat/history/:sessionId.
func (h *AssistantHandler) ChatHistoryHandler(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionId")

	messages, err := h.Messages.GetBySession(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("Failed to load chat history", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat history"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// RealtimeChatHandler handles POST /api/realtime-chat.
func (h *AssistantHandler) RealtimeChatHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Message string `json:"message"`
		Context string `json:"context,omitempty"`
		UserID  string `json:"userId,omitempty"`
		RoomID  string `json:"roomId,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	response, err := h.Svc.RealtimeChat(c.Request.Context(), req.Message, req.Context, req.UserID, req.RoomID)
	if err != nil {
		logger.Error("Realtime chat failed", zap.String("roomId", req.RoomID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": response})
}
