package handlers

import (
	"net/http"

	"inclusivehub/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocumentHandler serves remote-document summarisation.
type DocumentHandler struct {
	Svc assistant.AssistantService
}

// NewDocumentHandler creates a new DocumentHandler instance.
func NewDocumentHandler(svc assistant.AssistantService) *DocumentHandler {
	return &DocumentHandler{Svc: svc}
}

// AnalyzeHandler handles POST /api/document-analyze.
func (h *DocumentHandler) AnalyzeHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		DocumentURL  string `json:"documentUrl"`
		AnalysisType string `json:"analysisType,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.DocumentURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document URL is required"})
		return
	}

	result, err := h.Svc.AnalyzeDocument(c.Request.Context(), req.DocumentURL, req.AnalysisType)
	if err != nil {
		logger.Error("Document analysis failed", zap.String("url", req.DocumentURL), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze document"})
		return
	}
	c.JSON(http.StatusOK, result)
}
