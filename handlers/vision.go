package handlers

import (
	"net/http"

	"inclusivehub/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VisionHandler serves camera-frame and place-photo analysis.
type VisionHandler struct {
	Svc assistant.AssistantService
}

// NewVisionHandler creates a new VisionHandler instance.
func NewVisionHandler(svc assistant.AssistantService) *VisionHandler {
	return &VisionHandler{Svc: svc}
}

// AnalyzeHandler handles POST /api/vision-analyze. It describes a camera
// frame for a blind or low-vision user.
func (h *VisionHandler) AnalyzeHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		ImageBase64  string `json:"imageBase64"`
		AnalysisType string `json:"analysisType,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image data is required"})
		return
	}

	result, err := h.Svc.AnalyzeVision(c.Request.Context(), req.ImageBase64, req.AnalysisType)
	if err != nil {
		logger.Error("Vision analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// AnalyzeAccessibilityHandler handles POST /api/places/analyze-image. It
// extracts accessibility features from a place photo synchronously.
func (h *VisionHandler) AnalyzeAccessibilityHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		ImageBase64 string `json:"imageBase64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image data is required"})
		return
	}

	result, err := h.Svc.AnalyzeAccessibilityImage(c.Request.Context(), req.ImageBase64)
	if err != nil {
		logger.Error("Accessibility image analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}
	c.JSON(http.StatusOK, result)
}
