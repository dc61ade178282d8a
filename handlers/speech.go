package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"inclusivehub/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxAudioFileSize = 10 * 1024 * 1024 // 10MB

var audioMIMETypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".webm": "audio/webm",
}

// SpeechHandler serves multipart audio uploads for transcription.
type SpeechHandler struct {
	Svc assistant.AssistantService
}

// NewSpeechHandler creates a new SpeechHandler instance.
func NewSpeechHandler(svc assistant.AssistantService) *SpeechHandler {
	return &SpeechHandler{Svc: svc}
}

// AnalyzeHandler handles POST /api/speech-analyze. The audio blob is sent
// to the model as-is; no local transcoding happens.
func (h *SpeechHandler) AnalyzeHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file is required"})
		return
	}
	if fileHeader.Size > maxAudioFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file exceeds the 10MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	mimeType, ok := audioMIMETypes[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported audio format: " + ext})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded audio", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audio file"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioFileSize))
	if err != nil {
		logger.Error("Failed to read uploaded audio", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audio file"})
		return
	}

	language := c.DefaultPostForm("language", "en")

	result, err := h.Svc.TranscribeAudio(c.Request.Context(), audio, mimeType, language)
	if err != nil {
		logger.Error("Speech analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze speech"})
		return
	}
	c.JSON(http.StatusOK, result)
}
