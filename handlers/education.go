package handlers

import (
	"net/http"

	educationRepo "inclusivehub/database/repository/education"
	"inclusivehub/models"
	"inclusivehub/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EducationHandler serves learning modules, with on-demand simplification.
type EducationHandler struct {
	Repo educationRepo.EducationRepository
	Svc  assistant.AssistantService
}

// NewEducationHandler creates a new EducationHandler instance.
func NewEducationHandler(repo educationRepo.EducationRepository, svc assistant.AssistantService) *EducationHandler {
	return &EducationHandler{Repo: repo, Svc: svc}
}

// ListHandler handles GET /api/education.
func (h *EducationHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	modules, err := h.Repo.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list education modules", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list modules"})
		return
	}
	c.JSON(http.StatusOK, modules)
}

// GetHandler handles GET /api/education/:id.
func (h *EducationHandler) GetHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	module, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch education module", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch module"})
		return
	}
	if module == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return
	}
	c.JSON(http.StatusOK, module)
}

// CreateHandler handles POST /api/education.
func (h *EducationHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	var module models.EducationModule
	if err := c.ShouldBindJSON(&module); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if module.Title == "" || module.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), module)
	if err != nil {
		logger.Error("Failed to create education module", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create module"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// SimplifyHandler handles POST /api/education/simplify. It rewrites content
// for the requested reading level; on model failure the original text comes
// back untouched.
func (h *EducationHandler) SimplifyHandler(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
		Level   string `json:"level,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	simplified := h.Svc.SimplifyContent(c.Request.Context(), req.Content, req.Level)
	c.JSON(http.StatusOK, gin.H{"simplified": simplified})
}
