package handlers

import (
	"net/http"

	marketRepo "inclusivehub/database/repository/marketplace"
	"inclusivehub/models"
	"inclusivehub/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MarketplaceHandler serves marketplace listings for community creators.
type MarketplaceHandler struct {
	Repo marketRepo.MarketplaceRepository
	Svc  assistant.AssistantService
}

// NewMarketplaceHandler creates a new MarketplaceHandler instance.
func NewMarketplaceHandler(repo marketRepo.MarketplaceRepository, svc assistant.AssistantService) *MarketplaceHandler {
	return &MarketplaceHandler{Repo: repo, Svc: svc}
}

// ListHandler handles GET /api/marketplace.
func (h *MarketplaceHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list marketplace items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetHandler handles GET /api/marketplace/:id.
func (h *MarketplaceHandler) GetHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	item, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch marketplace item", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateHandler handles POST /api/marketplace.
func (h *MarketplaceHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	var item models.MarketplaceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if item.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), item)
	if err != nil {
		logger.Error("Failed to create marketplace item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GenerateDescriptionHandler handles POST /api/marketplace/generate-description.
// It drafts listing copy from a title and an optional image analysis.
func (h *MarketplaceHandler) GenerateDescriptionHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Title         string `json:"title"`
		ImageAnalysis string `json:"imageAnalysis,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	copyResult, err := h.Svc.GenerateListingDescription(c.Request.Context(), req.Title, req.ImageAnalysis)
	if err != nil {
		logger.Error("Failed to generate listing description", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate description"})
		return
	}
	c.JSON(http.StatusOK, copyResult)
}

// DeleteHandler handles DELETE /api/marketplace/:id.
func (h *MarketplaceHandler) DeleteHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete marketplace item", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
