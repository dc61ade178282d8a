package handlers

import (
	"net/http"

	ngoRepo "inclusivehub/database/repository/ngo"
	"inclusivehub/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NGOHandler serves the NGO directory.
type NGOHandler struct {
	Repo ngoRepo.NGORepository
}

// NewNGOHandler creates a new NGOHandler instance.
func NewNGOHandler(repo ngoRepo.NGORepository) *NGOHandler {
	return &NGOHandler{Repo: repo}
}

// ListHandler handles GET /api/ngos.
func (h *NGOHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	ngos, err := h.Repo.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list NGOs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list NGOs"})
		return
	}
	c.JSON(http.StatusOK, ngos)
}

// GetHandler handles GET /api/ngos/:id.
func (h *NGOHandler) GetHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	ngo, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch NGO", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch NGO"})
		return
	}
	if ngo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "NGO not found"})
		return
	}
	c.JSON(http.StatusOK, ngo)
}

// CreateHandler handles POST /api/ngos.
func (h *NGOHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	var ngo models.NGO
	if err := c.ShouldBindJSON(&ngo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if ngo.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), ngo)
	if err != nil {
		logger.Error("Failed to create NGO", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create NGO"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
