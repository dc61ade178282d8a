package handlers

import (
	"net/http"
	"strings"

	placeRepo "inclusivehub/database/repository/place"
	"inclusivehub/models"
	"inclusivehub/tasks"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// PlaceHandler serves the accessible-place directory.
type PlaceHandler struct {
	Repo       placeRepo.PlaceRepository
	TaskClient *asynq.Client
}

// NewPlaceHandler creates a new PlaceHandler instance.
func NewPlaceHandler(repo placeRepo.PlaceRepository, taskClient *asynq.Client) *PlaceHandler {
	return &PlaceHandler{Repo: repo, TaskClient: taskClient}
}

// ListHandler handles GET /api/places with optional type and features filters.
func (h *PlaceHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	filter := &models.PlaceFilter{Type: c.Query("type")}
	if raw := c.Query("features"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				filter.Features = append(filter.Features, f)
			}
		}
	}

	places, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list places", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list places"})
		return
	}
	c.JSON(http.StatusOK, places)
}

// GetHandler handles GET /api/places/:id.
func (h *PlaceHandler) GetHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	place, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch place", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch place"})
		return
	}
	if place == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}
	c.JSON(http.StatusOK, place)
}

// CreateHandler handles POST /api/places. When a photo is attached the
// accessibility analysis runs in the background and updates the record later.
func (h *PlaceHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		models.Place
		ImageBase64 string `json:"imageBase64,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Name == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and type are required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), req.Place)
	if err != nil {
		logger.Error("Failed to create place", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create place"})
		return
	}

	if req.ImageBase64 != "" && h.TaskClient != nil {
		task, err := tasks.NewAnalyzePlaceImageTask(tasks.AnalyzePlaceImagePayload{
			PlaceID:     id,
			ImageBase64: req.ImageBase64,
		})
		if err != nil {
			logger.Warn("Failed to build analysis task", zap.String("placeId", id), zap.Error(err))
		} else if _, err := h.TaskClient.Enqueue(task); err != nil {
			logger.Warn("Failed to enqueue analysis task", zap.String("placeId", id), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteHandler handles DELETE /api/places/:id.
func (h *PlaceHandler) DeleteHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete place", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Place deleted"})
}
