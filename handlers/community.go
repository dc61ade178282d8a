package handlers

import (
	"net/http"

	communityRepo "inclusivehub/database/repository/community"
	"inclusivehub/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommunityHandler serves the community feed.
type CommunityHandler struct {
	Repo communityRepo.CommunityRepository
}

// NewCommunityHandler creates a new CommunityHandler instance.
func NewCommunityHandler(repo communityRepo.CommunityRepository) *CommunityHandler {
	return &CommunityHandler{Repo: repo}
}

// ListHandler handles GET /api/posts.
func (h *CommunityHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	posts, err := h.Repo.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list community posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetHandler handles GET /api/posts/:id.
func (h *CommunityHandler) GetHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	post, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch community post", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreateHandler handles POST /api/posts.
func (h *CommunityHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	var post models.CommunityPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if post.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), post)
	if err != nil {
		logger.Error("Failed to create community post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// LikeHandler handles POST /api/posts/:id/like.
func (h *CommunityHandler) LikeHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	post, err := h.Repo.Like(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to like community post", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeleteHandler handles DELETE /api/posts/:id.
func (h *CommunityHandler) DeleteHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete community post", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
