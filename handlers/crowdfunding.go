package handlers

import (
	"net/http"

	crowdfundingRepo "inclusivehub/database/repository/crowdfunding"
	"inclusivehub/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CrowdfundingHandler serves accessibility fundraising campaigns.
type CrowdfundingHandler struct {
	Repo crowdfundingRepo.CrowdfundingRepository
}

// NewCrowdfundingHandler creates a new CrowdfundingHandler instance.
func NewCrowdfundingHandler(repo crowdfundingRepo.CrowdfundingRepository) *CrowdfundingHandler {
	return &CrowdfundingHandler{Repo: repo}
}

// ListHandler handles GET /api/crowdfunding.
func (h *CrowdfundingHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	campaigns, err := h.Repo.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list campaigns", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list campaigns"})
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// GetHandler handles GET /api/crowdfunding/:id.
func (h *CrowdfundingHandler) GetHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	campaign, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch campaign", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaign"})
		return
	}
	if campaign == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// CreateHandler handles POST /api/crowdfunding.
func (h *CrowdfundingHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	var campaign models.CrowdfundingCampaign
	if err := c.ShouldBindJSON(&campaign); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if campaign.Title == "" || campaign.GoalAmount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and a positive goal amount are required"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), campaign)
	if err != nil {
		logger.Error("Failed to create campaign", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DonateHandler handles POST /api/crowdfunding/:id/donate.
func (h *CrowdfundingHandler) DonateHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	campaign, err := h.Repo.Donate(c.Request.Context(), id, req.Amount)
	if err != nil {
		logger.Error("Failed to record donation", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		return
	}
	if campaign == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		return
	}
	c.JSON(http.StatusOK, campaign)
}
