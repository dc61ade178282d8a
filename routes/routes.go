package routes

import (
	"net/http"
	"time"

	"inclusivehub/handlers"
	"inclusivehub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes registers AI-assisted endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/chat", hb.ChatHandler)
		api.GET("/chat/history/:sessionId", hb.ChatHistoryHandler)
		api.POST("/realtime-chat", hb.RealtimeChatHandler)
		api.POST("/voice/process", hb.VoiceCommandHandler)
		api.POST("/vision-analyze", hb.VisionAnalyzeHandler)
		api.POST("/document-analyze", hb.DocumentAnalyzeHandler)
		api.POST("/speech-analyze", hb.SpeechAnalyzeHandler)
	}
}

// RegisterPlaceRoutes registers accessible-place directory endpoints.
func RegisterPlaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/places")
	{
		api.GET("", hb.ListPlacesHandler)
		api.POST("", hb.CreatePlaceHandler)
		api.POST("/analyze-image", hb.PlaceImageHandler)
		api.GET("/:id", hb.GetPlaceHandler)
		api.DELETE("/:id", hb.DeletePlaceHandler)
	}
}

// RegisterMarketplaceRoutes registers marketplace endpoints.
func RegisterMarketplaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/marketplace")
	{
		api.GET("", hb.ListMarketplaceHandler)
		api.POST("", hb.CreateMarketplaceHandler)
		api.POST("/generate-description", hb.ListingCopyHandler)
		api.GET("/:id", hb.GetMarketplaceHandler)
		api.DELETE("/:id", hb.DeleteMarketplaceHandler)
	}
}

// RegisterCommunityRoutes registers community feed endpoints.
func RegisterCommunityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/posts")
	{
		api.GET("", hb.ListPostsHandler)
		api.POST("", hb.CreatePostHandler)
		api.GET("/:id", hb.GetPostHandler)
		api.POST("/:id/like", hb.LikePostHandler)
		api.DELETE("/:id", hb.DeletePostHandler)
	}
}

// RegisterEducationRoutes registers education endpoints.
func RegisterEducationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/education")
	{
		api.GET("", hb.ListModulesHandler)
		api.POST("", hb.CreateModuleHandler)
		api.POST("/simplify", hb.SimplifyContentHandler)
		api.GET("/:id", hb.GetModuleHandler)
	}
}

// RegisterNGORoutes registers NGO directory endpoints.
func RegisterNGORoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ngos")
	{
		api.GET("", hb.ListNGOsHandler)
		api.POST("", hb.CreateNGOHandler)
		api.GET("/:id", hb.GetNGOHandler)
	}
}

// RegisterCrowdfundingRoutes registers crowdfunding endpoints.
func RegisterCrowdfundingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/crowdfunding")
	{
		api.GET("", hb.ListCampaignsHandler)
		api.POST("", hb.CreateCampaignHandler)
		api.GET("/:id", hb.GetCampaignHandler)
		api.POST("/:id/donate", hb.DonateHandler)
	}
}

// RegisterStorageRoutes registers media upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/uploads")
	{
		api.POST("/:type/:bucket", hb.UploadFileHandler)
		api.GET("/:type/:bucket/:filename", hb.GetDownloadURLHandler)
		api.DELETE("/:type/:bucket/:filename", hb.DeleteFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAssistantRoutes(r, hb)
	RegisterPlaceRoutes(r, hb)
	RegisterMarketplaceRoutes(r, hb)
	RegisterCommunityRoutes(r, hb)
	RegisterEducationRoutes(r, hb)
	RegisterNGORoutes(r, hb)
	RegisterCrowdfundingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
