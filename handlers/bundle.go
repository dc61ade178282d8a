package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Assistant endpoints
	ChatHandler            gin.HandlerFunc
	ChatHistoryHandler     gin.HandlerFunc
	RealtimeChatHandler    gin.HandlerFunc
	VoiceCommandHandler    gin.HandlerFunc
	VisionAnalyzeHandler   gin.HandlerFunc
	PlaceImageHandler      gin.HandlerFunc
	DocumentAnalyzeHandler gin.HandlerFunc
	SpeechAnalyzeHandler   gin.HandlerFunc
	SimplifyContentHandler gin.HandlerFunc
	ListingCopyHandler     gin.HandlerFunc

	// Place directory endpoints
	ListPlacesHandler  gin.HandlerFunc
	GetPlaceHandler    gin.HandlerFunc
	CreatePlaceHandler gin.HandlerFunc
	DeletePlaceHandler gin.HandlerFunc

	// Marketplace endpoints
	ListMarketplaceHandler   gin.HandlerFunc
	GetMarketplaceHandler    gin.HandlerFunc
	CreateMarketplaceHandler gin.HandlerFunc
	DeleteMarketplaceHandler gin.HandlerFunc

	// Community endpoints
	ListPostsHandler  gin.HandlerFunc
	GetPostHandler    gin.HandlerFunc
	CreatePostHandler gin.HandlerFunc
	LikePostHandler   gin.HandlerFunc
	DeletePostHandler gin.HandlerFunc

	// Education endpoints
	ListModulesHandler  gin.HandlerFunc
	GetModuleHandler    gin.HandlerFunc
	CreateModuleHandler gin.HandlerFunc

	// NGO endpoints
	ListNGOsHandler  gin.HandlerFunc
	GetNGOHandler    gin.HandlerFunc
	CreateNGOHandler gin.HandlerFunc

	// Crowdfunding endpoints
	ListCampaignsHandler  gin.HandlerFunc
	GetCampaignHandler    gin.HandlerFunc
	CreateCampaignHandler gin.HandlerFunc
	DonateHandler         gin.HandlerFunc

	// Storage endpoints
	UploadFileHandler     gin.HandlerFunc
	GetDownloadURLHandler gin.HandlerFunc
	DeleteFileHandler     gin.HandlerFunc
}
