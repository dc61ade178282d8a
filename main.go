// File: inclusivehub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inclusivehub/config"
	"inclusivehub/database"
	chatRepoPkg "inclusivehub/database/repository/chat"
	communityRepoPkg "inclusivehub/database/repository/community"
	crowdfundingRepoPkg "inclusivehub/database/repository/crowdfunding"
	educationRepoPkg "inclusivehub/database/repository/education"
	marketRepoPkg "inclusivehub/database/repository/marketplace"
	ngoRepoPkg "inclusivehub/database/repository/ngo"
	placeRepoPkg "inclusivehub/database/repository/place"
	"inclusivehub/handlers"
	"inclusivehub/middleware"
	"inclusivehub/routes"
	"inclusivehub/services/assistant"
	"inclusivehub/tasks"
	"inclusivehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Gemini client shared by every assisted pipeline.
	geminiTimeout := time.Duration(config.AppConfig.GeminiTimeoutSecs) * time.Second
	gemini, err := assistant.NewGeminiClient(
		context.Background(),
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiTextModel,
		config.AppConfig.GeminiVisionModel,
		geminiTimeout,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	defer gemini.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.GeolocationMiddleware(middleware.NewGeoResolver(utils.GetCacheClient())))

	// repositories.
	placeRepo := placeRepoPkg.NewMongoPlaceRepo()
	marketRepo := marketRepoPkg.NewMongoMarketplaceRepo()
	communityRepo := communityRepoPkg.NewMongoCommunityRepo()
	educationRepo := educationRepoPkg.NewMongoEducationRepo()
	ngoRepo := ngoRepoPkg.NewMongoNGORepo()
	crowdfundingRepo := crowdfundingRepoPkg.NewMongoCrowdfundingRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()

	// services.
	historyStore := assistant.NewRedisHistoryStore(utils.GetHistoryCacheClient(), 30*time.Minute)
	assistantSvc := assistant.NewDefaultAssistantService(
		gemini,
		assistant.NewStaticGazetteer(),
		historyStore,
		logger,
	)

	// handlers.
	assistantHandler := handlers.NewAssistantHandler(assistantSvc, chatRepo)
	voiceHandler := handlers.NewVoiceHandler(assistantSvc)
	visionHandler := handlers.NewVisionHandler(assistantSvc)
	documentHandler := handlers.NewDocumentHandler(assistantSvc)
	speechHandler := handlers.NewSpeechHandler(assistantSvc)
	placeHandler := handlers.NewPlaceHandler(placeRepo, tasks.NewTaskClient())
	marketplaceHandler := handlers.NewMarketplaceHandler(marketRepo, assistantSvc)
	communityHandler := handlers.NewCommunityHandler(communityRepo)
	educationHandler := handlers.NewEducationHandler(educationRepo, assistantSvc)
	ngoHandler := handlers.NewNGOHandler(ngoRepo)
	crowdfundingHandler := handlers.NewCrowdfundingHandler(crowdfundingRepo)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Assistant endpoints.
		ChatHandler:            assistantHandler.ChatHandler,
		ChatHistoryHandler:     assistantHandler.ChatHistoryHandler,
		RealtimeChatHandler:    assistantHandler.RealtimeChatHandler,
		VoiceCommandHandler:    voiceHandler.ProcessCommandHandler,
		VisionAnalyzeHandler:   visionHandler.AnalyzeHandler,
		PlaceImageHandler:      visionHandler.AnalyzeAccessibilityHandler,
		DocumentAnalyzeHandler: documentHandler.AnalyzeHandler,
		SpeechAnalyzeHandler:   speechHandler.AnalyzeHandler,
		SimplifyContentHandler: educationHandler.SimplifyHandler,
		ListingCopyHandler:     marketplaceHandler.GenerateDescriptionHandler,

		// Place directory endpoints.
		ListPlacesHandler:  placeHandler.ListHandler,
		GetPlaceHandler:    placeHandler.GetHandler,
		CreatePlaceHandler: placeHandler.CreateHandler,
		DeletePlaceHandler: placeHandler.DeleteHandler,

		// Marketplace endpoints.
		ListMarketplaceHandler:   marketplaceHandler.ListHandler,
		GetMarketplaceHandler:    marketplaceHandler.GetHandler,
		CreateMarketplaceHandler: marketplaceHandler.CreateHandler,
		DeleteMarketplaceHandler: marketplaceHandler.DeleteHandler,

		// Community endpoints.
		ListPostsHandler:  communityHandler.ListHandler,
		GetPostHandler:    communityHandler.GetHandler,
		CreatePostHandler: communityHandler.CreateHandler,
		LikePostHandler:   communityHandler.LikeHandler,
		DeletePostHandler: communityHandler.DeleteHandler,

		// Education endpoints.
		ListModulesHandler:  educationHandler.ListHandler,
		GetModuleHandler:    educationHandler.GetHandler,
		CreateModuleHandler: educationHandler.CreateHandler,

		// NGO endpoints.
		ListNGOsHandler:  ngoHandler.ListHandler,
		GetNGOHandler:    ngoHandler.GetHandler,
		CreateNGOHandler: ngoHandler.CreateHandler,

		// Crowdfunding endpoints.
		ListCampaignsHandler:  crowdfundingHandler.ListHandler,
		GetCampaignHandler:    crowdfundingHandler.GetHandler,
		CreateCampaignHandler: crowdfundingHandler.CreateHandler,
		DonateHandler:         crowdfundingHandler.DonateHandler,

		// Storage endpoints.
		UploadFileHandler:     storageHandler.UploadFileHandler,
		GetDownloadURLHandler: storageHandler.GetDownloadURLHandler,
		DeleteFileHandler:     storageHandler.DeleteFileHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for place-photo accessibility analysis.
	go tasks.InitAnalysisWorker(assistantSvc, placeRepo)

	// The task-queue Redis DB is pinged through a dedicated client since
	// asynq manages its own connections internally.
	taskQueueRedis := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache":   utils.GetCacheClient(),
			"history": utils.GetHistoryCacheClient(),
			"tasks":   taskQueueRedis,
		},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
