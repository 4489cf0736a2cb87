package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"civic-report-backend/api"
	"civic-report-backend/internal/assistant"
	"civic-report-backend/internal/config"
	"civic-report-backend/internal/database"
	"civic-report-backend/internal/gemini"
	"civic-report-backend/internal/handlers"
	"civic-report-backend/internal/middleware"
	"civic-report-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Run migrations before opening the long-lived connection pool.
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()

	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}
	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	geminiClient := gemini.NewClient(cfg.GeminiAPIBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel,
		cfg.GeminiTimeout, cfg.GeminiMaxConcurrent)
	chatRouter := assistant.NewRouter(assistant.DefaultRules, geminiClient)

	reportHandler := handlers.NewReportHandler(dbClient, storageClient, realtimeClient)
	chatHandler := handlers.NewChatHandler(chatRouter)
	uploadsHandler := handlers.NewUploadsHandler(storageClient)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", handlers.HealthHandler)

	// Swagger UI over the embedded OpenAPI document.
	router.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/") })
	router.GET("/swagger/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	apiGroup := router.Group("/api")
	apiGroup.POST("/report", reportHandler.Submit)
	apiGroup.GET("/reports", reportHandler.List)
	apiGroup.GET("/count", reportHandler.Count)
	apiGroup.POST("/chat", chatHandler.Chat)

	router.GET("/uploads/*key", uploadsHandler.Get)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
