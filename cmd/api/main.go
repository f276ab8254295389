// main.go
package main

import (
	"log"
	"os"

	"github.com/BALAJIISWAROOP/Snap-Shots/assistant"
	"github.com/BALAJIISWAROOP/Snap-Shots/catalog"
	"github.com/BALAJIISWAROOP/Snap-Shots/engagement"
	"github.com/BALAJIISWAROOP/Snap-Shots/internal/platform"
	"github.com/BALAJIISWAROOP/Snap-Shots/storage"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type Server struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Router *gin.Engine
}

func NewServer() (*Server, error) {
	// Use the shared connection initializers
	db := platform.NewDBConnection()
	rdb := platform.NewRedisClient()

	// The catalog feed is loaded once; the engagement core works in memory.
	cat, err := catalog.Load(db)
	if err != nil {
		return nil, err
	}
	log.Printf("Catalog loaded: %d series, %d creators", len(cat.Series), len(cat.Creators))

	router := gin.Default()

	// Add CORS middleware for the storefront frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", os.Getenv("FRONTEND_URL"))
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	server := &Server{
		DB:     db,
		Redis:  rdb,
		Router: router,
	}

	server.setupRoutes(cat)

	return server, nil
}

func (s *Server) setupRoutes(cat *catalog.Catalog) {
	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		sqlDB, err := s.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}

		if err := sqlDB.Ping(); err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"status":   "healthy",
			"database": "connected",
		})
	})

	s.Router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Snapshots API v1"})
	})

	// Create handlers
	sets := storage.NewRedisStore(s.Redis)
	gen := assistant.NewOpenAIGenerator(platform.OpenAIKey(), platform.AssistantModel())

	catalogHandler := catalog.NewHandler(cat, sets)
	// Over HTTP the unlock POST itself is the viewer's confirmation.
	engagementHandler := engagement.NewHandler(cat, sets, engagement.AlwaysConfirm)
	assistantHandler := assistant.NewHandler(cat, gen)

	// Catalog routes
	seriesRoutes := s.Router.Group("/series")
	{
		seriesRoutes.GET("", catalogHandler.ListSeries)
		seriesRoutes.GET("/:id", catalogHandler.GetSeries)
		seriesRoutes.GET("/:id/related", catalogHandler.GetRelatedSeries)

		// Per-series engagement session
		seriesRoutes.GET("/:id/engagement", engagementHandler.GetEngagement)
		seriesRoutes.POST("/:id/unlock", engagementHandler.Unlock)
		seriesRoutes.POST("/:id/rating", engagementHandler.Rate)
		seriesRoutes.POST("/:id/watchlist", engagementHandler.ToggleWatchlist)
		seriesRoutes.DELETE("/:id/engagement", engagementHandler.CloseView)

		// Per-series assistant session
		seriesRoutes.GET("/:id/assistant", assistantHandler.GetSession)
		seriesRoutes.POST("/:id/assistant", assistantHandler.Ask)
		seriesRoutes.DELETE("/:id/assistant", assistantHandler.CloseSession)
	}

	creatorRoutes := s.Router.Group("/creators")
	{
		creatorRoutes.GET("/:id", catalogHandler.GetCreator)
		creatorRoutes.GET("/:id/series", catalogHandler.GetCreatorSeries)
		creatorRoutes.GET("/:id/follow", engagementHandler.GetFollow)
		creatorRoutes.POST("/:id/follow", engagementHandler.ToggleFollow)
	}

	s.Router.GET("/trending", catalogHandler.GetTrending)
}

func (s *Server) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s", port)
	return s.Router.Run(":" + port)
}

func main() {
	server, err := NewServer()
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	if err := server.Run(); err != nil {
		log.Fatal("Failed to run server:", err)
	}
}
