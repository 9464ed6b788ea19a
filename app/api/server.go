package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/findora-hu/findora/app/cfg"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler, feedsDir string) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware, the catalog is consumed from browsers
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler, feedsDir)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler, feedsDir string) {
	// Published catalog pages, exactly as written to disk
	r.Static("/feeds", feedsDir)

	// Health and status endpoints
	r.GET("/health", handler.GetHealth)
	r.GET("/stats", handler.GetStats)

	// Partner endpoints
	r.GET("/partners", handler.ListPartners)
	r.GET("/partners/:id/runs", handler.GetPartnerRuns)

	// Hydrated item lookup across published pages
	r.GET("/items", handler.GetItems)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "Findora Catalog",
			"version":     cfg.Get().Version,
			"description": "Affiliate product feed aggregator with normalization, classification and pagination",
			"endpoints": map[string]string{
				"feeds":    "/feeds/<partner>/page-0001.json",
				"category": "/feeds/<partner>/<category>/page-0001.json",
				"deals":    "/feeds/<partner>/akcio/page-0001.json",
				"partners": "/partners",
				"items":    "/items?partner=<id>&category=<slug>",
				"health":   "/health",
				"stats":    "/stats",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
