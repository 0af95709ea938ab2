package main

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/akary-web/blog-api/api/routes"
	"github.com/akary-web/blog-api/config"
	_ "github.com/akary-web/blog-api/docs" // Import docs
	"github.com/akary-web/blog-api/internal/auth"
	"github.com/akary-web/blog-api/internal/db"
)

// @title           Blog CMS API
// @version         1.0
// @description     Public blog read API and authenticated admin back-office for posts and categories.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  AdminToken
// @in                          header
// @name                        Authorization
// @description                 Raw access token issued by the auth provider (no Bearer prefix).
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set gin mode based on config
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db.InitDB(cfg)

	// Auto migrate the schema
	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Auth gate for the admin surface
	gate := auth.NewClient(cfg)

	// Initialize router
	router := routes.SetupRouter(db.DB, gate, cfg.FrontendURL)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Start server
	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
