package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akary-web/blog-api/api/middleware"
	"github.com/akary-web/blog-api/internal/auth"
)

// SetupRouter builds the engine with CORS, request ids and every API route
// registered. The swagger route is attached separately in main.
func SetupRouter(db *gorm.DB, gate *auth.Client, frontendURL string) *gin.Engine {
	router := gin.Default()

	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{frontendURL},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))
	router.Use(middleware.RequestID())

	SetupPostRoutes(router, db, gate)
	SetupCategoryRoutes(router, db, gate)

	return router
}
