package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akary-web/blog-api/api/handlers"
	"github.com/akary-web/blog-api/api/middleware"
	"github.com/akary-web/blog-api/internal/auth"
)

// SetupPostRoutes registers both the authenticated admin post endpoints and
// the unauthenticated public read endpoints.
func SetupPostRoutes(router *gin.Engine, db *gorm.DB, gate *auth.Client) {
	postHandler := handlers.NewPostHandler(db)
	publicHandler := handlers.NewPublicPostHandler(db)

	// Public routes
	posts := router.Group("/api/posts")
	{
		posts.GET("", publicHandler.GetAllPosts)
		posts.GET("/:id", publicHandler.GetPostByID)
	}

	// Protected routes
	admin := router.Group("/api/admin/posts")
	admin.Use(middleware.AuthRequired(gate))
	{
		admin.GET("", postHandler.GetAllPosts)
		admin.POST("", postHandler.CreatePost)
		admin.GET("/:id", postHandler.GetPostByID)
		admin.PUT("/:id", postHandler.UpdatePost)
		admin.DELETE("/:id", postHandler.DeletePost)
	}
}
