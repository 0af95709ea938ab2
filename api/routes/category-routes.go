package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akary-web/blog-api/api/handlers"
	"github.com/akary-web/blog-api/api/middleware"
	"github.com/akary-web/blog-api/internal/auth"
)

// SetupCategoryRoutes registers the admin category endpoints. There is no
// public category surface.
func SetupCategoryRoutes(router *gin.Engine, db *gorm.DB, gate *auth.Client) {
	categoryHandler := handlers.NewCategoryHandler(db)

	categories := router.Group("/api/admin/categories")
	categories.Use(middleware.AuthRequired(gate))
	{
		categories.GET("", categoryHandler.GetAllCategories)
		categories.POST("", categoryHandler.CreateCategory)
		categories.GET("/:id", categoryHandler.GetCategoryByID)
		categories.PUT("/:id", categoryHandler.UpdateCategory)
		categories.DELETE("/:id", categoryHandler.DeleteCategory)
	}
}
