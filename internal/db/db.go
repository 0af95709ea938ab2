package db

import (
	"log"

	"github.com/akary-web/blog-api/config"
	"github.com/akary-web/blog-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(config config.Config) {
	var err error

	// Use the direct DATABASE_URL from .env
	dsn := config.DatabaseURL

	// Configure GORM
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Test the connection
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}

	err = sqlDB.Ping()
	if err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Database connection established successfully")
}

// Migrate creates or updates the posts, categories and post_categories
// tables.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&models.Category{}, &models.Post{}, &models.PostCategory{})
}
