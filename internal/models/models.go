package models

import (
	"encoding/json"
	"time"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Post struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Title             string         `gorm:"size:255;not null" json:"title"`
	Content           string         `gorm:"type:text;not null" json:"content"`
	ThumbnailImageKey string         `gorm:"size:255" json:"thumbnailImageKey"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	PostCategories    []PostCategory `gorm:"foreignKey:PostID" json:"postCategories"`
}

// PostCategory is the join row between a post and a category. Its rows are
// written only by the post store; both foreign keys cascade so that deleting
// either side never leaves a dangling association.
type PostCategory struct {
	PostID     uint     `gorm:"primaryKey;autoIncrement:false" json:"postId"`
	CategoryID uint     `gorm:"primaryKey;autoIncrement:false" json:"categoryId"`
	Post       *Post    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Category   Category `gorm:"constraint:OnDelete:CASCADE" json:"category"`
}

func (PostCategory) TableName() string {
	return "post_categories"
}

// MarshalJSON trims the nested category to the {id, name} shape the
// deployed clients consume.
func (pc PostCategory) MarshalJSON() ([]byte, error) {
	type nestedCategory struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	return json.Marshal(struct {
		PostID     uint           `json:"postId"`
		CategoryID uint           `json:"categoryId"`
		Category   nestedCategory `json:"category"`
	}{
		PostID:     pc.PostID,
		CategoryID: pc.CategoryID,
		Category:   nestedCategory{ID: pc.Category.ID, Name: pc.Category.Name},
	})
}

// Request structures
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type PostRequest struct {
	Title             string        `json:"title" binding:"required"`
	Content           string        `json:"content"`
	ThumbnailImageKey string        `json:"thumbnailImageKey"`
	Categories        []CategoryRef `json:"categories"`
}

// CategoryRef mirrors the `categories: [{id}]` shape the admin form sends.
type CategoryRef struct {
	ID uint `json:"id"`
}
