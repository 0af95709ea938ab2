package store

import (
	"context"
	"errors"
	"strings"

	"github.com/akary-web/blog-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostStore is the CRUD adapter over the posts table. It also owns every
// row of post_categories: association writes happen here and nowhere else,
// always inside a single transaction.
type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// List returns all posts, newest first, with their categories resolved
// through the join rows.
func (s *PostStore) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	result := s.db.WithContext(ctx).
		Preload("PostCategories.Category").
		Order("created_at DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostStore) Get(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	result := s.db.WithContext(ctx).
		Preload("PostCategories.Category").
		First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &post, nil
}

// Create inserts the post row and one join row per referenced category in a
// single transaction. A category id that does not resolve fails the whole
// transaction, so a post is never left partially categorized.
func (s *PostStore) Create(ctx context.Context, req models.PostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	post := models.Post{
		Title:             req.Title,
		Content:           req.Content,
		ThumbnailImageKey: req.ThumbnailImageKey,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit(clause.Associations).Create(&post); result.Error != nil {
			return result.Error
		}
		return insertJoinRows(tx, post.ID, categorySet(req.Categories))
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, post.ID)
}

// Update overwrites the scalar fields and reconciles the association set:
// only join rows in the symmetric difference between the stored set and the
// requested set are written, all inside one transaction.
func (s *PostStore) Update(ctx context.Context, id uint, req models.PostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if result := tx.First(&post, id); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return result.Error
		}

		post.Title = req.Title
		post.Content = req.Content
		post.ThumbnailImageKey = req.ThumbnailImageKey
		if result := tx.Omit(clause.Associations).Save(&post); result.Error != nil {
			return result.Error
		}

		var existing []models.PostCategory
		if result := tx.Where("post_id = ?", id).Find(&existing); result.Error != nil {
			return result.Error
		}

		current := make(map[uint]bool, len(existing))
		for _, row := range existing {
			current[row.CategoryID] = true
		}
		desired := categorySet(req.Categories)

		var removed []uint
		for categoryID := range current {
			if !desired[categoryID] {
				removed = append(removed, categoryID)
			}
		}
		if len(removed) > 0 {
			result := tx.Where("post_id = ? AND category_id IN ?", id, removed).
				Delete(&models.PostCategory{})
			if result.Error != nil {
				return result.Error
			}
		}

		added := make(map[uint]bool)
		for categoryID := range desired {
			if !current[categoryID] {
				added[categoryID] = true
			}
		}
		return insertJoinRows(tx, id, added)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes the post and its join rows in one transaction. The join
// rows are deleted explicitly rather than left to the FK cascade.
func (s *PostStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("post_id = ?", id).Delete(&models.PostCategory{}); result.Error != nil {
			return result.Error
		}

		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// categorySet collapses the request's `[{id}, ...]` list into a set, so
// duplicates and ordering in the payload are irrelevant.
func categorySet(refs []models.CategoryRef) map[uint]bool {
	set := make(map[uint]bool, len(refs))
	for _, ref := range refs {
		set[ref.ID] = true
	}
	return set
}

func insertJoinRows(tx *gorm.DB, postID uint, categoryIDs map[uint]bool) error {
	for categoryID := range categoryIDs {
		var category models.Category
		if result := tx.First(&category, categoryID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return result.Error
		}

		join := models.PostCategory{PostID: postID, CategoryID: categoryID}
		if result := tx.Omit(clause.Associations).Create(&join); result.Error != nil {
			return result.Error
		}
	}
	return nil
}
