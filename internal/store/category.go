package store

import (
	"context"
	"errors"
	"strings"

	"github.com/akary-web/blog-api/internal/models"
	"gorm.io/gorm"
)

// CategoryStore is the CRUD adapter over the categories table.
type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns all categories, newest first.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if result := s.db.WithContext(ctx).Order("created_at DESC").Find(&categories); result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (s *CategoryStore) Get(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if result := s.db.WithContext(ctx).First(&category, id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &category, nil
}

func (s *CategoryStore) Create(ctx context.Context, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	category := models.Category{Name: name}
	if result := s.db.WithContext(ctx).Create(&category); result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (s *CategoryStore) Update(ctx context.Context, id uint, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if result := s.db.WithContext(ctx).Save(category); result.Error != nil {
		return nil, result.Error
	}
	return category, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
