package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akary-web/blog-api/internal/models"
	"github.com/akary-web/blog-api/internal/store"
)

// CategoryHandler serves the admin category endpoints.
type CategoryHandler struct {
	categories *store.CategoryStore
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{categories: store.NewCategoryStore(db)}
}

// @Summary List categories
// @Description Get all categories, newest first
// @Tags admin-categories
// @Produce json
// @Security AdminToken
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /admin/categories [get]
func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "categories": categories})
}

// @Summary Get category
// @Description Get a single category by id
// @Tags admin-categories
// @Produce json
// @Security AdminToken
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "category": category})
}

// @Summary Create category
// @Description Create a new category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Security AdminToken
// @Param category body models.CategoryRequest true "Category details"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Router /admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": err.Error()})
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": msgCreated, "id": category.ID})
}

// @Summary Update category
// @Description Rename an existing category
// @Tags admin-categories
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "Category ID"
// @Param category body models.CategoryRequest true "Category details"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": err.Error()})
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": msgUpdated, "category": category})
}

// @Summary Delete category
// @Description Delete a category; posts referencing it are detached
// @Tags admin-categories
// @Produce json
// @Security AdminToken
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": msgDeleted})
}
