package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akary-web/blog-api/internal/models"
	"github.com/akary-web/blog-api/internal/store"
)

// PostHandler serves the admin post endpoints.
type PostHandler struct {
	posts *store.PostStore
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{posts: store.NewPostStore(db)}
}

// @Summary List posts
// @Description Get all posts with their categories, newest first
// @Tags admin-posts
// @Produce json
// @Security AdminToken
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /admin/posts [get]
func (h *PostHandler) GetAllPosts(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "posts": posts})
}

// @Summary Get post
// @Description Get a single post by id with its categories
// @Tags admin-posts
// @Produce json
// @Security AdminToken
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /admin/posts/{id} [get]
func (h *PostHandler) GetPostByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "post": post})
}

// @Summary Create post
// @Description Create a post and its category associations atomically
// @Tags admin-posts
// @Accept json
// @Produce json
// @Security AdminToken
// @Param post body models.PostRequest true "Post details"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Router /admin/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": err.Error()})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": msgCreated, "id": post.ID})
}

// @Summary Update post
// @Description Overwrite a post's fields and reconcile its category set
// @Tags admin-posts
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "Post ID"
// @Param post body models.PostRequest true "Updated post details"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /admin/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": err.Error()})
		return
	}

	post, err := h.posts.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": msgUpdated, "post": post})
}

// @Summary Delete post
// @Description Delete a post together with its category associations
// @Tags admin-posts
// @Produce json
// @Security AdminToken
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": msgDeleted})
}
