package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akary-web/blog-api/internal/store"
)

// PublicPostHandler serves the unauthenticated read-only post endpoints.
// Categories are not publicly browsable; they only appear nested in posts.
type PublicPostHandler struct {
	posts *store.PostStore
}

func NewPublicPostHandler(db *gorm.DB) *PublicPostHandler {
	return &PublicPostHandler{posts: store.NewPostStore(db)}
}

// @Summary List published posts
// @Description Get all posts with their categories, newest first
// @Tags posts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /posts [get]
func (h *PublicPostHandler) GetAllPosts(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK", "posts": posts})
}

// @Summary Get post
// @Description Get a single post by id with its categories
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [get]
func (h *PublicPostHandler) GetPostByID(c *gin.Context) {
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
