package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/akary-web/blog-api/internal/store"
)

// Success messages are the Japanese strings the deployed admin UI expects.
const (
	msgCreated = "作成しました"
	msgUpdated = "更新しました"
	msgDeleted = "削除しました"
)

// respondError serializes any adapter failure into the `{status: message}`
// envelope. Error kinds map to distinct HTTP codes; the legacy surface used
// a blanket 400, which was an oversight, not a contract.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var validationErr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"status": err.Error()})
}

// parseID reads the :id route parameter. Ids are integers; anything else is
// a malformed request, not a NotFound.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
