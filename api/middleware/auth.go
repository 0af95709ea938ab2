package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akary-web/blog-api/internal/auth"
)

// AuthRequired validates the caller's token through the auth gate before any
// admin handler runs. The deployed clients send the raw access token in the
// Authorization header, without a "Bearer " prefix; that convention is kept
// as-is.
func AuthRequired(gate *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")

		user, err := gate.Authorize(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": err.Error()})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
