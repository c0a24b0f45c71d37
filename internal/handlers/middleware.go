package handlers

import (
	"net/http"
	"strings"

	"asset_maintenance/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "userId"
	ctxIdentity = "identity"
)

// authMiddleware accepts "Authorization: Bearer <token>" or, for clients
// that cannot set headers such as browser WebSockets, a token query parameter.
func (h *Handler) authMiddleware(c *gin.Context) {
	token, msg := bearerToken(c)
	if msg != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": msg,
		})
		return
	}

	id, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(ctxUserID, id.ID)
	c.Set(ctxIdentity, id)
	c.Next()
}

func bearerToken(c *gin.Context) (string, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if q := strings.TrimSpace(c.Query("token")); q != "" {
			return q, ""
		}
		return "", "missing Authorization header"
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", "invalid Authorization header format"
	}
	return strings.TrimSpace(parts[1]), ""
}

// currentUser is the username recorded on timeline events.
func currentUser(c *gin.Context) string {
	v, ok := c.Get(ctxIdentity)
	if !ok {
		return ""
	}
	id, _ := v.(models.Identity)
	return id.Username
}
