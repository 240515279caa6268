package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actingUserID pulls the authenticated user's id out of the context.
func actingUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// redirectWithNotice is the session-free stand-in for flash messages:
// the notice travels as a query parameter on the redirect target.
func redirectWithNotice(c *gin.Context, path, notice string) {
	query := url.Values{"notice": {notice}}
	c.Redirect(http.StatusFound, path+"?"+query.Encode())
}
