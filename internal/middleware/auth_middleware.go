package middleware

import (
	"net/http"
	"os"
	"strings"

	"clubhub/internal/helpers"
	"clubhub/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthMiddleware rejects requests without a valid bearer token and
// puts user_id and role into the context for the handlers.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, ok := parseToken(c)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or missing token.")
			c.Abort()
			return
		}
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

// OptionalAuthMiddleware populates user_id/role when a valid token is
// present and lets anonymous requests through. The home page uses it
// for its greeting.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, role, ok := parseToken(c); ok {
			c.Set("user_id", userID)
			c.Set("role", role)
		}
		c.Next()
	}
}

// IsPrivileged reports whether the authenticated caller holds the admin
// role.
func IsPrivileged(c *gin.Context) bool {
	role, exists := c.Get("role")
	if !exists {
		return false
	}
	return role == models.RoleAdmin
}

func parseToken(c *gin.Context) (string, string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", "", false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", "", false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", false
	}
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return "", "", false
	}
	return userID, role, true
}
