package middleware

import (
	"net/http"
	"strings"

	"todo_tracker/internal/model"
	"todo_tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

const IdentityKey = "authIdentity"

// JWTAuthMiddleware verifies the bearer token on every request and stores the
// decoded model.Identity in the context. Nothing is kept between requests.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "could not validate user"})
			return
		}

		c.Set(IdentityKey, model.Identity{
			Username: claims.Subject,
			UserID:   *claims.UserID,
			Role:     claims.Role,
		})

		c.Next()
	}
}

// GetIdentity returns the identity stored by JWTAuthMiddleware
func GetIdentity(c *gin.Context) (model.Identity, bool) {
	val, exists := c.Get(IdentityKey)
	if !exists {
		return model.Identity{}, false
	}
	identity, ok := val.(model.Identity)
	return identity, ok
}
