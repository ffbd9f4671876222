package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sokoni/sokoni-api/internal/presentation/http/dto/response"
	"github.com/sokoni/sokoni-api/pkg/utils"
)

// AuthMiddleware validates the bearer token and stamps the creator identity
// (id + kind) into the request context. Handlers pass both explicitly into
// commit operations; nothing below the handler layer reads them ambiently.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("creator_id", claims.UserID)
		c.Set("creator_kind", claims.Kind)
		c.Set("creator_email", claims.Email)

		c.Next()
	}
}
