package middleware

import (
	"net/http"
	"strings"

	"items-api/internal/services"
	"items-api/internal/transport/httpdto"
	items_errors "items-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates a route on a valid bearer token. A missing header is
// 401; a token that fails verification or has expired is 403.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse(items_errors.ErrNoToken.Error()))
			c.Abort()
			return
		}

		claims, err := service.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusForbidden, httpdto.NewErrorResponse(items_errors.ErrInvalidToken.Error()))
			c.Abort()
			return
		}

		ctx := services.WithUserContext(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
