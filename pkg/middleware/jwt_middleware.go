package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"tiffinbox/pkg/utils"
)

// JWTAuthMiddleware accepts the access token either as a Bearer header or as
// the httpOnly "access_token" cookie set at login.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("access_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil || claims.Kind != "access" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("Role", claims.Role)
		c.Next()
	}
}

// RequireRoles allows the request through when the authenticated role matches
// any of the given roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("Role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		c.Abort()
	}
}

// UserID reads the authenticated user id set by JWTAuthMiddleware.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
