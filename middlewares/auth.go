package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Naitik2408/pizza-sub001/configs"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseBearer(c *gin.Context, secret string) (uint, string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return 0, "", false
	}
	tokenStr := strings.TrimPrefix(h, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	var role string
	if v, ok := claims["role"].(string); ok {
		role = v
	}
	var userId uint
	switch v := claims["userId"].(type) {
	case float64:
		userId = uint(v)
	case int:
		userId = uint(v)
	case int64:
		userId = uint(v)
	case uint:
		userId = v
	}
	return userId, role, userId != 0
}

// AuthMiddleware requires a valid token and, when given, one of the roles.
func AuthMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := configs.LoadConfig()
		userId, role, ok := parseBearer(c, cfg.JWTSecret)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		c.Set("userId", userId)
		c.Set("role", role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}
		c.Next()
	}
}

// Identify accepts either a bearer token (authenticated user) or an
// X-Guest-Id header (guest session); one of the two must be present so the
// cart and checkout have an owner.
func Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := configs.LoadConfig()
		if userId, role, ok := parseBearer(c, cfg.JWTSecret); ok {
			c.Set("userId", userId)
			c.Set("role", role)
			c.Next()
			return
		}
		if gid := strings.TrimSpace(c.GetHeader("X-Guest-Id")); gid != "" && len(gid) <= 64 {
			c.Set("guestId", gid)
			c.Next()
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token or X-Guest-Id"})
		c.Abort()
	}
}
