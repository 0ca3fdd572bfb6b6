package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentGuestID(c *gin.Context) string {
	if v, ok := c.Get("guestId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// OwnerKey identifies the cart/session owner: an account when authenticated,
// otherwise the caller-supplied guest id.
func OwnerKey(c *gin.Context) string {
	if uid := CurrentUserID(c); uid != 0 {
		return fmt.Sprintf("user:%d", uid)
	}
	if gid := CurrentGuestID(c); gid != "" {
		return "guest:" + gid
	}
	return ""
}
